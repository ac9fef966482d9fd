package entities

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyCareRequest represents an emergency care request with an embedded
// snapshot of the pet at submission time.
type EmergencyCareRequest struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	PetData     Pet       `json:"petData"`
	OwnerName   string    `json:"ownerName"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateEmergencyCareInput represents an emergency care submission.
type CreateEmergencyCareInput struct {
	PetData     Pet    `json:"petData" binding:"required"`
	OwnerName   string `json:"ownerName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description"`
}

// UpdateEmergencyCareInput represents a staff update. Status is free-form.
type UpdateEmergencyCareInput struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
	OwnerName   *string `json:"ownerName"`
	Phone       *string `json:"phone"`
}
