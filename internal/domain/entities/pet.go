package entities

import (
	"time"

	"github.com/google/uuid"
)

// PetStatus represents a pet's adoption status
type PetStatus string

const (
	PetStatusAvailable PetStatus = "available"
	PetStatusAdopted   PetStatus = "adopted"
	PetStatusFostered  PetStatus = "fostered"
)

// MedicalHistory holds a pet's medical record summary.
type MedicalHistory struct {
	Vaccinated  bool   `json:"vaccinated"`
	Neutered    bool   `json:"neutered"`
	LastCheckup string `json:"lastCheckup"`
}

// Pet represents a sheltered pet
type Pet struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Age            int            `json:"age"`
	Breed          string         `json:"breed"`
	Image          string         `json:"image"`
	Status         PetStatus      `json:"status"`
	Traits         []string       `json:"traits"`
	MedicalHistory MedicalHistory `json:"medicalHistory"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreatePetInput represents input for adding a pet
type CreatePetInput struct {
	Name           string         `json:"name" binding:"required"`
	Type           string         `json:"type" binding:"required"`
	Age            int            `json:"age"`
	Breed          string         `json:"breed"`
	Image          string         `json:"image"`
	Status         PetStatus      `json:"status"`
	Traits         []string       `json:"traits"`
	MedicalHistory MedicalHistory `json:"medicalHistory"`
	Notes          string         `json:"notes"`
}

// UpdatePetInput represents a partial pet update. Nil fields are left
// untouched by the merge.
type UpdatePetInput struct {
	Name           *string         `json:"name"`
	Type           *string         `json:"type"`
	Age            *int            `json:"age"`
	Breed          *string         `json:"breed"`
	Image          *string         `json:"image"`
	Status         *PetStatus      `json:"status"`
	Traits         *[]string       `json:"traits"`
	MedicalHistory *MedicalHistory `json:"medicalHistory"`
	Notes          *string         `json:"notes"`
}

// PetPage is a page of pets plus pagination metadata.
type PetPage struct {
	Pets       []*Pet         `json:"pets"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo mirrors the list-endpoint pagination envelope.
type PaginationInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}
