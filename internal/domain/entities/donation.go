package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DonationStatus represents the payment state of a donation
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusRefunded  DonationStatus = "refunded"
	DonationStatusDisputed  DonationStatus = "disputed"
)

// Donation represents a donation processed through the payment gateway.
// Reference is the gateway's transaction reference and is unique.
type Donation struct {
	ID             uuid.UUID       `json:"id"`
	Amount         float64         `json:"amount"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Message        null.String     `json:"message,omitempty"`
	Reference      string          `json:"reference"`
	Status         DonationStatus  `json:"status"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails json.RawMessage `json:"paymentDetails,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// InitializeDonationInput represents a donation initialization request.
type InitializeDonationInput struct {
	Amount   float64          `json:"amount" binding:"required,gt=0"`
	Email    string           `json:"email" binding:"required,email"`
	Metadata DonationMetadata `json:"metadata"`
}

// DonationMetadata carries the donor's display fields through the gateway.
type DonationMetadata struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
