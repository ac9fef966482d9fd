package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the review state of an adoption application
type ApplicationStatus string

const (
	ApplicationStatusPending       ApplicationStatus = "pending"
	ApplicationStatusApproved      ApplicationStatus = "approved"
	ApplicationStatusRejected      ApplicationStatus = "rejected"
	ApplicationStatusNeedsMoreInfo ApplicationStatus = "needs more info"
)

// AdoptionApplication represents a user's application to adopt a pet
type AdoptionApplication struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"userId"`
	PetID            string            `json:"petId"`
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Address          string            `json:"address"`
	City             string            `json:"city"`
	State            string            `json:"state"`
	Zip              string            `json:"zip"`
	Housing          string            `json:"housing"`
	OwnRent          string            `json:"ownRent"`
	LandlordContact  string            `json:"landlordContact"`
	Occupation       string            `json:"occupation"`
	OtherPets        string            `json:"otherPets"`
	Veterinarian     string            `json:"veterinarian"`
	Experience       string            `json:"experience"`
	Reason           string            `json:"reason"`
	Commitment       string            `json:"commitment"`
	EmergencyContact string            `json:"emergencyContact"`
	References       string            `json:"references"`
	Status           ApplicationStatus `json:"status"`
	Notes            string            `json:"notes"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// CreateAdoptionApplicationInput represents applicant-submitted fields. The
// owning user and the initial pending status are stamped server side.
type CreateAdoptionApplicationInput struct {
	PetID            string `json:"petId" binding:"required"`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	Zip              string `json:"zip"`
	Housing          string `json:"housing"`
	OwnRent          string `json:"ownRent"`
	LandlordContact  string `json:"landlordContact"`
	Occupation       string `json:"occupation"`
	OtherPets        string `json:"otherPets"`
	Veterinarian     string `json:"veterinarian"`
	Experience       string `json:"experience"`
	Reason           string `json:"reason"`
	Commitment       string `json:"commitment"`
	EmergencyContact string `json:"emergencyContact"`
	References       string `json:"references"`
}

// UpdateAdoptionApplicationInput represents a staff review update.
type UpdateAdoptionApplicationInput struct {
	Status *ApplicationStatus `json:"status"`
	Notes  *string            `json:"notes"`
}

// AdoptionApplicationPage is a staff-scoped page of applications.
type AdoptionApplicationPage struct {
	Applications []*AdoptionApplication `json:"applications"`
	Pagination   PaginationInfo         `json:"pagination"`
}
