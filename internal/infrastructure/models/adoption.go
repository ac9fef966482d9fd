package models

import (
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
)

type AdoptionApplication struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID            string    `gorm:"type:varchar(64);not null;index"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);not null"`
	Phone            string    `gorm:"type:varchar(50)"`
	Address          string    `gorm:"type:text"`
	City             string    `gorm:"type:varchar(100)"`
	State            string    `gorm:"type:varchar(100)"`
	Zip              string    `gorm:"type:varchar(20)"`
	Housing          string    `gorm:"type:varchar(100)"`
	OwnRent          string    `gorm:"type:varchar(50)"`
	LandlordContact  string    `gorm:"type:text"`
	Occupation       string    `gorm:"type:varchar(100)"`
	OtherPets        string    `gorm:"type:text"`
	Veterinarian     string    `gorm:"type:text"`
	Experience       string    `gorm:"type:text"`
	Reason           string    `gorm:"type:text"`
	Commitment       string    `gorm:"type:text"`
	EmergencyContact string    `gorm:"type:text"`
	References       string    `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(50);not null;default:'pending'"`
	Notes            string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (AdoptionApplication) TableName() string { return "adoption_applications" }

func AdoptionApplicationFromEntity(e *entities.AdoptionApplication) *AdoptionApplication {
	return &AdoptionApplication{
		ID:               e.ID,
		UserID:           e.UserID,
		PetID:            e.PetID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Address:          e.Address,
		City:             e.City,
		State:            e.State,
		Zip:              e.Zip,
		Housing:          e.Housing,
		OwnRent:          e.OwnRent,
		LandlordContact:  e.LandlordContact,
		Occupation:       e.Occupation,
		OtherPets:        e.OtherPets,
		Veterinarian:     e.Veterinarian,
		Experience:       e.Experience,
		Reason:           e.Reason,
		Commitment:       e.Commitment,
		EmergencyContact: e.EmergencyContact,
		References:       e.References,
		Status:           string(e.Status),
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (m *AdoptionApplication) ToEntity() *entities.AdoptionApplication {
	return &entities.AdoptionApplication{
		ID:               m.ID,
		UserID:           m.UserID,
		PetID:            m.PetID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		City:             m.City,
		State:            m.State,
		Zip:              m.Zip,
		Housing:          m.Housing,
		OwnRent:          m.OwnRent,
		LandlordContact:  m.LandlordContact,
		Occupation:       m.Occupation,
		OtherPets:        m.OtherPets,
		Veterinarian:     m.Veterinarian,
		Experience:       m.Experience,
		Reason:           m.Reason,
		Commitment:       m.Commitment,
		EmergencyContact: m.EmergencyContact,
		References:       m.References,
		Status:           entities.ApplicationStatus(m.Status),
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
