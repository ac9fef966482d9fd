package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"petty-shelter.backend/internal/domain/entities"
)

type Pet struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"type:varchar(100);not null;index"`
	Type           string         `gorm:"type:varchar(50);not null"`
	Age            int            `gorm:"not null;default:0"`
	Breed          string         `gorm:"type:varchar(100)"`
	Image          string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(50);not null;default:'available'"`
	Traits         datatypes.JSON `gorm:"type:jsonb"`
	MedicalHistory datatypes.JSON `gorm:"type:jsonb"`
	Notes          string         `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Pet) TableName() string { return "pets" }

func PetFromEntity(e *entities.Pet) *Pet {
	return &Pet{
		ID:             e.ID,
		Name:           e.Name,
		Type:           e.Type,
		Age:            e.Age,
		Breed:          e.Breed,
		Image:          e.Image,
		Status:         string(e.Status),
		Traits:         mustJSON(e.Traits),
		MedicalHistory: mustJSON(e.MedicalHistory),
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *Pet) ToEntity() *entities.Pet {
	e := &entities.Pet{
		ID:        m.ID,
		Name:      m.Name,
		Type:      m.Type,
		Age:       m.Age,
		Breed:     m.Breed,
		Image:     m.Image,
		Status:    entities.PetStatus(m.Status),
		Traits:    []string{},
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	fromJSON(m.Traits, &e.Traits)
	fromJSON(m.MedicalHistory, &e.MedicalHistory)
	return e
}
