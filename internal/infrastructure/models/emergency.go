package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"petty-shelter.backend/internal/domain/entities"
)

type EmergencyCareRequest struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	PetData     datatypes.JSON `gorm:"type:jsonb"`
	OwnerName   string         `gorm:"type:varchar(200);not null"`
	Phone       string         `gorm:"type:varchar(50);not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(100);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmergencyCareRequest) TableName() string { return "emergency_care_requests" }

func EmergencyCareFromEntity(e *entities.EmergencyCareRequest) *EmergencyCareRequest {
	return &EmergencyCareRequest{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		PetData:     mustJSON(e.PetData),
		OwnerName:   e.OwnerName,
		Phone:       e.Phone,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *EmergencyCareRequest) ToEntity() *entities.EmergencyCareRequest {
	e := &entities.EmergencyCareRequest{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		OwnerName:   m.OwnerName,
		Phone:       m.Phone,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	fromJSON(m.PetData, &e.PetData)
	return e
}
