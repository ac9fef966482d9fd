package models

import (
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
)

type Visit struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(200);not null"`
	Email            string    `gorm:"type:varchar(255);not null"`
	VisitDateAndTime string    `gorm:"type:varchar(100);not null"`
	Notes            string    `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Visit) TableName() string { return "visits" }

func VisitFromEntity(e *entities.Visit) *Visit {
	return &Visit{
		ID:               e.ID,
		UserID:           e.UserID,
		Name:             e.Name,
		Email:            e.Email,
		VisitDateAndTime: e.VisitDateAndTime,
		Notes:            e.Notes,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (m *Visit) ToEntity() *entities.Visit {
	return &entities.Visit{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Email:            m.Email,
		VisitDateAndTime: m.VisitDateAndTime,
		Notes:            m.Notes,
		Status:           entities.VisitStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
