package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"

	"petty-shelter.backend/internal/domain/entities"
)

type Donation struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Amount         float64        `gorm:"type:numeric(12,2);not null"`
	Email          string         `gorm:"type:varchar(255);not null"`
	Name           string         `gorm:"type:varchar(200)"`
	Message        null.String    `gorm:"type:text"`
	Reference      string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	Status         string         `gorm:"type:varchar(50);not null;default:'pending'"`
	PaymentMethod  string         `gorm:"type:varchar(50)"`
	PaymentDetails datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Donation) TableName() string { return "donations" }

func DonationFromEntity(e *entities.Donation) *Donation {
	return &Donation{
		ID:             e.ID,
		Amount:         e.Amount,
		Email:          e.Email,
		Name:           e.Name,
		Message:        e.Message,
		Reference:      e.Reference,
		Status:         string(e.Status),
		PaymentMethod:  e.PaymentMethod,
		PaymentDetails: datatypes.JSON(e.PaymentDetails),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *Donation) ToEntity() *entities.Donation {
	return &entities.Donation{
		ID:             m.ID,
		Amount:         m.Amount,
		Email:          m.Email,
		Name:           m.Name,
		Message:        m.Message,
		Reference:      m.Reference,
		Status:         entities.DonationStatus(m.Status),
		PaymentMethod:  m.PaymentMethod,
		PaymentDetails: json.RawMessage(m.PaymentDetails),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
