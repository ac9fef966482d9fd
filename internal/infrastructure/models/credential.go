package models

import (
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
)

type PasswordResetToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

type ConfirmationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Code      string    `gorm:"type:varchar(16);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

func (ConfirmationCode) TableName() string { return "confirmation_codes" }

func ResetTokenFromEntity(e *entities.PasswordResetToken) *PasswordResetToken {
	return &PasswordResetToken{
		ID:        e.ID,
		UserID:    e.UserID,
		Token:     e.Token,
		ExpiresAt: e.ExpiresAt,
		CreatedAt: e.CreatedAt,
	}
}

func (m *PasswordResetToken) ToEntity() *entities.PasswordResetToken {
	return &entities.PasswordResetToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func ConfirmationCodeFromEntity(e *entities.ConfirmationCode) *ConfirmationCode {
	return &ConfirmationCode{
		ID:        e.ID,
		UserID:    e.UserID,
		Code:      e.Code,
		ExpiresAt: e.ExpiresAt,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ConfirmationCode) ToEntity() *entities.ConfirmationCode {
	return &entities.ConfirmationCode{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
