package models

import (
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
)

type Invite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Role      string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (Invite) TableName() string { return "invites" }

func InviteFromEntity(e *entities.Invite) *Invite {
	return &Invite{
		ID:        e.ID,
		Token:     e.Token,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		ExpiresAt: e.ExpiresAt,
	}
}

func (m *Invite) ToEntity() *entities.Invite {
	return &entities.Invite{
		ID:        m.ID,
		Token:     m.Token,
		Email:     m.Email,
		Role:      entities.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}
