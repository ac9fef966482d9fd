package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"petty-shelter.backend/internal/domain/entities"
)

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Avatar             string    `gorm:"type:text"`
	FirstName          string    `gorm:"type:varchar(100);not null"`
	LastName           string    `gorm:"type:varchar(100);not null"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber        string    `gorm:"type:varchar(50)"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Role               string    `gorm:"type:varchar(50);not null;default:'user'"`
	Status             string    `gorm:"type:varchar(50);not null;default:'active'"`
	Address            datatypes.JSON `gorm:"type:jsonb"`
	Preferences        datatypes.JSON `gorm:"type:jsonb"`
	PetInteractions    datatypes.JSON `gorm:"type:jsonb"`
	VerificationStatus datatypes.JSON `gorm:"type:jsonb"`
	AccountDetails     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (User) TableName() string { return "users" }

// SignInToken is the audit row written for every issued session token.
type SignInToken struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Token      string         `gorm:"type:text;not null"`
	DeviceInfo datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"index"`
}

func (SignInToken) TableName() string { return "sign_in_tokens" }

func UserFromEntity(e *entities.User) *User {
	return &User{
		ID:                 e.ID,
		Avatar:             e.Avatar,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		PhoneNumber:        e.PhoneNumber,
		PasswordHash:       e.PasswordHash,
		Role:               string(e.Role),
		Status:             string(e.Status),
		Address:            mustJSON(e.Address),
		Preferences:        mustJSON(e.Preferences),
		PetInteractions:    mustJSON(e.PetInteractions),
		VerificationStatus: mustJSON(e.VerificationStatus),
		AccountDetails:     mustJSON(e.AccountDetails),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (m *User) ToEntity() *entities.User {
	e := &entities.User{
		ID:           m.ID,
		Avatar:       m.Avatar,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		Status:       entities.UserStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	fromJSON(m.Address, &e.Address)
	fromJSON(m.Preferences, &e.Preferences)
	fromJSON(m.PetInteractions, &e.PetInteractions)
	fromJSON(m.VerificationStatus, &e.VerificationStatus)
	fromJSON(m.AccountDetails, &e.AccountDetails)
	return e
}

func SignInTokenFromEntity(e *entities.SignInToken) *SignInToken {
	return &SignInToken{
		ID:         e.ID,
		UserID:     e.UserID,
		Token:      e.Token,
		DeviceInfo: mustJSON(e.DeviceInfo),
		CreatedAt:  e.CreatedAt,
	}
}
