package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ResetTokenTTL is the validity window of a password reset token.
	ResetTokenTTL = time.Hour
	// ConfirmationCodeTTL is the validity window of an email confirmation code.
	ConfirmationCodeTTL = 30 * time.Minute
	// SignInTokenRetention is how long sign-in audit records are kept.
	SignInTokenRetention = 15 * 24 * time.Hour
)

// PasswordResetToken is a single-use credential for resetting a password.
type PasswordResetToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConfirmationCode is a short-lived email verification code. At most one
// live code exists per user; issuing a new one replaces the old.
type ConfirmationCode struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
