package entities

import (
	"time"

	"github.com/google/uuid"
)

// InviteTTL is how long a staff invite stays redeemable.
const InviteTTL = 3 * 24 * time.Hour

// Invite is a one-time token granting a staff role on redemption. It is
// deleted the moment it is consumed.
type Invite struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the invite is past its validity window.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// CreateInviteInput represents a staff invite request.
type CreateInviteInput struct {
	Name  string   `json:"name" binding:"required"`
	Email string   `json:"email" binding:"required,email"`
	Role  UserRole `json:"role" binding:"required"`
}
