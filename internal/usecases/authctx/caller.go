package authctx

import (
	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
)

// Caller identifies the authenticated principal a usecase acts for.
type Caller struct {
	UserID uuid.UUID
	Role   entities.UserRole
}
