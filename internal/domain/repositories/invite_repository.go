package repositories

import (
	"context"

	"github.com/google/uuid"
	"petty-shelter.backend/internal/domain/entities"
)

// InviteRepository defines staff invite data operations
type InviteRepository interface {
	Create(ctx context.Context, invite *entities.Invite) error
	GetByToken(ctx context.Context, token string) (*entities.Invite, error)
	GetByEmail(ctx context.Context, email string) (*entities.Invite, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
