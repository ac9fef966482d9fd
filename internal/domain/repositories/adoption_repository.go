package repositories

import (
	"context"

	"github.com/google/uuid"
	"petty-shelter.backend/internal/domain/entities"
)

// AdoptionRepository defines adoption application data operations
type AdoptionRepository interface {
	Create(ctx context.Context, app *entities.AdoptionApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AdoptionApplication, error)
	List(ctx context.Context, offset, limit int) ([]*entities.AdoptionApplication, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionApplication, error)
	Update(ctx context.Context, app *entities.AdoptionApplication) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
