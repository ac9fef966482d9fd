package repositories

import (
	"context"

	"github.com/google/uuid"
	"petty-shelter.backend/internal/domain/entities"
)

// VisitRepository defines visit data operations
type VisitRepository interface {
	Create(ctx context.Context, visit *entities.Visit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Visit, error)
	List(ctx context.Context) ([]*entities.Visit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Visit, error)
	Update(ctx context.Context, visit *entities.Visit) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
