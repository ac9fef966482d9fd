package repositories

import (
	"context"

	"github.com/google/uuid"
	"petty-shelter.backend/internal/domain/entities"
)

// PetRepository defines pet data operations
type PetRepository interface {
	Create(ctx context.Context, pet *entities.Pet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error)
	List(ctx context.Context, offset, limit int) ([]*entities.Pet, int64, error)
	Search(ctx context.Context, query string, offset, limit int) ([]*entities.Pet, int64, error)
	Update(ctx context.Context, pet *entities.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}
