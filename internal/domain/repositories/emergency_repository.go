package repositories

import (
	"context"

	"github.com/google/uuid"
	"petty-shelter.backend/internal/domain/entities"
)

// EmergencyRepository defines emergency care request data operations
type EmergencyRepository interface {
	Create(ctx context.Context, req *entities.EmergencyCareRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.EmergencyCareRequest, error)
	List(ctx context.Context) ([]*entities.EmergencyCareRequest, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.EmergencyCareRequest, error)
	Update(ctx context.Context, req *entities.EmergencyCareRequest) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
