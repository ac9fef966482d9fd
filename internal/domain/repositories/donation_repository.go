package repositories

import (
	"context"

	"petty-shelter.backend/internal/domain/entities"
)

// DonationRepository defines donation data operations
type DonationRepository interface {
	Create(ctx context.Context, donation *entities.Donation) error
	GetByReference(ctx context.Context, reference string) (*entities.Donation, error)
	List(ctx context.Context, offset, limit int) ([]*entities.Donation, int64, error)
	UpdateStatus(ctx context.Context, reference string, status entities.DonationStatus, details []byte) error
}
