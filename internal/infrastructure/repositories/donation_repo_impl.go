package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/infrastructure/models"
)

// DonationRepository implements donation data operations
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create creates a new donation. A duplicate reference maps to
// ErrAlreadyExists.
func (r *DonationRepository) Create(ctx context.Context, donation *entities.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(models.DonationFromEntity(donation)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByReference looks up a donation by its gateway reference
func (r *DonationRepository) GetByReference(ctx context.Context, reference string) (*entities.Donation, error) {
	var m models.Donation
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns a page of donations ordered by creation time, newest first.
func (r *DonationRepository) List(ctx context.Context, offset, limit int) ([]*entities.Donation, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Donation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Donation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	donations := make([]*entities.Donation, 0, len(rows))
	for i := range rows {
		donations = append(donations, rows[i].ToEntity())
	}
	return donations, total, nil
}

// UpdateStatus transitions a donation identified by reference. Details, when
// non-nil, replaces the stored gateway payload.
func (r *DonationRepository) UpdateStatus(ctx context.Context, reference string, status entities.DonationStatus, details []byte) error {
	updates := map[string]any{"status": string(status)}
	if details != nil {
		updates["payment_details"] = datatypes.JSON(details)
	}
	result := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("reference = ?", reference).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
