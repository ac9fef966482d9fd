package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/infrastructure/models"
)

// EmergencyRepository implements emergency care request data operations
type EmergencyRepository struct {
	db *gorm.DB
}

// NewEmergencyRepository creates a new emergency repository
func NewEmergencyRepository(db *gorm.DB) *EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Create creates a new emergency care request
func (r *EmergencyRepository) Create(ctx context.Context, req *entities.EmergencyCareRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.EmergencyCareFromEntity(req)).Error
}

// GetByID gets a request by ID
func (r *EmergencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmergencyCareRequest, error) {
	var m models.EmergencyCareRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns all requests, newest first.
func (r *EmergencyRepository) List(ctx context.Context) ([]*entities.EmergencyCareRequest, error) {
	var rows []models.EmergencyCareRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	reqs := make([]*entities.EmergencyCareRequest, 0, len(rows))
	for i := range rows {
		reqs = append(reqs, rows[i].ToEntity())
	}
	return reqs, nil
}

// ListByOwner returns a user's own requests, newest first.
func (r *EmergencyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.EmergencyCareRequest, error) {
	var rows []models.EmergencyCareRequest
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	reqs := make([]*entities.EmergencyCareRequest, 0, len(rows))
	for i := range rows {
		reqs = append(reqs, rows[i].ToEntity())
	}
	return reqs, nil
}

// Update updates a request
func (r *EmergencyRepository) Update(ctx context.Context, req *entities.EmergencyCareRequest) error {
	result := r.db.WithContext(ctx).
		Model(&models.EmergencyCareRequest{}).
		Where("id = ?", req.ID).
		Select("*").Omit("id", "created_at").
		Updates(models.EmergencyCareFromEntity(req))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByOwner removes all of a user's requests
func (r *EmergencyRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&models.EmergencyCareRequest{}).Error
}
