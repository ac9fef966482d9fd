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

// VisitRepository implements visit data operations
type VisitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// Create creates a new visit
func (r *VisitRepository) Create(ctx context.Context, visit *entities.Visit) error {
	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.VisitFromEntity(visit)).Error
}

// GetByID gets a visit by ID
func (r *VisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Visit, error) {
	var m models.Visit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns all visits, newest first.
func (r *VisitRepository) List(ctx context.Context) ([]*entities.Visit, error) {
	var rows []models.Visit
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	visits := make([]*entities.Visit, 0, len(rows))
	for i := range rows {
		visits = append(visits, rows[i].ToEntity())
	}
	return visits, nil
}

// ListByUser returns a user's own visits, newest first.
func (r *VisitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Visit, error) {
	var rows []models.Visit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	visits := make([]*entities.Visit, 0, len(rows))
	for i := range rows {
		visits = append(visits, rows[i].ToEntity())
	}
	return visits, nil
}

// Update updates a visit
func (r *VisitRepository) Update(ctx context.Context, visit *entities.Visit) error {
	result := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("id = ?", visit.ID).
		Select("*").Omit("id", "created_at").
		Updates(models.VisitFromEntity(visit))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all of a user's visits
func (r *VisitRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Visit{}).Error
}
