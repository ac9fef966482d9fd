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

// AdoptionRepository implements adoption application data operations
type AdoptionRepository struct {
	db *gorm.DB
}

// NewAdoptionRepository creates a new adoption repository
func NewAdoptionRepository(db *gorm.DB) *AdoptionRepository {
	return &AdoptionRepository{db: db}
}

// Create creates a new adoption application
func (r *AdoptionRepository) Create(ctx context.Context, app *entities.AdoptionApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.AdoptionApplicationFromEntity(app)).Error
}

// GetByID gets an application by ID
func (r *AdoptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdoptionApplication, error) {
	var m models.AdoptionApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns a page of applications ordered by creation time, newest first.
func (r *AdoptionRepository) List(ctx context.Context, offset, limit int) ([]*entities.AdoptionApplication, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AdoptionApplication{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.AdoptionApplication
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]*entities.AdoptionApplication, 0, len(rows))
	for i := range rows {
		apps = append(apps, rows[i].ToEntity())
	}
	return apps, total, nil
}

// ListByUser returns all of a user's applications, newest first.
func (r *AdoptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionApplication, error) {
	var rows []models.AdoptionApplication
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	apps := make([]*entities.AdoptionApplication, 0, len(rows))
	for i := range rows {
		apps = append(apps, rows[i].ToEntity())
	}
	return apps, nil
}

// Update updates an application
func (r *AdoptionRepository) Update(ctx context.Context, app *entities.AdoptionApplication) error {
	result := r.db.WithContext(ctx).
		Model(&models.AdoptionApplication{}).
		Where("id = ?", app.ID).
		Select("*").Omit("id", "created_at").
		Updates(models.AdoptionApplicationFromEntity(app))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all of a user's applications
func (r *AdoptionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.AdoptionApplication{}).Error
}
