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

// PetRepository implements pet data operations
type PetRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

// Create creates a new pet
func (r *PetRepository) Create(ctx context.Context, pet *entities.Pet) error {
	if pet.ID == uuid.Nil {
		pet.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.PetFromEntity(pet)).Error
}

// GetByID gets a pet by ID
func (r *PetRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	var m models.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns a page of pets ordered by creation time, newest first.
func (r *PetRepository) List(ctx context.Context, offset, limit int) ([]*entities.Pet, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Pet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Pet
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	pets := make([]*entities.Pet, 0, len(rows))
	for i := range rows {
		pets = append(pets, rows[i].ToEntity())
	}
	return pets, total, nil
}

// Search matches the query case-insensitively against name, type and breed.
func (r *PetRepository) Search(ctx context.Context, query string, offset, limit int) ([]*entities.Pet, int64, error) {
	pattern := "%" + query + "%"
	cond := "LOWER(name) LIKE LOWER(?) OR LOWER(type) LIKE LOWER(?) OR LOWER(breed) LIKE LOWER(?)"

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Pet{}).
		Where(cond, pattern, pattern, pattern).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Pet
	if err := r.db.WithContext(ctx).
		Where(cond, pattern, pattern, pattern).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	pets := make([]*entities.Pet, 0, len(rows))
	for i := range rows {
		pets = append(pets, rows[i].ToEntity())
	}
	return pets, total, nil
}

// Update updates a pet
func (r *PetRepository) Update(ctx context.Context, pet *entities.Pet) error {
	// Select("*") so zero values (cleared notes, age 0) are persisted too.
	result := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ?", pet.ID).
		Select("*").Omit("id", "created_at").
		Updates(models.PetFromEntity(pet))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a pet
func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Pet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
