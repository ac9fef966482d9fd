package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/pkg/utils"
)

// PetUsecase handles the pet catalogue
type PetUsecase struct {
	petRepo repositories.PetRepository
}

// NewPetUsecase creates a new pet usecase
func NewPetUsecase(petRepo repositories.PetRepository) *PetUsecase {
	return &PetUsecase{petRepo: petRepo}
}

// Create adds a pet to the catalogue
func (u *PetUsecase) Create(ctx context.Context, input *entities.CreatePetInput) (*entities.Pet, error) {
	status := input.Status
	if status == "" {
		status = entities.PetStatusAvailable
	}

	now := time.Now()
	pet := &entities.Pet{
		Name:           input.Name,
		Type:           input.Type,
		Age:            input.Age,
		Breed:          input.Breed,
		Image:          input.Image,
		Status:         status,
		Traits:         input.Traits,
		MedicalHistory: input.MedicalHistory,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Get returns a pet by ID
func (u *PetUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	return u.petRepo.GetByID(ctx, id)
}

// List returns a page of pets
func (u *PetUsecase) List(ctx context.Context, params utils.PaginationParams) (*entities.PetPage, error) {
	pets, total, err := u.petRepo.List(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}
	return &entities.PetPage{
		Pets:       pets,
		Pagination: paginationInfo(total, params, len(pets)),
	}, nil
}

// Search matches pets against the query. No match is an error so the
// handler can answer with a not-found status rather than an empty page.
func (u *PetUsecase) Search(ctx context.Context, query string, params utils.PaginationParams) (*entities.PetPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.BadRequest("search query is required")
	}

	pets, total, err := u.petRepo.Search(ctx, query, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, domainerrors.NotFound("no pets matched the search")
	}
	return &entities.PetPage{
		Pets:       pets,
		Pagination: paginationInfo(total, params, len(pets)),
	}, nil
}

// Update applies a partial pet update
func (u *PetUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdatePetInput) (*entities.Pet, error) {
	pet, err := u.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Type != nil {
		pet.Type = *input.Type
	}
	if input.Age != nil {
		pet.Age = *input.Age
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.Image != nil {
		pet.Image = *input.Image
	}
	if input.Status != nil {
		pet.Status = *input.Status
	}
	if input.Traits != nil {
		pet.Traits = *input.Traits
	}
	if input.MedicalHistory != nil {
		pet.MedicalHistory = *input.MedicalHistory
	}
	if input.Notes != nil {
		pet.Notes = *input.Notes
	}
	pet.UpdatedAt = time.Now()

	if err := u.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Delete removes a pet
func (u *PetUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.petRepo.Delete(ctx, id)
}

func paginationInfo(total int64, params utils.PaginationParams, count int) entities.PaginationInfo {
	meta := utils.CalculateMeta(total, params.Page, params.Limit, count)
	return entities.PaginationInfo{
		Total:      meta.Total,
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
		HasMore:    meta.HasMore,
	}
}
