package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/internal/usecases/authctx"
	"petty-shelter.backend/pkg/utils"
)

// AdoptionUsecase handles adoption applications
type AdoptionUsecase struct {
	adoptionRepo repositories.AdoptionRepository
}

// NewAdoptionUsecase creates a new adoption usecase
func NewAdoptionUsecase(adoptionRepo repositories.AdoptionRepository) *AdoptionUsecase {
	return &AdoptionUsecase{adoptionRepo: adoptionRepo}
}

// Create submits an application. The caller becomes the owner and the
// application always starts pending regardless of submitted fields.
func (u *AdoptionUsecase) Create(ctx context.Context, caller authctx.Caller, input *entities.CreateAdoptionApplicationInput) (*entities.AdoptionApplication, error) {
	now := time.Now()
	app := &entities.AdoptionApplication{
		UserID:           caller.UserID,
		PetID:            input.PetID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		Zip:              input.Zip,
		Housing:          input.Housing,
		OwnRent:          input.OwnRent,
		LandlordContact:  input.LandlordContact,
		Occupation:       input.Occupation,
		OtherPets:        input.OtherPets,
		Veterinarian:     input.Veterinarian,
		Experience:       input.Experience,
		Reason:           input.Reason,
		Commitment:       input.Commitment,
		EmergencyContact: input.EmergencyContact,
		References:       input.References,
		Status:           entities.ApplicationStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.adoptionRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// List returns applications scoped by role: staff see a page of everything,
// everyone else sees their own applications in full.
func (u *AdoptionUsecase) List(ctx context.Context, caller authctx.Caller, params utils.PaginationParams) (*entities.AdoptionApplicationPage, error) {
	if !caller.Role.IsStaff() {
		apps, err := u.adoptionRepo.ListByUser(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		return &entities.AdoptionApplicationPage{
			Applications: apps,
			Pagination: entities.PaginationInfo{
				Total:      int64(len(apps)),
				Page:       1,
				TotalPages: 1,
			},
		}, nil
	}

	apps, total, err := u.adoptionRepo.List(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}
	return &entities.AdoptionApplicationPage{
		Applications: apps,
		Pagination:   paginationInfo(total, params, len(apps)),
	}, nil
}

// Review applies a staff decision to an application
func (u *AdoptionUsecase) Review(ctx context.Context, id uuid.UUID, input *entities.UpdateAdoptionApplicationInput) (*entities.AdoptionApplication, error) {
	app, err := u.adoptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		app.Status = *input.Status
	}
	if input.Notes != nil {
		app.Notes = *input.Notes
	}
	app.UpdatedAt = time.Now()

	if err := u.adoptionRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
