package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/internal/usecases/authctx"
)

// EmergencyUsecase handles emergency care requests
type EmergencyUsecase struct {
	emergencyRepo repositories.EmergencyRepository
}

// NewEmergencyUsecase creates a new emergency usecase
func NewEmergencyUsecase(emergencyRepo repositories.EmergencyRepository) *EmergencyUsecase {
	return &EmergencyUsecase{emergencyRepo: emergencyRepo}
}

// Create submits an emergency care request owned by the caller
func (u *EmergencyUsecase) Create(ctx context.Context, caller authctx.Caller, input *entities.CreateEmergencyCareInput) (*entities.EmergencyCareRequest, error) {
	now := time.Now()
	req := &entities.EmergencyCareRequest{
		OwnerID:     caller.UserID,
		PetData:     input.PetData,
		OwnerName:   input.OwnerName,
		Phone:       input.Phone,
		Description: input.Description,
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.emergencyRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// List returns emergency requests. Staff asking for all get everything;
// everyone else gets their own requests.
func (u *EmergencyUsecase) List(ctx context.Context, caller authctx.Caller, all bool) ([]*entities.EmergencyCareRequest, error) {
	if all && caller.Role.IsStaff() {
		return u.emergencyRepo.List(ctx)
	}
	return u.emergencyRepo.ListByOwner(ctx, caller.UserID)
}

// Update edits an emergency request. Only staff may edit; a non-staff
// caller fails with an authentication error.
func (u *EmergencyUsecase) Update(ctx context.Context, caller authctx.Caller, id uuid.UUID, input *entities.UpdateEmergencyCareInput) (*entities.EmergencyCareRequest, error) {
	if !caller.Role.IsStaff() {
		return nil, domainerrors.ErrUnauthorized
	}

	req, err := u.emergencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		req.Status = *input.Status
	}
	if input.Description != nil {
		req.Description = *input.Description
	}
	if input.OwnerName != nil {
		req.OwnerName = *input.OwnerName
	}
	if input.Phone != nil {
		req.Phone = *input.Phone
	}
	req.UpdatedAt = time.Now()

	if err := u.emergencyRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
