package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/pkg/crypto"
	"petty-shelter.backend/pkg/logger"
)

// UserUsecase handles profile reads, edits and account removal
type UserUsecase struct {
	userRepo       repositories.UserRepository
	credentialRepo repositories.CredentialRepository
	adoptionRepo   repositories.AdoptionRepository
	emergencyRepo  repositories.EmergencyRepository
	visitRepo      repositories.VisitRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	credentialRepo repositories.CredentialRepository,
	adoptionRepo repositories.AdoptionRepository,
	emergencyRepo repositories.EmergencyRepository,
	visitRepo repositories.VisitRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		adoptionRepo:   adoptionRepo,
		emergencyRepo:  emergencyRepo,
		visitRepo:      visitRepo,
	}
}

// Get returns a user by ID
func (u *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// List returns all users. Staff only; enforced by the route.
func (u *UserUsecase) List(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// Update applies a partial profile update. Changing the password requires
// the current one; a wrong current password fails with invalid credentials.
func (u *UserUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.Preferences != nil {
		user.Preferences = *input.Preferences
	}
	if input.PetInteractions != nil {
		user.PetInteractions = *input.PetInteractions
	}

	if input.Password != "" {
		if err := crypto.CheckPassword(input.OldPassword, user.PasswordHash); err != nil {
			return nil, domainerrors.ErrInvalidCredentials
		}
		if len(input.Password) < 8 {
			return nil, domainerrors.BadRequest("password must be at least 8 characters")
		}
		hash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.AccountDetails.LastUpdated = time.Now()
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and everything keyed to them: applications,
// emergency requests, visits and outstanding credentials.
func (u *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	cleanups := []struct {
		name string
		fn   func(context.Context, uuid.UUID) error
	}{
		{"adoption applications", u.adoptionRepo.DeleteByUser},
		{"emergency requests", u.emergencyRepo.DeleteByOwner},
		{"visits", u.visitRepo.DeleteByUser},
		{"reset tokens", u.credentialRepo.DeleteResetTokensForUser},
		{"sign-in tokens", u.credentialRepo.DeleteSignInTokensForUser},
	}
	for _, c := range cleanups {
		if err := c.fn(ctx, id); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			logger.Error(ctx, "cascade cleanup failed",
				zap.String("what", c.name),
				zap.String("user_id", id.String()),
				zap.Error(err))
		}
	}

	return u.userRepo.Delete(ctx, id)
}
