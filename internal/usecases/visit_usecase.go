package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/internal/notifications"
	"petty-shelter.backend/internal/usecases/authctx"
	"petty-shelter.backend/pkg/logger"
)

// VisitUsecase handles shelter visit scheduling
type VisitUsecase struct {
	visitRepo repositories.VisitRepository
	mailer    notifications.Mailer
}

// NewVisitUsecase creates a new visit usecase
func NewVisitUsecase(visitRepo repositories.VisitRepository, mailer notifications.Mailer) *VisitUsecase {
	return &VisitUsecase{visitRepo: visitRepo, mailer: mailer}
}

// Schedule books a visit for the caller and confirms it by mail
func (u *VisitUsecase) Schedule(ctx context.Context, caller authctx.Caller, input *entities.ScheduleVisitInput) (*entities.Visit, error) {
	now := time.Now()
	visit := &entities.Visit{
		UserID:           caller.UserID,
		Name:             input.Name,
		Email:            input.Email,
		VisitDateAndTime: input.VisitDateAndTime,
		Notes:            input.Notes,
		Status:           entities.VisitStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}

	if err := u.mailer.SendVisitScheduled(ctx, visit.Email, visit.Name, visit.VisitDateAndTime); err != nil {
		logger.Warn(ctx, "visit mail failed", zap.Error(err))
	}
	return visit, nil
}

// Get returns a visit. Non-staff callers can only read their own.
func (u *VisitUsecase) Get(ctx context.Context, caller authctx.Caller, id uuid.UUID) (*entities.Visit, error) {
	visit, err := u.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsStaff() && visit.UserID != caller.UserID {
		return nil, domainerrors.ErrForbidden
	}
	return visit, nil
}

// List returns visits scoped by role: staff see everything, other callers
// see their own.
func (u *VisitUsecase) List(ctx context.Context, caller authctx.Caller) ([]*entities.Visit, error) {
	if caller.Role.IsStaff() {
		return u.visitRepo.List(ctx)
	}
	return u.visitRepo.ListByUser(ctx, caller.UserID)
}

// UpdateStatus applies a staff status transition
func (u *VisitUsecase) UpdateStatus(ctx context.Context, input *entities.UpdateVisitStatusInput) (*entities.Visit, error) {
	id, err := uuid.Parse(input.VisitID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid visit id")
	}

	switch input.Status {
	case entities.VisitStatusPending, entities.VisitStatusApproved, entities.VisitStatusRejected,
		entities.VisitStatusCancelled, entities.VisitStatusCompleted:
	default:
		return nil, domainerrors.BadRequest("invalid visit status")
	}

	visit, err := u.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visit.Status = input.Status
	visit.UpdatedAt = time.Now()
	if err := u.visitRepo.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}
