package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
)

func newVisit(userID uuid.UUID) *entities.Visit {
	now := time.Now()
	return &entities.Visit{
		UserID:           userID,
		Name:             "Sam Okafor",
		Email:            "sam@shelter.dev",
		VisitDateAndTime: "2026-09-15T10:00:00Z",
		Status:           entities.VisitStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestVisitRepository_CreateAndScopes(t *testing.T) {
	db := newTestDB(t)
	createVisitTable(t, db)
	repo := NewVisitRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	require.NoError(t, repo.Create(ctx, newVisit(alice)))
	require.NoError(t, repo.Create(ctx, newVisit(alice)))
	require.NoError(t, repo.Create(ctx, newVisit(bob)))

	mine, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestVisitRepository_StatusTransition(t *testing.T) {
	db := newTestDB(t)
	createVisitTable(t, db)
	repo := NewVisitRepository(db)
	ctx := context.Background()

	v := newVisit(uuid.New())
	require.NoError(t, repo.Create(ctx, v))

	v.Status = entities.VisitStatusApproved
	require.NoError(t, repo.Update(ctx, v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, entities.VisitStatusApproved, got.Status)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
