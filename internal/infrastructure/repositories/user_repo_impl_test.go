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

func newUser(email string) *entities.User {
	now := time.Now()
	return &entities.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: "hash",
		Role:         entities.UserRoleUser,
		Status:       entities.UserStatusActive,
		Address: entities.Address{
			City: "Lagos",
		},
		Preferences: entities.Preferences{
			Notifications: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newUser("ada@shelter.dev")
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, "Lagos", byID.Address.City)
	require.True(t, byID.Preferences.Notifications)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	u.FirstName = "Augusta"
	require.NoError(t, repo.Update(ctx, u))
	byID, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Augusta", byID.FirstName)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("dup@shelter.dev")))
	err := repo.Create(ctx, newUser("dup@shelter.dev"))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@shelter.dev")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Update(ctx, newUser("missing@shelter.dev")), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, uuid.New()), domainerrors.ErrNotFound)
}
