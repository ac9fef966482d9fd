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

func TestCredentialRepository_ResetTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	createCredentialTables(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	tok := &entities.PasswordResetToken{
		UserID:    userID,
		Token:     "abc123",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateResetToken(ctx, tok))
	require.NotEqual(t, uuid.Nil, tok.ID)

	got, err := repo.GetResetToken(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)

	require.NoError(t, repo.DeleteResetToken(ctx, got.ID))
	_, err = repo.GetResetToken(ctx, "abc123")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_ConfirmationCodeUpsert(t *testing.T) {
	db := newTestDB(t)
	createCredentialTables(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	first := &entities.ConfirmationCode{
		UserID:    userID,
		Code:      "111111",
		ExpiresAt: time.Now().Add(30 * time.Minute),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.UpsertConfirmationCode(ctx, first))

	// Reissuing replaces the live code instead of adding a second row.
	second := &entities.ConfirmationCode{
		UserID:    userID,
		Code:      "222222",
		ExpiresAt: time.Now().Add(30 * time.Minute),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.UpsertConfirmationCode(ctx, second))

	got, err := repo.GetConfirmationCode(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "222222", got.Code)

	require.NoError(t, repo.DeleteConfirmationCode(ctx, got.ID))
	_, err = repo.GetConfirmationCode(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_DeleteExpired(t *testing.T) {
	db := newTestDB(t)
	createCredentialTables(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.CreateResetToken(ctx, &entities.PasswordResetToken{
		UserID:    userID,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, repo.CreateResetToken(ctx, &entities.PasswordResetToken{
		UserID:    userID,
		Token:     "fresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.UpsertConfirmationCode(ctx, &entities.ConfirmationCode{
		UserID:    userID,
		Code:      "999999",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, repo.CreateSignInToken(ctx, &entities.SignInToken{
		UserID:    userID,
		Token:     "jwt",
		CreatedAt: time.Now().Add(-16 * 24 * time.Hour),
	}))

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, removed)

	_, err = repo.GetResetToken(ctx, "stale")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.GetResetToken(ctx, "fresh")
	require.NoError(t, err)
}
