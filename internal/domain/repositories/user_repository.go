package repositories

import (
	"context"

	"github.com/google/uuid"
	"petty-shelter.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CredentialRepository defines reset token, confirmation code and sign-in
// audit operations
type CredentialRepository interface {
	CreateResetToken(ctx context.Context, token *entities.PasswordResetToken) error
	GetResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error)
	DeleteResetToken(ctx context.Context, id uuid.UUID) error
	DeleteResetTokensForUser(ctx context.Context, userID uuid.UUID) error

	UpsertConfirmationCode(ctx context.Context, code *entities.ConfirmationCode) error
	GetConfirmationCode(ctx context.Context, userID uuid.UUID) (*entities.ConfirmationCode, error)
	DeleteConfirmationCode(ctx context.Context, id uuid.UUID) error

	CreateSignInToken(ctx context.Context, token *entities.SignInToken) error
	DeleteSignInTokensForUser(ctx context.Context, userID uuid.UUID) error

	DeleteExpired(ctx context.Context) (int64, error)
}
