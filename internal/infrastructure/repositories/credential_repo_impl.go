package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/infrastructure/models"
)

// CredentialRepository implements reset token, confirmation code and
// sign-in audit operations
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// CreateResetToken stores a password reset token
func (r *CredentialRepository) CreateResetToken(ctx context.Context, token *entities.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.ResetTokenFromEntity(token)).Error
}

// GetResetToken looks up a reset token by its value
func (r *CredentialRepository) GetResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	var m models.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// DeleteResetToken consumes a reset token
func (r *CredentialRepository) DeleteResetToken(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PasswordResetToken{}).Error
}

// DeleteResetTokensForUser removes all reset tokens issued to a user
func (r *CredentialRepository) DeleteResetTokensForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error
}

// UpsertConfirmationCode stores a confirmation code, replacing any live code
// for the same user.
func (r *CredentialRepository) UpsertConfirmationCode(ctx context.Context, code *entities.ConfirmationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
	}).Create(models.ConfirmationCodeFromEntity(code)).Error
}

// GetConfirmationCode looks up the live confirmation code for a user
func (r *CredentialRepository) GetConfirmationCode(ctx context.Context, userID uuid.UUID) (*entities.ConfirmationCode, error) {
	var m models.ConfirmationCode
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// DeleteConfirmationCode removes a confirmation code
func (r *CredentialRepository) DeleteConfirmationCode(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ConfirmationCode{}).Error
}

// CreateSignInToken records an issued session token for auditing
func (r *CredentialRepository) CreateSignInToken(ctx context.Context, token *entities.SignInToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.SignInTokenFromEntity(token)).Error
}

// DeleteSignInTokensForUser removes all sign-in records for a user
func (r *CredentialRepository) DeleteSignInTokensForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SignInToken{}).Error
}

// DeleteExpired prunes expired reset tokens and confirmation codes, plus
// sign-in records past the retention window. Returns rows removed.
func (r *CredentialRepository) DeleteExpired(ctx context.Context) (int64, error) {
	now := time.Now()
	var removed int64

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.PasswordResetToken{})
	if result.Error != nil {
		return removed, result.Error
	}
	removed += result.RowsAffected

	result = r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.ConfirmationCode{})
	if result.Error != nil {
		return removed, result.Error
	}
	removed += result.RowsAffected

	cutoff := now.Add(-entities.SignInTokenRetention)
	result = r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.SignInToken{})
	if result.Error != nil {
		return removed, result.Error
	}
	removed += result.RowsAffected

	return removed, nil
}
