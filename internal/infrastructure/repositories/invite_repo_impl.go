package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/infrastructure/models"
)

// InviteRepository implements staff invite data operations
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(ctx context.Context, invite *entities.Invite) error {
	if invite.ID == uuid.Nil {
		invite.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(models.InviteFromEntity(invite)).Error
}

// GetByToken looks up an invite by its token
func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*entities.Invite, error) {
	var m models.Invite
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// GetByEmail looks up the most recent invite issued to an email
func (r *InviteRepository) GetByEmail(ctx context.Context, email string) (*entities.Invite, error) {
	var m models.Invite
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Delete consumes an invite
func (r *InviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invite{}).Error
}

// DeleteExpired prunes invites past their validity window
func (r *InviteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&models.Invite{})
	return result.RowsAffected, result.Error
}
