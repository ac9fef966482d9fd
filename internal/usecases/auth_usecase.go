package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/internal/notifications"
	"petty-shelter.backend/pkg/crypto"
	"petty-shelter.backend/pkg/jwt"
	"petty-shelter.backend/pkg/logger"
)

// reservedEmails can never be registered.
var reservedEmails = map[string]struct{}{
	"admin@admin.com": {},
}

// AuthUsecase handles signup, signin, credential recovery and staff invites
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	credentialRepo repositories.CredentialRepository
	inviteRepo     repositories.InviteRepository
	jwtService     *jwt.Service
	mailer         notifications.Mailer
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	credentialRepo repositories.CredentialRepository,
	inviteRepo repositories.InviteRepository,
	jwtService *jwt.Service,
	mailer notifications.Mailer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		inviteRepo:     inviteRepo,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

// Signup registers a new user. When inviteToken names a live staff invite
// for the same email, the invited role is granted and the invite consumed.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.CreateUserInput, inviteToken string, device entities.DeviceInfo) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, reserved := reservedEmails[email]; reserved {
		return nil, domainerrors.BadRequest("email is not allowed")
	}

	role := entities.UserRoleUser
	var consumedInvite *entities.Invite
	if inviteToken != "" {
		invite, err := u.inviteRepo.GetByToken(ctx, inviteToken)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if invite != nil && !invite.Expired(time.Now()) && strings.EqualFold(invite.Email, email) {
			role = invite.Role
			consumedInvite = invite
		}
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		Avatar:          input.Avatar,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           email,
		PhoneNumber:     input.PhoneNumber,
		PasswordHash:    passwordHash,
		Address:         input.Address,
		Role:            role,
		Status:          entities.UserStatusActive,
		Preferences:     input.Preferences,
		PetInteractions: input.PetInteractions,
		AccountDetails: entities.AccountDetails{
			DateCreated: now,
			LastLogin:   now,
			LastUpdated: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if consumedInvite != nil {
		if err := u.inviteRepo.Delete(ctx, consumedInvite.ID); err != nil {
			logger.Error(ctx, "consume invite failed", zap.Error(err))
		}
	}

	resp, err := u.issueSession(ctx, user, device)
	if err != nil {
		return nil, err
	}

	if err := u.mailer.SendWelcome(ctx, user.Email, user.FirstName); err != nil {
		logger.Warn(ctx, "welcome mail failed", zap.Error(err))
	}
	return resp, nil
}

// Signin authenticates a user by email and password. An unknown email and a
// wrong password fail differently so the handler can keep distinct statuses.
func (u *AuthUsecase) Signin(ctx context.Context, input *entities.SigninInput, device entities.DeviceInfo) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}

	if err := crypto.CheckPassword(input.Password, user.PasswordHash); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user.AccountDetails.LastLogin = time.Now()
	user.AccountDetails.LoginAttempts++
	if err := u.userRepo.Update(ctx, user); err != nil {
		logger.Error(ctx, "record last login failed", zap.Error(err))
	}

	return u.issueSession(ctx, user, device)
}

func (u *AuthUsecase) issueSession(ctx context.Context, user *entities.User, device entities.DeviceInfo) (*entities.AuthResponse, error) {
	token, err := u.jwtService.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	audit := &entities.SignInToken{
		UserID:     user.ID,
		Token:      token,
		DeviceInfo: device,
		CreatedAt:  time.Now(),
	}
	if err := u.credentialRepo.CreateSignInToken(ctx, audit); err != nil {
		logger.Error(ctx, "record sign-in token failed", zap.Error(err))
	}

	return &entities.AuthResponse{
		User:           user,
		Token:          token,
		ExpirationTime: time.Now().Add(u.jwtService.Expiry()),
	}, nil
}

// RequestPasswordReset issues a reset token and mails it. An unknown email
// returns ErrNotFound so callers can decide what to disclose.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return err
	}

	reset := &entities.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(entities.ResetTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := u.credentialRepo.CreateResetToken(ctx, reset); err != nil {
		return err
	}

	if err := u.mailer.SendPasswordReset(ctx, user.Email, user.FirstName, token); err != nil {
		logger.Warn(ctx, "reset mail failed", zap.Error(err))
	}
	return nil
}

// ResetPassword consumes a reset token and sets a new password. The token is
// single use: all outstanding reset tokens for the user are invalidated.
func (u *AuthUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return domainerrors.BadRequest("password must be at least 8 characters")
	}

	reset, err := u.credentialRepo.GetResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidResetToken
		}
		return err
	}
	if time.Now().After(reset.ExpiresAt) {
		if err := u.credentialRepo.DeleteResetToken(ctx, reset.ID); err != nil {
			logger.Error(ctx, "delete expired reset token failed", zap.Error(err))
		}
		return domainerrors.ErrInvalidResetToken
	}

	user, err := u.userRepo.GetByID(ctx, reset.UserID)
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	user.AccountDetails.LastUpdated = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return u.credentialRepo.DeleteResetTokensForUser(ctx, user.ID)
}

// SendConfirmationCode issues a six digit confirmation code to the user,
// replacing any live code.
func (u *AuthUsecase) SendConfirmationCode(ctx context.Context, user *entities.User) error {
	code, err := crypto.GenerateConfirmationCode()
	if err != nil {
		return err
	}

	record := &entities.ConfirmationCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(entities.ConfirmationCodeTTL),
		CreatedAt: time.Now(),
	}
	if err := u.credentialRepo.UpsertConfirmationCode(ctx, record); err != nil {
		return err
	}

	if err := u.mailer.SendConfirmationCode(ctx, user.Email, user.FirstName, code); err != nil {
		logger.Warn(ctx, "confirmation mail failed", zap.Error(err))
	}
	return nil
}

// ConfirmEmail checks the submitted code against the user's live code. An
// expired code is removed; a wrong code is kept so the user can retry.
func (u *AuthUsecase) ConfirmEmail(ctx context.Context, user *entities.User, code string) error {
	record, err := u.credentialRepo.GetConfirmationCode(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidConfirmation
		}
		return err
	}

	if time.Now().After(record.ExpiresAt) {
		if err := u.credentialRepo.DeleteConfirmationCode(ctx, record.ID); err != nil {
			logger.Error(ctx, "delete expired confirmation code failed", zap.Error(err))
		}
		return domainerrors.ErrInvalidConfirmation
	}
	if record.Code != code {
		return domainerrors.ErrInvalidConfirmation
	}

	user.VerificationStatus.EmailVerified = true
	user.VerificationStatus.DateVerified = null.TimeFrom(time.Now())
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}
	if err := u.credentialRepo.DeleteConfirmationCode(ctx, record.ID); err != nil {
		logger.Error(ctx, "delete confirmation code failed", zap.Error(err))
	}

	if err := u.mailer.SendEmailVerified(ctx, user.Email, user.FirstName); err != nil {
		logger.Warn(ctx, "verified mail failed", zap.Error(err))
	}
	return nil
}

// CreateInvite issues a staff invite. Only the admin and volunteer roles can
// be granted this way, and inviting someone who already holds the role fails.
func (u *AuthUsecase) CreateInvite(ctx context.Context, input *entities.CreateInviteInput) (*entities.Invite, error) {
	if input.Role != entities.UserRoleAdmin && input.Role != entities.UserRoleVolunteer {
		return nil, domainerrors.BadRequest("role must be admin or volunteer")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Role == input.Role {
		return nil, domainerrors.Conflict("user already has " + string(input.Role) + " role")
	}

	token, err := crypto.GenerateInviteToken()
	if err != nil {
		return nil, err
	}

	invite := &entities.Invite{
		Token:     token,
		Email:     email,
		Role:      input.Role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(entities.InviteTTL),
	}
	if err := u.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}

	if err := u.mailer.SendStaffInvite(ctx, email, input.Name, string(input.Role), token); err != nil {
		logger.Warn(ctx, "invite mail failed", zap.Error(err))
	}
	return invite, nil
}
