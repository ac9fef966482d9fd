package handlers

import (
	"context"

	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/infrastructure/gateway"
)

// Function-backed stubs: a nil field falls back to a harmless default so
// tests only wire the calls they care about.

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	updateFn     func(ctx context.Context, user *entities.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = uuid.New()
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) List(context.Context) ([]*entities.User, error) { return nil, nil }

func (s *userRepoStub) Update(ctx context.Context, user *entities.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(context.Context, uuid.UUID) error { return nil }

type credentialRepoStub struct {
	getResetTokenFn func(ctx context.Context, token string) (*entities.PasswordResetToken, error)
}

func (s *credentialRepoStub) CreateResetToken(context.Context, *entities.PasswordResetToken) error {
	return nil
}

func (s *credentialRepoStub) GetResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	if s.getResetTokenFn != nil {
		return s.getResetTokenFn(ctx, token)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *credentialRepoStub) DeleteResetToken(context.Context, uuid.UUID) error        { return nil }
func (s *credentialRepoStub) DeleteResetTokensForUser(context.Context, uuid.UUID) error { return nil }

func (s *credentialRepoStub) UpsertConfirmationCode(context.Context, *entities.ConfirmationCode) error {
	return nil
}

func (s *credentialRepoStub) GetConfirmationCode(context.Context, uuid.UUID) (*entities.ConfirmationCode, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *credentialRepoStub) DeleteConfirmationCode(context.Context, uuid.UUID) error   { return nil }
func (s *credentialRepoStub) CreateSignInToken(context.Context, *entities.SignInToken) error {
	return nil
}
func (s *credentialRepoStub) DeleteSignInTokensForUser(context.Context, uuid.UUID) error { return nil }
func (s *credentialRepoStub) DeleteExpired(context.Context) (int64, error)               { return 0, nil }

type inviteRepoStub struct {
	getByTokenFn func(ctx context.Context, token string) (*entities.Invite, error)
}

func (s *inviteRepoStub) Create(context.Context, *entities.Invite) error { return nil }

func (s *inviteRepoStub) GetByToken(ctx context.Context, token string) (*entities.Invite, error) {
	if s.getByTokenFn != nil {
		return s.getByTokenFn(ctx, token)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *inviteRepoStub) GetByEmail(context.Context, string) (*entities.Invite, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *inviteRepoStub) Delete(context.Context, uuid.UUID) error    { return nil }
func (s *inviteRepoStub) DeleteExpired(context.Context) (int64, error) { return 0, nil }

type petRepoStub struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Pet, error)
	searchFn  func(ctx context.Context, query string, offset, limit int) ([]*entities.Pet, int64, error)
}

func (s *petRepoStub) Create(ctx context.Context, pet *entities.Pet) error {
	pet.ID = uuid.New()
	return nil
}

func (s *petRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *petRepoStub) List(context.Context, int, int) ([]*entities.Pet, int64, error) {
	return nil, 0, nil
}

func (s *petRepoStub) Search(ctx context.Context, query string, offset, limit int) ([]*entities.Pet, int64, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query, offset, limit)
	}
	return nil, 0, nil
}

func (s *petRepoStub) Update(context.Context, *entities.Pet) error  { return nil }
func (s *petRepoStub) Delete(context.Context, uuid.UUID) error      { return nil }

type emergencyRepoStub struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.EmergencyCareRequest, error)
}

func (s *emergencyRepoStub) Create(ctx context.Context, req *entities.EmergencyCareRequest) error {
	req.ID = uuid.New()
	return nil
}

func (s *emergencyRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmergencyCareRequest, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *emergencyRepoStub) List(context.Context) ([]*entities.EmergencyCareRequest, error) {
	return nil, nil
}

func (s *emergencyRepoStub) ListByOwner(context.Context, uuid.UUID) ([]*entities.EmergencyCareRequest, error) {
	return nil, nil
}

func (s *emergencyRepoStub) Update(context.Context, *entities.EmergencyCareRequest) error { return nil }
func (s *emergencyRepoStub) DeleteByOwner(context.Context, uuid.UUID) error               { return nil }

type adoptionRepoStub struct{}

func (adoptionRepoStub) Create(ctx context.Context, app *entities.AdoptionApplication) error {
	app.ID = uuid.New()
	return nil
}

func (adoptionRepoStub) GetByID(context.Context, uuid.UUID) (*entities.AdoptionApplication, error) {
	return nil, domainerrors.ErrNotFound
}

func (adoptionRepoStub) List(context.Context, int, int) ([]*entities.AdoptionApplication, int64, error) {
	return nil, 0, nil
}

func (adoptionRepoStub) ListByUser(context.Context, uuid.UUID) ([]*entities.AdoptionApplication, error) {
	return nil, nil
}

func (adoptionRepoStub) Update(context.Context, *entities.AdoptionApplication) error { return nil }
func (adoptionRepoStub) DeleteByUser(context.Context, uuid.UUID) error               { return nil }

type visitRepoStub struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Visit, error)
}

func (s *visitRepoStub) Create(ctx context.Context, visit *entities.Visit) error {
	visit.ID = uuid.New()
	return nil
}

func (s *visitRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Visit, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *visitRepoStub) List(context.Context) ([]*entities.Visit, error)               { return nil, nil }
func (s *visitRepoStub) ListByUser(context.Context, uuid.UUID) ([]*entities.Visit, error) {
	return nil, nil
}
func (s *visitRepoStub) Update(context.Context, *entities.Visit) error    { return nil }
func (s *visitRepoStub) DeleteByUser(context.Context, uuid.UUID) error    { return nil }

type donationRepoStub struct {
	createFn         func(ctx context.Context, donation *entities.Donation) error
	getByReferenceFn func(ctx context.Context, reference string) (*entities.Donation, error)
	updateStatusFn   func(ctx context.Context, reference string, status entities.DonationStatus, details []byte) error
}

func (s *donationRepoStub) Create(ctx context.Context, donation *entities.Donation) error {
	if s.createFn != nil {
		return s.createFn(ctx, donation)
	}
	donation.ID = uuid.New()
	return nil
}

func (s *donationRepoStub) GetByReference(ctx context.Context, reference string) (*entities.Donation, error) {
	if s.getByReferenceFn != nil {
		return s.getByReferenceFn(ctx, reference)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *donationRepoStub) List(context.Context, int, int) ([]*entities.Donation, int64, error) {
	return nil, 0, nil
}

func (s *donationRepoStub) UpdateStatus(ctx context.Context, reference string, status entities.DonationStatus, details []byte) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, reference, status, details)
	}
	return nil
}

type gatewayStub struct {
	initializeFn func(ctx context.Context, amount float64, email string, metadata map[string]any) (*gateway.InitializeResult, error)
	verifyFn     func(ctx context.Context, reference string) (*gateway.VerifyResult, error)
}

func (s *gatewayStub) Initialize(ctx context.Context, amount float64, email string, metadata map[string]any) (*gateway.InitializeResult, error) {
	if s.initializeFn != nil {
		return s.initializeFn(ctx, amount, email, metadata)
	}
	return &gateway.InitializeResult{
		AuthorizationURL: "https://checkout.paystack.com/abc123",
		AccessCode:       "abc123",
		Reference:        "don_test",
	}, nil
}

func (s *gatewayStub) Verify(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
	if s.verifyFn != nil {
		return s.verifyFn(ctx, reference)
	}
	return &gateway.VerifyResult{Status: "success", Reference: reference}, nil
}

type mailerStub struct{}

func (mailerStub) SendWelcome(context.Context, string, string) error                  { return nil }
func (mailerStub) SendConfirmationCode(context.Context, string, string, string) error { return nil }
func (mailerStub) SendEmailVerified(context.Context, string, string) error            { return nil }
func (mailerStub) SendPasswordReset(context.Context, string, string, string) error    { return nil }
func (mailerStub) SendStaffInvite(context.Context, string, string, string, string) error {
	return nil
}
func (mailerStub) SendVisitScheduled(context.Context, string, string, string) error { return nil }
