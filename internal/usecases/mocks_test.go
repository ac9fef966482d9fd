package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petty-shelter.backend/internal/domain/entities"
	"petty-shelter.backend/internal/infrastructure/gateway"
)

// Mock PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, pet *entities.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pet), args.Error(1)
}

func (m *MockPetRepository) List(ctx context.Context, offset, limit int) ([]*entities.Pet, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Pet), args.Get(1).(int64), args.Error(2)
}

func (m *MockPetRepository) Search(ctx context.Context, query string, offset, limit int) ([]*entities.Pet, int64, error) {
	args := m.Called(ctx, query, offset, limit)
	return args.Get(0).([]*entities.Pet), args.Get(1).(int64), args.Error(2)
}

func (m *MockPetRepository) Update(ctx context.Context, pet *entities.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock CredentialRepository
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) CreateResetToken(ctx context.Context, token *entities.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockCredentialRepository) GetResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PasswordResetToken), args.Error(1)
}

func (m *MockCredentialRepository) DeleteResetToken(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCredentialRepository) DeleteResetTokensForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCredentialRepository) UpsertConfirmationCode(ctx context.Context, code *entities.ConfirmationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockCredentialRepository) GetConfirmationCode(ctx context.Context, userID uuid.UUID) (*entities.ConfirmationCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConfirmationCode), args.Error(1)
}

func (m *MockCredentialRepository) DeleteConfirmationCode(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCredentialRepository) CreateSignInToken(ctx context.Context, token *entities.SignInToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockCredentialRepository) DeleteSignInTokensForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCredentialRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock InviteRepository
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *entities.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) GetByToken(ctx context.Context, token string) (*entities.Invite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invite), args.Error(1)
}

func (m *MockInviteRepository) GetByEmail(ctx context.Context, email string) (*entities.Invite, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invite), args.Error(1)
}

func (m *MockInviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInviteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AdoptionRepository
type MockAdoptionRepository struct {
	mock.Mock
}

func (m *MockAdoptionRepository) Create(ctx context.Context, app *entities.AdoptionApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAdoptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdoptionApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdoptionApplication), args.Error(1)
}

func (m *MockAdoptionRepository) List(ctx context.Context, offset, limit int) ([]*entities.AdoptionApplication, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.AdoptionApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdoptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionApplication, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.AdoptionApplication), args.Error(1)
}

func (m *MockAdoptionRepository) Update(ctx context.Context, app *entities.AdoptionApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAdoptionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock EmergencyRepository
type MockEmergencyRepository struct {
	mock.Mock
}

func (m *MockEmergencyRepository) Create(ctx context.Context, req *entities.EmergencyCareRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockEmergencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmergencyCareRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmergencyCareRequest), args.Error(1)
}

func (m *MockEmergencyRepository) List(ctx context.Context) ([]*entities.EmergencyCareRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.EmergencyCareRequest), args.Error(1)
}

func (m *MockEmergencyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.EmergencyCareRequest, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*entities.EmergencyCareRequest), args.Error(1)
}

func (m *MockEmergencyRepository) Update(ctx context.Context, req *entities.EmergencyCareRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockEmergencyRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// Mock VisitRepository
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Create(ctx context.Context, visit *entities.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Visit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Visit), args.Error(1)
}

func (m *MockVisitRepository) List(ctx context.Context) ([]*entities.Visit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Visit), args.Error(1)
}

func (m *MockVisitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Visit, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Visit), args.Error(1)
}

func (m *MockVisitRepository) Update(ctx context.Context, visit *entities.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock DonationRepository
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *entities.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) GetByReference(ctx context.Context, reference string) (*entities.Donation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Donation), args.Error(1)
}

func (m *MockDonationRepository) List(ctx context.Context, offset, limit int) ([]*entities.Donation, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Donation), args.Get(1).(int64), args.Error(2)
}

func (m *MockDonationRepository) UpdateStatus(ctx context.Context, reference string, status entities.DonationStatus, details []byte) error {
	args := m.Called(ctx, reference, status, details)
	return args.Error(0)
}

// Mock PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Initialize(ctx context.Context, amount float64, email string, metadata map[string]any) (*gateway.InitializeResult, error) {
	args := m.Called(ctx, amount, email, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.InitializeResult), args.Error(1)
}

func (m *MockPaymentGateway) Verify(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.VerifyResult), args.Error(1)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(ctx context.Context, to, firstName string) error {
	args := m.Called(ctx, to, firstName)
	return args.Error(0)
}

func (m *MockMailer) SendConfirmationCode(ctx context.Context, to, firstName, code string) error {
	args := m.Called(ctx, to, firstName, code)
	return args.Error(0)
}

func (m *MockMailer) SendEmailVerified(ctx context.Context, to, firstName string) error {
	args := m.Called(ctx, to, firstName)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, firstName, token string) error {
	args := m.Called(ctx, to, firstName, token)
	return args.Error(0)
}

func (m *MockMailer) SendStaffInvite(ctx context.Context, to, name, role, token string) error {
	args := m.Called(ctx, to, name, role, token)
	return args.Error(0)
}

func (m *MockMailer) SendVisitScheduled(ctx context.Context, to, name, visitDateAndTime string) error {
	args := m.Called(ctx, to, name, visitDateAndTime)
	return args.Error(0)
}
