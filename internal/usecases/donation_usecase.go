package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/domain/repositories"
	"petty-shelter.backend/internal/infrastructure/gateway"
	"petty-shelter.backend/pkg/logger"
	"petty-shelter.backend/pkg/utils"
)

// persistTimeout bounds how long Initialize waits for the donation row to
// land after the gateway has accepted the transaction. Past it the caller
// gets a gateway-timeout and the row is left to finish in the background.
const persistTimeout = 5 * time.Second

// PaymentGateway is the slice of the payment API the donation flow needs.
type PaymentGateway interface {
	Initialize(ctx context.Context, amount float64, email string, metadata map[string]any) (*gateway.InitializeResult, error)
	Verify(ctx context.Context, reference string) (*gateway.VerifyResult, error)
}

// DonationUsecase handles donation payments end to end
type DonationUsecase struct {
	donationRepo repositories.DonationRepository
	gateway      PaymentGateway
}

// NewDonationUsecase creates a new donation usecase
func NewDonationUsecase(donationRepo repositories.DonationRepository, paymentGateway PaymentGateway) *DonationUsecase {
	return &DonationUsecase{donationRepo: donationRepo, gateway: paymentGateway}
}

// Initialize starts a donation at the gateway and persists the pending
// record. When persisting outlasts persistTimeout the checkout handle is
// withheld and the caller told to retry, keeping reference and row in step.
func (u *DonationUsecase) Initialize(ctx context.Context, input *entities.InitializeDonationInput) (*gateway.InitializeResult, error) {
	metadata := map[string]any{
		"name":    input.Metadata.Name,
		"message": input.Metadata.Message,
	}
	result, err := u.gateway.Initialize(ctx, input.Amount, input.Email, metadata)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	donation := &entities.Donation{
		Amount:        input.Amount,
		Email:         input.Email,
		Name:          input.Metadata.Name,
		Message:       null.NewString(input.Metadata.Message, input.Metadata.Message != ""),
		Reference:     result.Reference,
		Status:        entities.DonationStatusPending,
		PaymentMethod: "paystack",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	done := make(chan error, 1)
	go func() {
		// Detached from the request context so a timed-out request does
		// not abort the write mid-flight.
		done <- u.donationRepo.Create(context.WithoutCancel(ctx), donation)
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return result, nil
	case <-time.After(persistTimeout):
		logger.Error(ctx, "donation persist timed out",
			zap.String("reference", result.Reference))
		return nil, domainerrors.ErrUpstreamTimeout
	}
}

// Verify asks the gateway for the transaction state and folds a successful
// outcome into the stored donation.
func (u *DonationUsecase) Verify(ctx context.Context, reference string) (*entities.Donation, error) {
	result, err := u.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	if result.Status == "success" {
		if err := u.donationRepo.UpdateStatus(ctx, reference, entities.DonationStatusCompleted, result.Raw); err != nil {
			return nil, err
		}
	}
	return u.donationRepo.GetByReference(ctx, reference)
}

// List returns a page of donations
func (u *DonationUsecase) List(ctx context.Context, params utils.PaginationParams) ([]*entities.Donation, entities.PaginationInfo, error) {
	donations, total, err := u.donationRepo.List(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, entities.PaginationInfo{}, err
	}
	return donations, paginationInfo(total, params, len(donations)), nil
}

// WebhookEvent is the envelope posted by the gateway.
type WebhookEvent struct {
	Event string          `json:"event"`
	Data  WebhookData     `json:"data"`
	Raw   json.RawMessage `json:"-"`
}

// WebhookData carries the transaction fields the state machine reads.
type WebhookData struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// HandleWebhook applies a gateway event to the donation it references.
// Unrecognized events are acknowledged without effect so the gateway stops
// retrying them.
func (u *DonationUsecase) HandleWebhook(ctx context.Context, event *WebhookEvent) error {
	var status entities.DonationStatus
	switch event.Event {
	case "charge.success":
		status = entities.DonationStatusCompleted
	case "charge.failed", "transfer.failed":
		status = entities.DonationStatusFailed
	case "refund.processed":
		status = entities.DonationStatusRefunded
	default:
		logger.Info(ctx, "ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	if event.Data.Reference == "" {
		return domainerrors.BadRequest("webhook event has no reference")
	}

	err := u.donationRepo.UpdateStatus(ctx, event.Data.Reference, status, event.Raw)
	if err != nil {
		// An event for a reference we never stored is acknowledged rather
		// than erred, otherwise the gateway keeps redelivering it.
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "webhook references unknown donation",
				zap.String("reference", event.Data.Reference),
				zap.String("event", event.Event))
			return nil
		}
		return err
	}

	logger.Info(ctx, "donation status updated from webhook",
		zap.String("reference", event.Data.Reference),
		zap.String("status", string(status)))
	return nil
}
