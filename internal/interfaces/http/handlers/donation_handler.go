package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/interfaces/http/middleware"
	"petty-shelter.backend/internal/interfaces/http/response"
	"petty-shelter.backend/internal/usecases"
)

// DonationHandler handles payment initialization, verification and the
// gateway webhook
type DonationHandler struct {
	donationUsecase *usecases.DonationUsecase
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationUsecase *usecases.DonationUsecase) *DonationHandler {
	return &DonationHandler{donationUsecase: donationUsecase}
}

// Initialize handles POST /donations/payment/initialize
func (h *DonationHandler) Initialize(c *gin.Context) {
	var input entities.InitializeDonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.donationUsecase.Initialize(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Verify handles GET /donations/payment/verify/:reference
func (h *DonationHandler) Verify(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		response.Error(c, domainerrors.BadRequest("reference is required"))
		return
	}

	donation, err := h.donationUsecase.Verify(c.Request.Context(), reference)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, donation)
}

// List handles GET /donations
func (h *DonationHandler) List(c *gin.Context) {
	donations, meta, err := h.donationUsecase.List(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"donations":  donations,
		"pagination": meta,
	})
}

// Webhook handles POST /donations/payment/webhook. The signature middleware
// has already verified the raw body; the handler parses those exact bytes.
func (h *DonationHandler) Webhook(c *gin.Context) {
	body, ok := middleware.GetWebhookBody(c)
	if !ok {
		response.Error(c, domainerrors.BadRequest("missing webhook body"))
		return
	}

	var event usecases.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.Error(c, domainerrors.BadRequest("malformed webhook payload"))
		return
	}
	event.Raw = body

	if err := h.donationUsecase.HandleWebhook(c.Request.Context(), &event); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "ok"})
}
