package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/interfaces/http/middleware"
	"petty-shelter.backend/internal/interfaces/http/response"
	"petty-shelter.backend/internal/usecases"
)

// UserHandler handles accounts, sessions, credential recovery and visits
type UserHandler struct {
	authUsecase   *usecases.AuthUsecase
	userUsecase   *usecases.UserUsecase
	visitUsecase  *usecases.VisitUsecase
	sessionExpiry time.Duration
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	authUsecase *usecases.AuthUsecase,
	userUsecase *usecases.UserUsecase,
	visitUsecase *usecases.VisitUsecase,
	sessionExpiry time.Duration,
) *UserHandler {
	return &UserHandler{
		authUsecase:   authUsecase,
		userUsecase:   userUsecase,
		visitUsecase:  visitUsecase,
		sessionExpiry: sessionExpiry,
	}
}

func deviceInfo(c *gin.Context) entities.DeviceInfo {
	return entities.DeviceInfo{
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	}
}

func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.sessionExpiry.Seconds()), "/", "", false, true)
}

// inviteTokenFromHeader pulls an optional staff invite token off the
// Authorization header, which signup requests are free to omit.
func inviteTokenFromHeader(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(header)
}

// Signup handles POST /users
func (h *UserHandler) Signup(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Signup(c.Request.Context(), &input, inviteTokenFromHeader(c), deviceInfo(c))
	if err != nil {
		// A taken email is refused outright rather than reported as a
		// resolvable conflict.
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.ErrorWithStatus(c, http.StatusForbidden, "an account with this email already exists")
			return
		}
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp)
}

// Signin handles POST /users/signin
func (h *UserHandler) Signin(c *gin.Context) {
	var input entities.SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Signin(c.Request.Context(), &input, deviceInfo(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)
	response.Success(c, http.StatusOK, resp)
}

// Signout handles POST /users/signout
func (h *UserHandler) Signout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "signed out"})
}

// GetCurrent handles GET /users/get
func (h *UserHandler) GetCurrent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.requireSelfOrStaff(c, id); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.requireSelfOrStaff(c, id); err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.requireSelfOrStaff(c, id); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "account deleted"})
}

func (h *UserHandler) requireSelfOrStaff(c *gin.Context, id uuid.UUID) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return domainerrors.Unauthorized("authentication required")
	}
	if caller.UserID != id && !caller.Role.IsStaff() {
		return domainerrors.ErrForbidden
	}
	return nil
}

// RequestPasswordReset handles POST /users/reset-password
func (h *UserHandler) RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	// The response never confirms whether an account exists; an unknown
	// email gets the same answer as a successful request.
	err := h.authUsecase.RequestPasswordReset(c.Request.Context(), input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "if an account exists with that email, a password reset link has been sent",
	})
}

// ResetPassword handles POST /users/reset-password/:token
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), c.Param("token"), input.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "password updated"})
}

// ConfirmEmail handles POST /users/confirm-email. A request without a code
// issues a fresh confirmation code; a request carrying one verifies it.
func (h *UserHandler) ConfirmEmail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input struct {
		Code string `json:"code"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	if input.Code == "" {
		if err := h.authUsecase.SendConfirmationCode(c.Request.Context(), user); err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"message": "confirmation code sent"})
		return
	}

	if err := h.authUsecase.ConfirmEmail(c.Request.Context(), user, input.Code); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "email confirmed"})
}

// Invite handles POST /users/invite
func (h *UserHandler) Invite(c *gin.Context) {
	var input entities.CreateInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invite, err := h.authUsecase.CreateInvite(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invite)
}

// ScheduleVisit handles POST /users/schedule-visit
func (h *UserHandler) ScheduleVisit(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ScheduleVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	visit, err := h.visitUsecase.Schedule(c.Request.Context(), caller, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}

// ListVisits handles GET /users/list-visits
func (h *UserHandler) ListVisits(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	visits, err := h.visitUsecase.List(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, visits)
}

// GetVisit handles GET /users/get-visit/:visitId
func (h *UserHandler) GetVisit(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("visitId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid visit id"))
		return
	}

	visit, err := h.visitUsecase.Get(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}

// UpdateVisitStatus handles PATCH /users/update-visit-status
func (h *UserHandler) UpdateVisitStatus(c *gin.Context) {
	var input entities.UpdateVisitStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	visit, err := h.visitUsecase.UpdateStatus(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}
