package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "petty-shelter.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an error to its HTTP status and sends the error envelope.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"message": appErr.Message})
		return
	}

	c.JSON(statusFor(err), gin.H{"message": err.Error()})
}

// ErrorWithStatus sends an error response with an explicit status.
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrInvalidResetToken),
		errors.Is(err, domainerrors.ErrInvalidConfirmation):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domainerrors.ErrUpstreamFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
