package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	"petty-shelter.backend/internal/usecases/authctx"
	"petty-shelter.backend/pkg/jwt"
)

const (
	// SessionCookie carries the session JWT for browser clients.
	SessionCookie = "pt_session"
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// sessionToken extracts the JWT from the session cookie, falling back to a
// bearer header for non-browser clients. Cookie values may arrive URL
// encoded and quoted, so both layers are stripped.
func sessionToken(c *gin.Context) string {
	if raw, err := c.Cookie(SessionCookie); err == nil && raw != "" {
		if decoded, err := url.QueryUnescape(raw); err == nil {
			raw = decoded
		}
		return strings.Trim(raw, `"`)
	}

	header := c.GetHeader(AuthorizationHeader)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimPrefix(header, BearerPrefix)
	}
	return ""
}

// SessionAuth authenticates the request from the session cookie or bearer
// token and stores the caller identity on the gin context.
func SessionAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authentication required",
			})
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			message := "invalid session"
			if err == jwt.ErrExpiredToken {
				message = "session expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": message,
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// GetCaller assembles the caller identity stored by SessionAuth.
func GetCaller(c *gin.Context) (authctx.Caller, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return authctx.Caller{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return authctx.Caller{}, false
	}
	return authctx.Caller{UserID: userID, Role: entities.UserRole(role)}, true
}

// RequireStaff restricts a route to the admin and volunteer roles. The
// failure reads as an authentication problem, matching the API contract.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetUserRole(c)
		if !exists || !entities.UserRole(role).IsStaff() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "staff access required",
			})
			return
		}
		c.Next()
	}
}
