package api

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context key for the resolved user record
const ContextUserKey = "currentUser"

// AuthMiddleware creates a Gin middleware that verifies the bearer token and
// resolves it to the current user record. The account-status gate runs on
// every request, so a suspension takes effect immediately even for
// still-unexpired tokens.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken):
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, service.ErrUserNotFound):
				abortWithError(c, http.StatusNotFound, "User not found")
			case errors.Is(err, service.ErrAccountDisabled):
				abortWithError(c, http.StatusForbidden, "Account is suspended")
			default:
				abortWithError(c, http.StatusInternalServerError, "Authentication failed")
			}
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAction creates middleware that checks the static permission table
// before the handler runs. Must run AFTER AuthMiddleware.
func RequireAction(action domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := getCurrentUser(c)
		if err != nil {
			// Only reachable if AuthMiddleware did not run
			abortWithError(c, http.StatusInternalServerError, "User not found in context")
			return
		}

		if !domain.Allowed(user.Role, action) {
			abortWithError(c, http.StatusForbidden, fmt.Sprintf("Access denied: role '%s' does not have permission", user.Role))
			return
		}

		c.Next()
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": message})
}

// getCurrentUser returns the user record resolved by AuthMiddleware.
func getCurrentUser(c *gin.Context) (*domain.User, error) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := raw.(*domain.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}
