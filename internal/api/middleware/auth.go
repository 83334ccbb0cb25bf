package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/runera/runera-backend/internal/api/shared/errors"
	"github.com/runera/runera-backend/internal/auth"
	"github.com/runera/runera-backend/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_CLAIMS_KEY contextKey = "auth_claims"
)

// AuthResult holds the result of authentication
type AuthResult struct {
	Success bool
	Claims  *auth.Claims
	Error   error
}

var errMissingAuthHeader = errors.New("missing Authorization header")

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, svc auth.Service) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errMissingAuthHeader
		return result
	}

	// Parse the authorization header
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	if strings.ToLower(parts[0]) != "bearer" {
		result.Error = fmt.Errorf("unsupported authorization type: %s", parts[0])
		return result
	}

	claims, err := svc.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.Claims = claims
	return result
}

// Auth returns a gin middleware that rejects requests without a valid session token
func Auth(svc auth.Service) gin.HandlerFunc {
	return authenticate(svc, true)
}

// OptionalAuth returns a gin middleware that accepts anonymous requests.
// A token that is present must still be valid.
func OptionalAuth(svc auth.Service) gin.HandlerFunc {
	return authenticate(svc, false)
}

func authenticate(svc auth.Service, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" && !required {
			c.Next()
			return
		}

		result := Authenticate(authHeader, svc)
		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.ErrorResponse{
				Error: apierrors.NewUnauthorizedError("Authentication failed"),
			})
			return
		}

		c.Set(string(AUTH_CLAIMS_KEY), result.Claims)
		logger.DebugCtx(c.Request.Context(), "JWT authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("subject", result.Claims.Subject),
		)

		c.Next()
	}
}

// ClaimsFromContext returns the session claims stored by the auth middleware
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(string(AUTH_CLAIMS_KEY))
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok && claims != nil
}
