package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/runera/runera-backend/internal/auth"
	"github.com/runera/runera-backend/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest        ErrorCode = "ERR_BAD_REQUEST"
	ErrCodeInvalidNonce      ErrorCode = "ERR_INVALID_NONCE"
	ErrCodeNonceExpired      ErrorCode = "ERR_NONCE_EXPIRED"
	ErrCodeSignatureInvalid  ErrorCode = "ERR_SIGNATURE_INVALID"
	ErrCodeSignatureMismatch ErrorCode = "ERR_SIGNATURE_MISMATCH"
	ErrCodeUnauthorized      ErrorCode = "ERR_UNAUTHORIZED"
	ErrCodeForbidden         ErrorCode = "ERR_FORBIDDEN"
	ErrCodeNotFound          ErrorCode = "ERR_NOT_FOUND"
	ErrCodeNotEligible       ErrorCode = "ERR_NOT_ELIGIBLE"
	ErrCodeEventClosed       ErrorCode = "ERR_EVENT_CLOSED"
	ErrCodeAlreadyCompleted  ErrorCode = "ERR_ALREADY_COMPLETED"
	ErrCodeRateLimited       ErrorCode = "ERR_RATE_LIMITED"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "ERR_INTERNAL"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Status  int       `json:"-"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// ErrorResponse is the envelope every failed request is answered with
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// Error constructors for common error types
func NewBadRequestError(message string, details any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: message, Details: details}
}

// NewPayloadError lists every problem found in a request body
func NewPayloadError(message string, problems []string) *APIError {
	return NewBadRequestError(message, map[string][]string{"errors": problems})
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: message}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: ErrCodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Code: ErrCodeForbidden, Message: message}
}

func NewRateLimitedError(message string) *APIError {
	return &APIError{Status: http.StatusTooManyRequests, Code: ErrCodeRateLimited, Message: message}
}

func NewInternalError(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternalError, Message: message}
}

// FromDomainError maps a service error onto its API error.
// Errors without a mapping become an internal error carrying fallback as message.
func FromDomainError(err error, fallback string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidWalletAddress):
		return NewBadRequestError("walletAddress must be a valid 0x address", nil)
	case errors.Is(err, domain.ErrInvalidEventID):
		return NewBadRequestError("eventId must be a 0x-prefixed 32-byte hex string", nil)
	case errors.Is(err, auth.ErrMissingCredentials):
		return NewBadRequestError("signature, message, and nonce are required", nil)
	case errors.Is(err, auth.ErrMessageMissingChallenge):
		return NewBadRequestError("message must include nonce", nil)
	case errors.Is(err, domain.ErrInvalidAuthChallenge):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeInvalidNonce, Message: "Nonce not found or already used"}
	case errors.Is(err, domain.ErrAuthChallengeExpired):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeNonceExpired, Message: "Nonce expired"}
	case errors.Is(err, domain.ErrSignatureInvalid):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeSignatureInvalid, Message: "Signature verification failed"}
	case errors.Is(err, domain.ErrSignatureMismatch):
		return &APIError{Status: http.StatusUnauthorized, Code: ErrCodeSignatureMismatch, Message: "Signature does not match wallet address"}
	case errors.Is(err, auth.ErrInvalidToken):
		return NewUnauthorizedError("Invalid or expired token")
	case errors.Is(err, domain.ErrUserNotFound):
		return NewNotFoundError("User not found")
	case errors.Is(err, domain.ErrRunNotFound):
		return NewNotFoundError("Run not found")
	case errors.Is(err, domain.ErrEventNotFound):
		return NewNotFoundError("Event not found")
	case errors.Is(err, domain.ErrNotEligible):
		return &APIError{Status: http.StatusForbidden, Code: ErrCodeNotEligible, Message: "User is not eligible for this event"}
	case errors.Is(err, domain.ErrEventClosed):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeEventClosed, Message: "Event is not open"}
	case errors.Is(err, domain.ErrParticipationCompleted):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeAlreadyCompleted, Message: "Event already completed"}
	}

	return NewInternalError(fallback)
}
