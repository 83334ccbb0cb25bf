package rest

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/api/middleware"
	"github.com/runera/runera-backend/internal/api/shared/dto"
	apierrors "github.com/runera/runera-backend/internal/api/shared/errors"
	"github.com/runera/runera-backend/internal/api/shared/executor"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/ratelimit"
	"github.com/runera/runera-backend/internal/verification"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// IssueNonce creates a login challenge for a wallet
	// POST /auth/nonce
	IssueNonce(c *gin.Context)

	// Connect redeems a signed login challenge for a session token
	// POST /auth/connect
	Connect(c *gin.Context)

	// SubmitRun validates and records a run
	// POST /run/submit
	SubmitRun(c *gin.Context)

	// GetRun retrieves a run with its status history
	// GET /runs/:id
	GetRun(c *gin.Context)

	// GetUserProfile retrieves the progression snapshot of a wallet
	// GET /users/:address/profile
	GetUserProfile(c *gin.Context)

	// ListEvents retrieves the active events
	// GET /events
	ListEvents(c *gin.Context)

	// GetEventEligibility evaluates the join rules of an event for a wallet
	// GET /events/:eventId/eligibility?walletAddress=<address>
	GetEventEligibility(c *gin.Context)

	// JoinEvent records the participation of the authenticated wallet (requires authentication)
	// POST /events/:eventId/join
	JoinEvent(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	limiter  ratelimit.Limiter
}

// NewHandler creates a new REST API handler using the shared executor.
// A nil limiter disables submission rate limiting.
func NewHandler(exec executor.Executor, limiter ratelimit.Limiter) Handler {
	return &handler{
		executor: exec,
		limiter:  limiter,
	}
}

// IssueNonce creates a login challenge for a wallet
func (h *handler) IssueNonce(c *gin.Context) {
	var req dto.NonceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "walletAddress must be a valid 0x address")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	challenge, err := h.executor.IssueAuthChallenge(c.Request.Context(), req.WalletAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// Connect redeems a signed login challenge for a session token
func (h *handler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.executor.Connect(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitRun validates and records a run
func (h *handler) SubmitRun(c *gin.Context) {
	var payload verification.RunPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apierrors.NewPayloadError("Invalid run payload", []string{"request body must be a JSON object"}))
		return
	}

	input, err := payload.Parse()
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondError(c, apierrors.NewPayloadError("Invalid run payload", verr.Problems))
			return
		}
		respondError(c, err)
		return
	}

	if claims, ok := middleware.ClaimsFromContext(c); ok && claims.WalletAddress != input.WalletAddress {
		respondError(c, apierrors.NewForbiddenError("Token does not belong to walletAddress"))
		return
	}

	if !h.allowSubmission(c, input.WalletAddress) {
		return
	}

	result, err := h.executor.SubmitRun(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// allowSubmission applies the per-wallet submission limit. Limiter failures let the request through.
func (h *handler) allowSubmission(c *gin.Context, wallet string) bool {
	if h.limiter == nil {
		return true
	}

	decision, err := h.limiter.Allow(c.Request.Context(), wallet)
	if err != nil {
		logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable, allowing submission",
			zap.Error(err),
			zap.String("wallet_address", wallet),
		)
		return true
	}
	if decision.Allowed {
		return true
	}

	retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
	if retryAfter < 1 {
		retryAfter = 1
	}
	c.Header("Retry-After", strconv.Itoa(retryAfter))
	respondError(c, apierrors.NewRateLimitedError("Too many run submissions"))
	return false
}

// GetRun retrieves a run with its status history
func (h *handler) GetRun(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		respondBadRequest(c, "Run id is required")
		return
	}

	run, err := h.executor.GetRun(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetUserProfile retrieves the progression snapshot of a wallet
func (h *handler) GetUserProfile(c *gin.Context) {
	profile, err := h.executor.GetUserProfile(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListEvents retrieves the active events
func (h *handler) ListEvents(c *gin.Context) {
	resp, err := h.executor.ListActiveEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEventEligibility evaluates the join rules of an event for a wallet
func (h *handler) GetEventEligibility(c *gin.Context) {
	wallet := c.Query("walletAddress")
	if wallet == "" {
		respondBadRequest(c, "walletAddress query parameter is required")
		return
	}

	resp, err := h.executor.GetEventEligibility(c.Request.Context(), c.Param("eventId"), wallet)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// JoinEvent records the participation of the authenticated wallet
func (h *handler) JoinEvent(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondError(c, apierrors.NewUnauthorizedError("Authentication required"))
		return
	}

	resp, err := h.executor.JoinEvent(c.Request.Context(), c.Param("eventId"), claims.WalletAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "runera-api",
	})
}
