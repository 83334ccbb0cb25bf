package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runera/runera-backend/internal/api/rest"
	"github.com/runera/runera-backend/internal/api/shared/dto"
	apierrors "github.com/runera/runera-backend/internal/api/shared/errors"
	"github.com/runera/runera-backend/internal/auth"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/mocks"
	"github.com/runera/runera-backend/internal/ratelimit"
	"github.com/runera/runera-backend/internal/verification"
)

const (
	testWallet  = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	otherWallet = "0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc"
	testEventID = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testToken   = "session-token"
)

type testHandler struct {
	executor *mocks.MockAPIExecutor
	auth     *mocks.MockAuthService
	limiter  *mocks.MockRateLimiter
	router   *gin.Engine
}

func setupTestHandler(t *testing.T, withLimiter bool) *testHandler {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	th := &testHandler{
		executor: mocks.NewMockAPIExecutor(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
		limiter:  mocks.NewMockRateLimiter(ctrl),
		router:   gin.New(),
	}

	var limiter ratelimit.Limiter
	if withLimiter {
		limiter = th.limiter
	}
	rest.SetupRoutes(th.router, rest.NewHandler(th.executor, limiter), th.auth)
	return th
}

func (th *testHandler) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	th.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

func validRunBody(wallet string) map[string]any {
	return map[string]any{
		"walletAddress":   wallet,
		"distanceMeters":  10000,
		"durationSeconds": 3000,
		"startTime":       "2025-01-15T06:00:00Z",
		"endTime":         "2025-01-15T06:50:00Z",
		"deviceHash":      "device-abc",
	}
}

func TestHealthCheck(t *testing.T) {
	th := setupTestHandler(t, false)

	w := th.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"runera-api"}`, w.Body.String())
}

func TestIssueNonce(t *testing.T) {
	th := setupTestHandler(t, false)
	expiresAt := time.Date(2025, 1, 15, 7, 5, 0, 0, time.UTC)

	th.executor.EXPECT().IssueAuthChallenge(gomock.Any(), testWallet).Return(&auth.Challenge{
		Nonce:     "abc123",
		ExpiresAt: expiresAt,
		Message:   auth.LoginMessage("abc123"),
	}, nil)

	w := th.do(http.MethodPost, "/auth/nonce", map[string]string{"walletAddress": "  " + testWallet + " "}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var challenge auth.Challenge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &challenge))
	assert.Equal(t, "abc123", challenge.Nonce)
	assert.Equal(t, "RUNERA login\nNonce: abc123", challenge.Message)
	assert.True(t, expiresAt.Equal(challenge.ExpiresAt))
}

func TestIssueNonce_InvalidWallet(t *testing.T) {
	th := setupTestHandler(t, false)

	for _, body := range []any{map[string]string{"walletAddress": "0x123"}, "not json"} {
		w := th.do(http.MethodPost, "/auth/nonce", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, string(apierrors.ErrCodeBadRequest), decodeError(t, w)["code"])
	}
}

func TestConnect(t *testing.T) {
	th := setupTestHandler(t, false)

	th.executor.EXPECT().Connect(gomock.Any(), dto.ConnectRequest{
		WalletAddress: testWallet,
		Signature:     "0xsig",
		Message:       "RUNERA login\nNonce: abc",
		Nonce:         "abc",
	}).Return(&dto.ConnectResponse{
		Token: testToken,
		User:  dto.UserResponse{ID: "user-1", WalletAddress: testWallet, Tier: 1, Level: 1},
	}, nil)

	w := th.do(http.MethodPost, "/auth/connect", map[string]string{
		"walletAddress": testWallet,
		"signature":     " 0xsig ",
		"message":       "RUNERA login\nNonce: abc",
		"nonce":         "abc",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConnectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testToken, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestConnect_ErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{"unknown challenge", domain.ErrInvalidAuthChallenge, http.StatusBadRequest, apierrors.ErrCodeInvalidNonce},
		{"expired challenge", domain.ErrAuthChallengeExpired, http.StatusBadRequest, apierrors.ErrCodeNonceExpired},
		{"unrecoverable signature", domain.ErrSignatureInvalid, http.StatusBadRequest, apierrors.ErrCodeSignatureInvalid},
		{"wrong signer", domain.ErrSignatureMismatch, http.StatusUnauthorized, apierrors.ErrCodeSignatureMismatch},
		{"message without challenge", auth.ErrMessageMissingChallenge, http.StatusBadRequest, apierrors.ErrCodeBadRequest},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := setupTestHandler(t, false)
			th.executor.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := th.do(http.MethodPost, "/auth/connect", map[string]string{
				"walletAddress": testWallet,
				"signature":     "0xsig",
				"message":       "RUNERA login\nNonce: abc",
				"nonce":         "abc",
			}, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, string(tt.code), decodeError(t, w)["code"])
		})
	}
}

func TestConnect_MissingCredentials(t *testing.T) {
	th := setupTestHandler(t, false)

	w := th.do(http.MethodPost, "/auth/connect", map[string]string{"walletAddress": testWallet}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "signature, message, and nonce are required", decodeError(t, w)["message"])
}

func TestSubmitRun_Anonymous(t *testing.T) {
	th := setupTestHandler(t, false)

	th.executor.EXPECT().SubmitRun(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input verification.SubmitRunInput) (*verification.SubmitRunResult, error) {
			assert.Equal(t, testWallet, input.WalletAddress)
			assert.Equal(t, 10000.0, input.DistanceMeters)
			assert.Equal(t, "device-abc", input.DeviceHash)
			return &verification.SubmitRunResult{RunID: "run-1", Status: domain.RunStatusVerified}, nil
		})

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"runId":"run-1","status":"VERIFIED","reasonCode":null}`, w.Body.String())
}

func TestSubmitRun_InvalidPayloadListsEveryProblem(t *testing.T) {
	th := setupTestHandler(t, false)

	w := th.do(http.MethodPost, "/run/submit", map[string]any{
		"walletAddress":  "nope",
		"distanceMeters": -1,
		"startTime":      "yesterday",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	errBody := decodeError(t, w)
	assert.Equal(t, "ERR_BAD_REQUEST", errBody["code"])
	assert.Equal(t, "Invalid run payload", errBody["message"])

	details, ok := errBody["details"].(map[string]any)
	require.True(t, ok)
	problems, ok := details["errors"].([]any)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(problems), 4)
}

func TestSubmitRun_MalformedBody(t *testing.T) {
	th := setupTestHandler(t, false)

	for _, body := range []string{`{"distanceMeters":`, `[1, 2]`} {
		w := th.do(http.MethodPost, "/run/submit", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid run payload", decodeError(t, w)["message"])
	}
}

func TestSubmitRun_TokenMustMatchWallet(t *testing.T) {
	th := setupTestHandler(t, false)
	th.auth.EXPECT().ParseToken(testToken).Return(&auth.Claims{WalletAddress: otherWallet}, nil)

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), testToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ERR_FORBIDDEN", decodeError(t, w)["code"])
}

func TestSubmitRun_MatchingToken(t *testing.T) {
	th := setupTestHandler(t, false)
	th.auth.EXPECT().ParseToken(testToken).Return(&auth.Claims{WalletAddress: testWallet}, nil)
	th.executor.EXPECT().SubmitRun(gomock.Any(), gomock.Any()).
		Return(&verification.SubmitRunResult{RunID: "run-1", Status: domain.RunStatusVerified}, nil)

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), testToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitRun_InvalidTokenRejected(t *testing.T) {
	th := setupTestHandler(t, false)
	th.auth.EXPECT().ParseToken("garbage").Return(nil, auth.ErrInvalidToken)

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_UNAUTHORIZED", decodeError(t, w)["code"])
}

func TestSubmitRun_RateLimited(t *testing.T) {
	th := setupTestHandler(t, true)
	th.limiter.EXPECT().Allow(gomock.Any(), testWallet).
		Return(ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond}, nil)

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Equal(t, "ERR_RATE_LIMITED", decodeError(t, w)["code"])
}

func TestSubmitRun_LimiterFailureAllows(t *testing.T) {
	th := setupTestHandler(t, true)
	th.limiter.EXPECT().Allow(gomock.Any(), testWallet).Return(ratelimit.Decision{}, errors.New("redis down"))
	th.executor.EXPECT().SubmitRun(gomock.Any(), gomock.Any()).
		Return(&verification.SubmitRunResult{RunID: "run-1", Status: domain.RunStatusVerified}, nil)

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitRun_InternalError(t *testing.T) {
	th := setupTestHandler(t, false)
	th.executor.EXPECT().SubmitRun(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.FromDomainError(errors.New("deadlock"), "Failed to submit run"))

	w := th.do(http.MethodPost, "/run/submit", validRunBody(testWallet), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	errBody := decodeError(t, w)
	assert.Equal(t, "ERR_INTERNAL", errBody["code"])
	assert.Equal(t, "Failed to submit run", errBody["message"])
}

func TestGetRun(t *testing.T) {
	th := setupTestHandler(t, false)
	th.executor.EXPECT().GetRun(gomock.Any(), "run-1").Return(&dto.RunResponse{
		ID:     "run-1",
		Status: domain.RunStatusVerified,
		History: []dto.RunStatusHistoryResponse{
			{Status: domain.RunStatusSubmitted},
			{Status: domain.RunStatusValidating},
			{Status: domain.RunStatusVerified},
		},
	}, nil)

	w := th.do(http.MethodGet, "/runs/run-1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var run dto.RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Len(t, run.History, 3)
}

func TestGetRun_NotFound(t *testing.T) {
	th := setupTestHandler(t, false)
	th.executor.EXPECT().GetRun(gomock.Any(), "missing").Return(nil, domain.ErrRunNotFound)

	w := th.do(http.MethodGet, "/runs/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", decodeError(t, w)["code"])
}

func TestGetUserProfile(t *testing.T) {
	th := setupTestHandler(t, false)
	th.executor.EXPECT().GetUserProfile(gomock.Any(), testWallet).Return(&dto.ProfileResponse{
		UserResponse:     dto.UserResponse{WalletAddress: testWallet, Exp: 100, Level: 2},
		AchievementCount: 1,
		Attestation:      dto.AttestationResponse{Sequence: 3},
	}, nil)

	w := th.do(http.MethodGet, "/users/"+testWallet+"/profile", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, testWallet, profile["walletAddress"])
	assert.EqualValues(t, 100, profile["exp"])
	assert.EqualValues(t, 1, profile["achievementCount"])
}

func TestListEvents(t *testing.T) {
	th := setupTestHandler(t, false)
	th.executor.EXPECT().ListActiveEvents(gomock.Any()).Return(&dto.EventListResponse{
		Events: []dto.EventResponse{{EventID: testEventID, Name: "RUNERA Genesis 10K"}},
	}, nil)

	w := th.do(http.MethodGet, "/events", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, testEventID, resp.Events[0].EventID)
}

func TestGetEventEligibility(t *testing.T) {
	th := setupTestHandler(t, false)
	th.executor.EXPECT().GetEventEligibility(gomock.Any(), testEventID, testWallet).
		Return(&dto.EligibilityResponse{Event: dto.EventResponse{EventID: testEventID}}, nil)

	w := th.do(http.MethodGet, "/events/"+testEventID+"/eligibility?walletAddress="+testWallet, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = th.do(http.MethodGet, "/events/"+testEventID+"/eligibility", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinEvent(t *testing.T) {
	th := setupTestHandler(t, false)
	th.auth.EXPECT().ParseToken(testToken).Return(&auth.Claims{WalletAddress: testWallet}, nil)
	th.executor.EXPECT().JoinEvent(gomock.Any(), testEventID, testWallet).Return(&dto.ParticipationResponse{
		EventID: testEventID,
		Status:  domain.ParticipationStatusJoined,
	}, nil)

	w := th.do(http.MethodPost, "/events/"+testEventID+"/join", nil, testToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"JOINED"`)
}

func TestJoinEvent_RequiresToken(t *testing.T) {
	th := setupTestHandler(t, false)

	w := th.do(http.MethodPost, "/events/"+testEventID+"/join", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJoinEvent_ErrorCodes(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{domain.ErrNotEligible, http.StatusForbidden, apierrors.ErrCodeNotEligible},
		{domain.ErrEventClosed, http.StatusConflict, apierrors.ErrCodeEventClosed},
		{domain.ErrParticipationCompleted, http.StatusConflict, apierrors.ErrCodeAlreadyCompleted},
		{domain.ErrEventNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound, apierrors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			th := setupTestHandler(t, false)
			th.auth.EXPECT().ParseToken(testToken).Return(&auth.Claims{WalletAddress: testWallet}, nil)
			th.executor.EXPECT().JoinEvent(gomock.Any(), testEventID, testWallet).Return(nil, tt.err)

			w := th.do(http.MethodPost, "/events/"+testEventID+"/join", nil, testToken)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, string(tt.code), decodeError(t, w)["code"])
		})
	}
}
