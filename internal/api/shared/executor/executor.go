package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/runera/runera-backend/internal/api/shared/dto"
	apierrors "github.com/runera/runera-backend/internal/api/shared/errors"
	"github.com/runera/runera-backend/internal/auth"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/store"
	"github.com/runera/runera-backend/internal/verification"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// IssueAuthChallenge creates a login challenge for a wallet
	IssueAuthChallenge(ctx context.Context, walletAddress string) (*auth.Challenge, error)

	// Connect redeems a signed login challenge for a session token
	Connect(ctx context.Context, req dto.ConnectRequest) (*dto.ConnectResponse, error)

	// SubmitRun validates and records a run
	SubmitRun(ctx context.Context, input verification.SubmitRunInput) (*verification.SubmitRunResult, error)

	// GetRun retrieves a run with its audit trail
	GetRun(ctx context.Context, runID string) (*dto.RunResponse, error)

	// GetUserProfile retrieves the progression snapshot of a wallet
	GetUserProfile(ctx context.Context, walletAddress string) (*dto.ProfileResponse, error)

	// ListActiveEvents retrieves the events currently open for joining
	ListActiveEvents(ctx context.Context) (*dto.EventListResponse, error)

	// GetEventEligibility evaluates the join rules of an event for a wallet
	GetEventEligibility(ctx context.Context, eventID string, walletAddress string) (*dto.EligibilityResponse, error)

	// JoinEvent records the participation of a wallet in an event
	JoinEvent(ctx context.Context, eventID string, walletAddress string) (*dto.ParticipationResponse, error)
}

type executor struct {
	store       store.Store
	coordinator verification.Coordinator
	events      events.Engine
	auth        auth.Service
}

func NewExecutor(store store.Store, coordinator verification.Coordinator, engine events.Engine, authService auth.Service) Executor {
	return &executor{
		store:       store,
		coordinator: coordinator,
		events:      engine,
		auth:        authService,
	}
}

func (e *executor) IssueAuthChallenge(ctx context.Context, walletAddress string) (*auth.Challenge, error) {
	challenge, err := e.auth.IssueChallenge(ctx, walletAddress)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to create nonce")
	}
	return challenge, nil
}

func (e *executor) Connect(ctx context.Context, req dto.ConnectRequest) (*dto.ConnectResponse, error) {
	session, err := e.auth.Connect(ctx, auth.ConnectInput{
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Message:       req.Message,
		Challenge:     req.Nonce,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Authentication failed")
	}

	return &dto.ConnectResponse{
		Token: session.Token,
		User:  dto.MapUserToDTO(session.User),
	}, nil
}

func (e *executor) SubmitRun(ctx context.Context, input verification.SubmitRunInput) (*verification.SubmitRunResult, error) {
	result, err := e.coordinator.SubmitRun(ctx, input)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to submit run")
	}
	return result, nil
}

func (e *executor) GetRun(ctx context.Context, runID string) (*dto.RunResponse, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid run id", nil)
	}

	run, err := e.store.GetRunByID(ctx, runID)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to get run: %v", err))
	}
	if run == nil {
		return nil, apierrors.FromDomainError(domain.ErrRunNotFound, "")
	}

	history, err := e.store.GetRunStatusHistory(ctx, runID)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to get run history: %v", err))
	}

	return dto.MapRunToDTO(run, history), nil
}

func (e *executor) GetUserProfile(ctx context.Context, walletAddress string) (*dto.ProfileResponse, error) {
	wallet, err := domain.NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "")
	}

	user, err := e.store.GetUserByWallet(ctx, wallet)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.FromDomainError(domain.ErrUserNotFound, "")
	}

	completed, err := e.store.CountCompletedParticipations(ctx, user.ID)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to count achievements: %v", err))
	}

	return dto.MapProfileToDTO(user, completed), nil
}

func (e *executor) ListActiveEvents(ctx context.Context) (*dto.EventListResponse, error) {
	active, err := e.events.ListActiveEvents(ctx)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to list events: %v", err))
	}

	resp := &dto.EventListResponse{Events: make([]dto.EventResponse, len(active))}
	for i := range active {
		resp.Events[i] = dto.MapEventToDTO(&active[i])
	}
	return resp, nil
}

func (e *executor) GetEventEligibility(ctx context.Context, eventID string, walletAddress string) (*dto.EligibilityResponse, error) {
	event, eligibility, err := e.events.GetEligibility(ctx, eventID, walletAddress)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to check eligibility")
	}
	return dto.MapEligibilityToDTO(event, eligibility), nil
}

func (e *executor) JoinEvent(ctx context.Context, eventID string, walletAddress string) (*dto.ParticipationResponse, error) {
	participation, err := e.events.Join(ctx, eventID, walletAddress)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to join event")
	}
	return dto.MapParticipationToDTO(strings.ToLower(strings.TrimSpace(eventID)), participation), nil
}
