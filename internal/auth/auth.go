package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/domain"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/store"
	"github.com/runera/runera-backend/internal/store/schema"
)

const DEFAULT_TOKEN_TTL = 7 * 24 * time.Hour

var (
	// ErrMessageMissingChallenge is returned when the signed message does not embed the challenge
	ErrMessageMissingChallenge = errors.New("message must include nonce")
	// ErrMissingCredentials is returned when signature, message or challenge is empty
	ErrMissingCredentials = errors.New("signature, message, and nonce are required")
	// ErrInvalidToken is returned when a session token cannot be validated
	ErrInvalidToken = errors.New("invalid session token")
)

// Config holds authentication configuration
type Config struct {
	JWTSecret    string
	TokenTTL     time.Duration
	ChallengeTTL time.Duration
}

// Claims are the session token claims. Subject is the user ID.
type Claims struct {
	WalletAddress string `json:"walletAddress"`
	jwt.RegisteredClaims
}

// Challenge is a login challenge issued to a wallet
type Challenge struct {
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
	Message   string    `json:"message"`
}

// ConnectInput is a signed login attempt
type ConnectInput struct {
	WalletAddress string
	Signature     string
	Message       string
	Challenge     string
}

// Session is the outcome of a successful login
type Session struct {
	Token string
	User  *schema.User
}

// Service issues login challenges and session tokens
//
//go:generate mockgen -source=auth.go -destination=../mocks/auth.go -package=mocks -mock_names=Service=MockAuthService
type Service interface {
	// IssueChallenge creates a one-time login challenge for a wallet
	IssueChallenge(ctx context.Context, walletAddress string) (*Challenge, error)
	// Connect verifies a personal_sign signature over a challenge and opens a session
	Connect(ctx context.Context, input ConnectInput) (*Session, error)
	// ParseToken validates a session token and returns its claims
	ParseToken(token string) (*Claims, error)
}

type service struct {
	store  store.Store
	clock  adapter.Clock
	secret []byte
	ttl    time.Duration
	chTTL  time.Duration
}

// NewService creates a new auth service
func NewService(cfg Config, st store.Store, clock adapter.Clock) (Service, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DEFAULT_TOKEN_TTL
	}
	chTTL := cfg.ChallengeTTL
	if chTTL <= 0 {
		chTTL = domain.AUTH_CHALLENGE_TTL
	}

	return &service{
		store:  st,
		clock:  clock,
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
		chTTL:  chTTL,
	}, nil
}

// LoginMessage returns the text a wallet signs to redeem a challenge
func LoginMessage(challenge string) string {
	return domain.AUTH_CHALLENGE_PREFIX + challenge
}

func (s *service) IssueChallenge(ctx context.Context, walletAddress string) (*Challenge, error) {
	wallet, err := domain.NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate challenge: %w", err)
	}
	value := hex.EncodeToString(buf)

	now := s.clock.Now()
	challenge, err := s.store.CreateAuthChallenge(ctx, store.CreateAuthChallengeInput{
		WalletAddress: wallet,
		Challenge:     value,
		IssuedAt:      now,
		ExpiresAt:     now.Add(s.chTTL),
	})
	if err != nil {
		return nil, err
	}

	return &Challenge{
		Nonce:     challenge.Challenge,
		ExpiresAt: challenge.ExpiresAt,
		Message:   LoginMessage(challenge.Challenge),
	}, nil
}

func (s *service) Connect(ctx context.Context, input ConnectInput) (*Session, error) {
	wallet, err := domain.NormalizeWalletAddress(input.WalletAddress)
	if err != nil {
		return nil, err
	}

	signature := strings.TrimSpace(input.Signature)
	value := strings.TrimSpace(input.Challenge)
	if signature == "" || input.Message == "" || value == "" {
		return nil, ErrMissingCredentials
	}
	if !strings.Contains(input.Message, value) {
		return nil, ErrMessageMissingChallenge
	}

	challenge, err := s.store.GetLatestUnusedAuthChallenge(ctx, wallet, value)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, domain.ErrInvalidAuthChallenge
	}

	now := s.clock.Now()
	if challenge.ExpiresAt.Before(now) {
		return nil, domain.ErrAuthChallengeExpired
	}

	recovered, err := RecoverPersonalSign(input.Message, signature)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(recovered) != wallet {
		logger.WarnCtx(ctx, "Login signature mismatch",
			zap.String("wallet_address", wallet),
			zap.String("recovered", recovered))
		return nil, domain.ErrSignatureMismatch
	}

	var user *schema.User
	err = s.store.RunInTx(ctx, func(tx store.Store) error {
		var err error
		user, err = tx.UpsertUserByWallet(ctx, wallet)
		if err != nil {
			return err
		}
		return tx.MarkAuthChallengeUsed(ctx, challenge.ID, user.ID, now)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(user, now)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Wallet connected",
		zap.String("wallet_address", wallet),
		zap.String("user_id", user.ID))

	return &Session{Token: token, User: user}, nil
}

func (s *service) issueToken(user *schema.User, now time.Time) (string, error) {
	claims := Claims{
		WalletAddress: user.WalletAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RecoverPersonalSign returns the checksummed address that produced an EIP-191 personal_sign signature
func RecoverPersonalSign(message string, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return "", domain.ErrSignatureInvalid
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", domain.ErrSignatureInvalid
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
