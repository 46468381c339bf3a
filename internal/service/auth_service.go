package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"campus_match/internal/metrics"
	"campus_match/internal/models"
	"campus_match/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Authenticatable is what the credential check needs from an account.
type Authenticatable interface {
	AuthID() int
	PasswordDigest() string
}

// userCredentials adapts a stored user to Authenticatable.
type userCredentials struct {
	u *models.User
}

func (c userCredentials) AuthID() int            { return c.u.ID }
func (c userCredentials) PasswordDigest() string { return c.u.PasswordHash }

// Session is the verified content of a session token.
type Session struct {
	UserID    int
	TokenID   string
	ExpiresAt time.Time
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// AuthService handles login, session tokens and logout.
type AuthService struct {
	users    repository.UserRepo
	activity ActivityRecorder
	metrics  *metrics.Metrics

	signingKey []byte
	tokenTTL   time.Duration
	revoked    *revocationList
	now        func() time.Time
}

func NewAuthService(users repository.UserRepo, activity ActivityRecorder, m *metrics.Metrics, cfg AuthConfig) *AuthService {
	return &AuthService{
		users:      users,
		activity:   activity,
		metrics:    m,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   cfg.TokenTTL,
		revoked:    newRevocationList(),
		now:        time.Now,
	}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Authenticate checks the credentials and returns a signed session token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("lookup account: %w", err)
	}
	if u == nil {
		// burn the same bcrypt time as a real comparison
		_ = verifyPassword(dummyPasswordHash(), password)
		s.loginFailed(ctx, 0)
		return "", ErrInvalidCredentials
	}

	if err := verifyCredentials(userCredentials{u: u}, password); err != nil {
		s.loginFailed(ctx, u.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", err
	}
	s.metrics.IncLogin(metrics.ResultSuccess)
	s.activity.Record(ctx, models.ActivityEvent{
		UserID:      u.ID,
		Type:        models.ActivityLogin,
		Description: "Signed in",
	})
	return token, nil
}

func (s *AuthService) loginFailed(ctx context.Context, userID int) {
	s.metrics.IncLogin(metrics.ResultFailure)
	s.activity.Record(ctx, models.ActivityEvent{
		UserID:      userID,
		Type:        models.ActivityLoginFailed,
		Description: "Sign in rejected",
	})
}

// ParseToken verifies signature, algorithm, expiry and revocation.
func (s *AuthService) ParseToken(accessToken string) (Session, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return Session{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" || claims.ExpiresAt == nil {
		return Session{}, ErrInvalidToken
	}
	if s.revoked.IsRevoked(claims.ID, s.now()) {
		return Session{}, ErrInvalidToken
	}

	return Session{
		UserID:    claims.UserID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// CurrentUser resolves a session token to its account.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	sess, err := s.ParseToken(accessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("load session user %d: %w", sess.UserID, err)
	}
	if u == nil {
		return models.User{}, ErrUnauthenticated
	}
	return *u, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	sess, err := s.ParseToken(accessToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	s.revoked.Revoke(sess.TokenID, sess.ExpiresAt, s.now())
	s.activity.Record(ctx, models.ActivityEvent{
		UserID:      sess.UserID,
		Type:        models.ActivityLogout,
		Description: "Signed out",
	})
	return nil
}

// issueToken signs a JWT for a user with a fresh token id.
func (s *AuthService) issueToken(userID int) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword bcrypt-hashes a non-blank password.
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func verifyCredentials(a Authenticatable, password string) error {
	return verifyPassword(a.PasswordDigest(), password)
}

var (
	dummyHash     string
	dummyHashOnce sync.Once
)

func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err == nil {
			dummyHash = string(h)
		}
	})
	return dummyHash
}

// revocationList remembers logged-out token ids until their expiry.
type revocationList struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newRevocationList() *revocationList {
	return &revocationList{entries: make(map[string]time.Time)}
}

func (r *revocationList) Revoke(id string, until, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, exp := range r.entries {
		if !exp.After(now) {
			delete(r.entries, k)
		}
	}
	r.entries[id] = until
}

func (r *revocationList) IsRevoked(id string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.entries[id]
	return ok && exp.After(now)
}
