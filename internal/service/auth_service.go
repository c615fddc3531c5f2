package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rdevrajsinh/totalenc/internal/metrics"
	"github.com/rdevrajsinh/totalenc/internal/repository"
)

// DemoToken is issued when no signing secret is configured.
const DemoToken = "demo-token"

const tokenIssuer = "totalenc"

// Session is the login response.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// AuthService checks admin credentials. Passwords are stored as given, so
// the comparison is a plain constant-time equality check.
type AuthService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ AuthServiceInterface = (*AuthService)(nil)

// NewAuthService creates a new AuthService. An empty secret makes Login
// return DemoToken instead of a signed JWT.
func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login implements AuthServiceInterface.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	stored := ""
	if user != nil {
		stored = user.Password
	}
	match := subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	if user == nil || !match {
		metrics.ObserveLogin(false)
		componentLogger(ctx, "auth").Warn("Login rejected", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	metrics.ObserveLogin(true)
	return &Session{ID: user.ID, Username: user.Username, Token: token}, nil
}

func (s *AuthService) issueToken(id int64, username string) (string, error) {
	if len(s.secret) == 0 {
		return DemoToken, nil
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(id, 10),
		"username": username,
		"iss":      tokenIssuer,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
