// Package services contains server-side business logic. This file implements
// AuthService, which verifies credentials, issues session JWTs, and resolves
// token claims back to accounts.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/Sadia492/portfolio-server/internal/common"
	"github.com/Sadia492/portfolio-server/internal/server/auth"
	"github.com/Sadia492/portfolio-server/internal/server/config"
	"github.com/Sadia492/portfolio-server/internal/server/models"
	"github.com/Sadia492/portfolio-server/internal/server/repositories/repomanager"
)

// emailPattern accepts exactly one @ with non-whitespace segments on each
// side and a dot somewhere after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService provides authentication-related operations:
// - Login: verify credentials and mint a session token
// - VerifyToken: resolve a token string to its claims
// - GetCurrentUser: load the sanitized account behind a resolved identity
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the email/password pair and, on success, returns a signed
// session token together with the sanitized account.
//
// Failure reasons, first match wins:
//  1. empty email or password: common.ErrCredentialsRequired
//  2. malformed email: common.ErrInvalidEmailFormat
//  3. unknown email: common.ErrorUnauthorized
//  4. wrong password: common.ErrorUnauthorized
//
// Unknown email and wrong password are indistinguishable to the caller so
// that login responses do not reveal whether an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {

	if email == "" || password == "" {
		return "", nil, common.ErrCredentialsRequired
	}

	if !emailPattern.MatchString(email) {
		return "", nil, common.ErrInvalidEmailFormat
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, sanitize(user), nil
}

// VerifyToken validates a session token string and returns its claims.
// All failure modes collapse to common.ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.jwtSecret)
}

// GetCurrentUser looks the account up by id and returns the sanitized view
// used by the "who am I" endpoint.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return sanitize(user), nil
}

// TokenValidity returns the configured session lifetime; the HTTP layer uses
// it as the cookie max-age so cookie and token expire together.
func (s *AuthService) TokenValidity() time.Duration {
	return s.tokenValidityDuration
}

// sanitize strips the password hash so the value is safe to hand to any
// caller or serializer.
func sanitize(u *models.User) *models.User {
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
