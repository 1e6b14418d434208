// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/server/auth"
	"github.com/reflecta-app/reflecta/internal/server/config"
	"github.com/reflecta-app/reflecta/internal/server/models"
	"github.com/reflecta-app/reflecta/internal/server/repositories/repomanager"
)

// dummyHash is compared against when the account does not exist, so a login
// attempt costs the same whether or not the email is registered.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserService provides authentication-related operations:
// - Register: create an account and mint a token
// - Login: verify credentials and mint a token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account and returns an access token for it.
// A duplicate email returns common.ErrEmailAlreadyTaken.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyTaken) {
			return "", common.ErrEmailAlreadyTaken
		}
		return "", fmt.Errorf("error creating user: %v", err)
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
}

// Login verifies credentials and returns an access token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
