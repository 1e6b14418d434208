// Package users provides the account repository.
package users

import (
	"context"

	"github.com/reflecta-app/reflecta/internal/server/models"
)

type Repository interface {
	// Create persists a new user. A duplicate email returns
	// common.ErrEmailAlreadyTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrNotFound when no account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
