// Package users defines the user-record store: a minimal interface plus
// PostgreSQL and in-memory implementations. The store is the single source
// of truth for username uniqueness.
package users

import (
	"context"

	"github.com/dkrasnov/authapi/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the store-assigned ID.
	// A username collision yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns the user with the given username, or
	// common.ErrorNotFound when no such user exists.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
