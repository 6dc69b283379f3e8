package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkrasnov/authapi/internal/dbx"
	"github.com/dkrasnov/authapi/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out a single shared in-memory users
// repository regardless of the database handle. Used in tests.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
