package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkrasnov/authapi/internal/common"
	"github.com/dkrasnov/authapi/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests. It enforces
// the same username-uniqueness contract as the PostgreSQL implementation and
// is safe for concurrent use.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := &models.User{
		ID:           uuid.NewString(),
		UserName:     user.UserName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[stored.UserName] = stored

	copy := *stored
	return &copy, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copy := *stored
	return &copy, nil
}
