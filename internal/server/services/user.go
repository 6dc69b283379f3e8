// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login: username uniqueness,
// password hashing/verification, and issuing signed bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkrasnov/authapi/internal/common"
	"github.com/dkrasnov/authapi/internal/dbx"
	"github.com/dkrasnov/authapi/internal/server/auth"
	"github.com/dkrasnov/authapi/internal/server/config"
	"github.com/dkrasnov/authapi/internal/server/models"
	"github.com/dkrasnov/authapi/internal/server/password"
	"github.com/dkrasnov/authapi/internal/server/repositories/repomanager"
)

// UserService provides the credential lifecycle:
//   - Register: create a user with a hashed password
//   - Login: verify credentials and mint a token
//
// It keeps no per-request state and is safe for concurrent use.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *password.Hasher
	tokenParams auth.TokenParams
}

// NewUserService constructs a UserService from its collaborators and server
// config. The signing parameters are fixed here and never change afterwards.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h *password.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		tokenParams: auth.TokenParams{
			Secret:   []byte(cfg.SecretKey),
			Issuer:   cfg.Issuer,
			Audience: cfg.Audience,
			Lifetime: cfg.TokenLifetime,
		},
	}
}

// Register creates a new user. An existing username yields
// common.ErrorLoginAlreadyExists, whether detected by the lookup or by the
// store rejecting a concurrent duplicate insert. No token is issued on
// success; the caller logs in separately.
func (s *UserService) Register(ctx context.Context, userName, plainPassword string) (*models.User, error) {
	if userName == "" || plainPassword == "" {
		return nil, common.ErrorValidation
	}

	// Hashing is deliberately slow; keep it outside the transaction.
	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByLogin(ctx, userName)
		if err == nil {
			return common.ErrorLoginAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking username: %w", err)
		}

		created, err = repo.Create(ctx, &models.User{UserName: userName, PasswordHash: hash})
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorLoginAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies the credentials and returns a signed token. An unknown
// username and a wrong password both yield common.ErrorUnauthorized so the
// response never reveals which one it was. A store failure yields
// common.ErrorInternal and must never be collapsed into unauthorized.
func (s *UserService) Login(ctx context.Context, userName, plainPassword string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(plainPassword, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.tokenParams, time.Now())
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
