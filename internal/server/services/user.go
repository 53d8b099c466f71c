// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and current-user lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/badriyvp/musegen/internal/common"
	"github.com/badriyvp/musegen/internal/server/auth"
	"github.com/badriyvp/musegen/internal/server/config"
	"github.com/badriyvp/musegen/internal/server/models"
	"github.com/badriyvp/musegen/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a bearer token
// - GetCurrentUser: resolve a verified token's user id to a profile
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

// Register creates a new user with a salted bcrypt hash of the password.
// A taken email yields common.ErrorAlreadyExists. The existence check and the
// insert are not atomic; a concurrent registration losing the race surfaces
// as a store-level unique violation, which is reported as the same
// ErrorAlreadyExists rather than an internal error.
func (s *UserService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return created, nil
}

// Login verifies the credentials and, on success, returns a signed bearer
// token. An unknown email yields common.ErrorNotFound, a wrong password
// common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email string, password []byte) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetCurrentUser returns the projected user record for a verified token's
// user id. The password hash is never part of the result. A stale id (e.g.
// a deleted account) yields common.ErrorNotFound.
func (s *UserService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
