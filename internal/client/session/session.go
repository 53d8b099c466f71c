// Package session keeps the client's authentication state: the bearer token,
// durably stored in the local metadata table, and the cached user profile.
package session

import (
	"context"
	"database/sql"

	"github.com/badriyvp/musegen/internal/client/api"
	"github.com/badriyvp/musegen/internal/client/repositories/metadata"
	"github.com/badriyvp/musegen/internal/common"
)

// Session is constructed once at app start and torn down explicitly on
// logout. There is no ambient singleton; callers hold the instance.
type Session struct {
	client api.Client
	db     *sql.DB

	token string
	user  *api.User
}

func New(client api.Client, db *sql.DB) *Session {
	return &Session{client: client, db: db}
}

func (s *Session) metadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Init loads the durable token and, when one is present, eagerly fetches the
// profile. A failed fetch leaves the user unset but keeps the token: the
// server may simply be unreachable, and the token may still be good.
func (s *Session) Init(ctx context.Context) error {
	value, err := s.metadataRepo().Get(ctx, common.AuthTokenKey)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return nil
	}

	s.token = string(value)
	s.client.SetToken(s.token)

	if user, err := s.client.CurrentUser(ctx); err == nil {
		s.user = user
	}

	return nil
}

func (s *Session) Register(ctx context.Context, name, email string, password []byte) error {
	return s.client.Register(ctx, name, email, password)
}

// Login authenticates, persists the token, and fetches the profile. On a
// failed login the previously stored token is left untouched.
func (s *Session) Login(ctx context.Context, email string, password []byte) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.metadataRepo().Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
		return err
	}

	s.token = token
	s.client.SetToken(token)

	if user, err := s.client.CurrentUser(ctx); err == nil {
		s.user = user
	} else {
		s.user = nil
	}

	return nil
}

// CurrentUser returns the cached profile, fetching it when not yet loaded.
func (s *Session) CurrentUser(ctx context.Context) (*api.User, error) {
	if s.user != nil {
		return s.user, nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.user = user
	return user, nil
}

// Logout wipes the local metadata table and the in-memory state. The
// in-memory state is always cleared, even when the storage wipe fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.metadataRepo().Clear(ctx)

	s.token = ""
	s.user = nil
	s.client.SetToken("")

	return err
}

func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}

// User returns the cached profile without fetching; nil when not loaded.
func (s *Session) User() *api.User {
	return s.user
}
