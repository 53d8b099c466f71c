package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badriyvp/musegen/internal/common"
	"github.com/badriyvp/musegen/internal/dbx"
	"github.com/badriyvp/musegen/internal/server/auth"
	"github.com/badriyvp/musegen/internal/server/config"
	"github.com/badriyvp/musegen/internal/server/models"
	generationsrepo "github.com/badriyvp/musegen/internal/server/repositories/generations"
	usersrepo "github.com/badriyvp/musegen/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "generated-id"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeGenerationsRepo struct {
	createOut *models.Generation
	createErr error

	listOut []*models.Generation
	listErr error
}

func (f *fakeGenerationsRepo) Create(ctx context.Context, g *models.Generation) (*models.Generation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	g.ID = "generated-id"
	g.CreatedAt = time.Now()
	return g, nil
}

func (f *fakeGenerationsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Generation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	g *fakeGenerationsRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }
func (m *fakeRepoManager) Generations(db dbx.DBTX) generationsrepo.Repository {
	return m.g
}
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

// --- Register ---

func TestRegister_Success(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrorNotFound}}
	s := newUserService(t, db, rm)

	u, err := s.Register(context.Background(), "Ada", "ada@example.com", []byte("longenough1"))
	require.NoError(t, err)
	assert.Equal(t, "generated-id", u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "longenough1", u.PasswordHash, "plaintext must never be stored")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailOut: &models.User{ID: "u1", Email: "ada@example.com"}}}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "Ada", "ada@example.com", []byte("longenough1"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_LostInsertRace(t *testing.T) {
	// existence check passes but a concurrent registration wins the insert;
	// the store-level unique violation must surface as AlreadyExists
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		byEmailErr: common.ErrorNotFound,
		createErr:  common.ErrorAlreadyExists,
	}}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "Ada", "ada@example.com", []byte("longenough1"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_StoreFailure(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: errors.New("disk on fire")}}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "Ada", "ada@example.com", []byte("longenough1"))
	assert.ErrorIs(t, err, common.ErrorInternal)
}

// --- Login ---

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword([]byte(password))
	require.NoError(t, err)
	return h
}

func TestLogin_Success_TokenEmbedsUserID(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailOut: &models.User{
		ID:           "u42",
		Email:        "ada@example.com",
		PasswordHash: hashFor(t, "longenough1"),
	}}}
	s := newUserService(t, db, rm)

	token, err := s.Login(context.Background(), "ada@example.com", []byte("longenough1"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u42", userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrorNotFound}}
	s := newUserService(t, db, rm)

	_, err := s.Login(context.Background(), "absent@example.com", []byte("pw"))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailOut: &models.User{
		ID:           "u42",
		PasswordHash: hashFor(t, "correct-password"),
	}}}
	s := newUserService(t, db, rm)

	_, err := s.Login(context.Background(), "ada@example.com", []byte("wrong-password"))
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

// --- GetCurrentUser ---

func TestGetCurrentUser_Success(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byIDOut: &models.User{
		ID:    "u42",
		Name:  "Ada",
		Email: "ada@example.com",
	}}}
	s := newUserService(t, db, rm)

	u, err := s.GetCurrentUser(context.Background(), "u42")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Empty(t, u.PasswordHash, "projection must not include the password hash")
}

func TestGetCurrentUser_StaleID(t *testing.T) {
	db := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{byIDErr: common.ErrorNotFound}}
	s := newUserService(t, db, rm)

	_, err := s.GetCurrentUser(context.Background(), "gone")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
