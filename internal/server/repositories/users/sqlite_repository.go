package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/badriyvp/musegen/internal/common"
	"github.com/badriyvp/musegen/internal/dbx"
	"github.com/badriyvp/musegen/internal/server/models"
)

// SQLiteRepository implements Repository on a SQLite database.
// Timestamps are stored as unix milliseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("id generation error: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	query :=
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 `

	_, err = r.db.ExecContext(ctx, query,
		id.String(), user.Name, user.Email, user.PasswordHash,
		now.UnixMilli(), now.UnixMilli())

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = id.String()
	user.CreatedAt = now
	user.UpdatedAt = now
	return user, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password_hash, created_at, updated_at FROM users
		 WHERE email = ?
		 `

	user := &models.User{}
	var createdMs, updatedMs int64
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &createdMs, &updatedMs)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.CreatedAt = time.UnixMilli(createdMs).UTC()
	user.UpdatedAt = time.UnixMilli(updatedMs).UTC()
	return user, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, name, email, created_at, updated_at FROM users
		 WHERE id = ?
		 `

	user := &models.User{}
	var createdMs, updatedMs int64
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &createdMs, &updatedMs)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.CreatedAt = time.UnixMilli(createdMs).UTC()
	user.UpdatedAt = time.UnixMilli(updatedMs).UTC()
	return user, nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint failure.
// The check-then-insert sequence in registration is not atomic, so this is the
// authoritative duplicate-email signal.
func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			serr.Code() == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
