// Package repomanager selects a repository implementation set based on the
// configured database DSN and applies the matching schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/badriyvp/musegen/internal/dbx"
	"github.com/badriyvp/musegen/internal/server/repositories/generations"
	"github.com/badriyvp/musegen/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, which can be the
// root *sql.DB or a transaction from dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Generations(db dbx.DBTX) generations.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

// Open opens the database identified by dsn and returns it together with the
// matching RepositoryManager. DSNs with a postgres:// scheme use pgx;
// everything else is treated as a SQLite path.
func Open(dsn string) (*sql.DB, RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, err
		}
		return db, &PostgresRepositoryManager{}, nil
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}
	return db, &SQLiteRepositoryManager{}, nil
}
