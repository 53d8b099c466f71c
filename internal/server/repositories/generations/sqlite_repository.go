package generations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/badriyvp/musegen/internal/dbx"
	"github.com/badriyvp/musegen/internal/server/models"
)

// SQLiteRepository implements Repository on a SQLite database.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, gen *models.Generation) (*models.Generation, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("id generation error: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	query :=
		`INSERT INTO generations (id, user_id, prompt, revised_prompt, url, storage_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 `

	_, err = r.db.ExecContext(ctx, query,
		id.String(), gen.UserID, gen.Prompt, gen.RevisedPrompt, gen.URL, gen.StorageKey,
		now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	gen.ID = id.String()
	gen.CreatedAt = now
	return gen, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Generation, error) {
	query :=
		`SELECT id, user_id, prompt, revised_prompt, url, storage_key, created_at FROM generations
		 WHERE user_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Generation
	for rows.Next() {
		gen := &models.Generation{}
		var createdMs int64
		if err := rows.Scan(&gen.ID, &gen.UserID, &gen.Prompt, &gen.RevisedPrompt,
			&gen.URL, &gen.StorageKey, &createdMs); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		gen.CreatedAt = time.UnixMilli(createdMs).UTC()
		result = append(result, gen)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
