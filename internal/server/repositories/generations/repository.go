// Package generations persists the per-user image-generation history.
package generations

import (
	"context"

	"github.com/badriyvp/musegen/internal/server/models"
)

type Repository interface {
	// Create inserts a new history row. ID and CreatedAt are assigned by the store.
	Create(ctx context.Context, gen *models.Generation) (*models.Generation, error)

	// ListByUser returns the user's generations, newest first, up to limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Generation, error)
}
