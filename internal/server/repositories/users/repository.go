// Package users contains the credential store: persistence of User records
// keyed by id and by unique email.
package users

import (
	"context"

	"github.com/badriyvp/musegen/internal/server/models"
)

// Repository is the user persistence contract.
//
// Absence of a matching record is reported as common.ErrorNotFound and is an
// expected outcome during login/registration checks, not a failure. A unique
// violation on email during Create is reported as common.ErrorAlreadyExists.
type Repository interface {
	// Create inserts a new user. ID and timestamps are assigned by the store.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the full record including the password hash,
	// for credential verification.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the projected record; the password hash is never loaded.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
