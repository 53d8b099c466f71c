package metadata

import (
	"context"
)

// Repository is the client's durable key/value store. The session keeps the
// auth token here; logout wipes the whole table.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
