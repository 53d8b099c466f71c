// Package api defines the transport client the session layer talks through.
package api

import (
	"context"
	"time"
)

// User is the profile shape returned by the server.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Generation is one image-generation result or history row.
type Generation struct {
	ID            string    `json:"id"`
	Prompt        string    `json:"prompt"`
	RevisedPrompt string    `json:"revised_prompt"`
	URL           string    `json:"url"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Client interface {
	Register(ctx context.Context, name, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) (string, error)
	CurrentUser(ctx context.Context) (*User, error)
	GenerateImage(ctx context.Context, prompt string) (*Generation, error)
	History(ctx context.Context) ([]*Generation, error)
	Ping(ctx context.Context) error

	// SetToken installs the bearer token attached to authenticated calls.
	// An empty string clears it.
	SetToken(token string)
	Close() error
}
