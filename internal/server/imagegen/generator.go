// Package imagegen integrates the third-party image-generation provider.
package imagegen

import "context"

// Result is one generated image as returned by the provider. URL is
// short-lived; RevisedPrompt is the provider's rewrite of the user's prompt.
type Result struct {
	URL           string
	RevisedPrompt string
}

// Generator produces one image for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
}
