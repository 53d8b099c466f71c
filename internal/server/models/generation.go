package models

import "time"

// Generation records one image-generation request. URL is the provider's
// short-lived link; StorageKey is set when the image was mirrored into
// object storage.
type Generation struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	Prompt        string    `json:"prompt"`
	RevisedPrompt string    `json:"revised_prompt"`
	URL           string    `json:"url"`
	StorageKey    string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}
