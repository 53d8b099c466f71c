package models

import "time"

// User is a registered account. PasswordHash is only populated when the
// record is loaded for credential verification; projected lookups leave it
// empty so it can never leak into API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
