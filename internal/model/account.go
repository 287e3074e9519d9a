package model

import "time"

// Account is a registered user of the archive.
// PasswordHash never leaves the account directory: service results carry
// accounts with the hash zeroed.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Sanitized returns a copy of the account with secret material removed.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}
