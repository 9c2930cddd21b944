package domain

import "time"

// User models a registered jokester. The password hash never leaves the
// server: it is excluded from every JSON rendering of the user.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
