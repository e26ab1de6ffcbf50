package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// Password holds a bcrypt hash, never plaintext. The registration flow sets
// Username = Email, matching what ends up in the token's name claim.
type User struct {
	ID        string
	Email     string
	Username  string
	Password  string
	Roles     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
