package entity

import "time"

// PortfolioItem is a single portfolio record. UserID is nullable: seeded
// items may reference a user that was later removed, and ownership is not
// enforced on reads.
type PortfolioItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      *string   `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
