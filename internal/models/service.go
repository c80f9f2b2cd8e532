package models

import "time"

// Service represents one service offering listed on the public service page.
type Service struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Icon        *string   `db:"icon" json:"icon"`
	SortOrder   int       `db:"sort_order" json:"sortOrder"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
