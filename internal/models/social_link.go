package models

import "time"

// SocialLink represents one outbound social profile link rendered in the
// site footer.
type SocialLink struct {
	ID        string    `db:"id" json:"id"`
	Platform  string    `db:"platform" json:"platform"`
	URL       string    `db:"url" json:"url"`
	Icon      *string   `db:"icon" json:"icon"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
