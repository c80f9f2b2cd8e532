package models

import "time"

// Portfolio represents a single work entry shown on the public work pages
// and managed through the admin panel.
type Portfolio struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	Category     *string   `db:"category" json:"category"`
	ImageURL     *string   `db:"image_url" json:"imageUrl"`
	Images       []string  `db:"images" json:"images"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnailUrl"`
	Tags         []string  `db:"tags" json:"tags"`
	IsFeatured   bool      `db:"is_featured" json:"isFeatured"`
	IsPublished  bool      `db:"is_published" json:"isPublished"`
	SortOrder    int       `db:"sort_order" json:"sortOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
