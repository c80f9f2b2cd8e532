package models

import "time"

// AdminCredential holds the stored admin password hash. The table holds at
// most one row; once it exists it permanently shadows the ADMIN_PASSWORD
// environment fallback. The hash is never serialized in API responses.
type AdminCredential struct {
	ID           int       `db:"id" json:"-"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}
