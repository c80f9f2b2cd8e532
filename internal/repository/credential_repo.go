package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/noonstudio/cms_api/internal/models"
)

// PostgresCredentialRepository provides data access methods for the
// admin_credentials table. The table holds at most one row.
type PostgresCredentialRepository struct {
	db *sqlx.DB
}

// NewCredentialRepository creates a new PostgresCredentialRepository.
func NewCredentialRepository(db *sqlx.DB) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

// Get returns the stored credential, or (nil, nil) when none has been
// created yet. In that state callers fall back to the configured bootstrap
// password.
func (r *PostgresCredentialRepository) Get(ctx context.Context) (*models.AdminCredential, error) {
	var cred models.AdminCredential
	query := `SELECT id, password_hash, created_at, updated_at
		FROM admin_credentials
		ORDER BY id ASC LIMIT 1`

	if err := r.db.GetContext(ctx, &cred, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}

// Insert creates the first credential row.
func (r *PostgresCredentialRepository) Insert(ctx context.Context, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admin_credentials (password_hash) VALUES ($1)`, passwordHash)
	return err
}

// UpdateHash replaces the hash of an existing credential row in place.
func (r *PostgresCredentialRepository) UpdateHash(ctx context.Context, id int, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_credentials SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	return err
}
