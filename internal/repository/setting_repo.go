package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noonstudio/cms_api/internal/models"
)

// PostgresSettingRepository provides data access methods for the site_settings table.
type PostgresSettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new PostgresSettingRepository.
func NewSettingRepository(db *sqlx.DB) *PostgresSettingRepository {
	return &PostgresSettingRepository{db: db}
}

const settingColumns = `id, key, value, type, description, updated_at`

// List retrieves all settings ordered by key.
func (r *PostgresSettingRepository) List(ctx context.Context) ([]*models.SiteSetting, error) {
	settings := []*models.SiteSetting{}
	query := `SELECT ` + settingColumns + ` FROM site_settings ORDER BY key ASC`
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, err
	}
	return settings, nil
}

// ListByPrefix retrieves settings whose key starts with the given prefix,
// ordered by key. The prefix convention (site_, hero_, ...) is UI grouping
// only; the store does not enforce it.
func (r *PostgresSettingRepository) ListByPrefix(ctx context.Context, prefix string) ([]*models.SiteSetting, error) {
	settings := []*models.SiteSetting{}
	query := `SELECT ` + settingColumns + ` FROM site_settings WHERE key LIKE $1 || '%' ORDER BY key ASC`
	if err := r.db.SelectContext(ctx, &settings, query, prefix); err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert writes one setting value. A missing row is inserted with type "text"
// and the key as its description; an existing row has only its value updated.
// Repeated calls with the same value are idempotent; the resulting row state
// depends only on the most recent value.
func (r *PostgresSettingRepository) Upsert(ctx context.Context, key string, value *string) (*models.SiteSetting, error) {
	var s models.SiteSetting
	query := `INSERT INTO site_settings (key, value, type, description)
		VALUES ($1, $2, 'text', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING ` + settingColumns

	if err := r.db.GetContext(ctx, &s, query, key, value); err != nil {
		return nil, err
	}
	return &s, nil
}

// BatchUpsert writes many settings rows in one statement. Conflict resolution
// is last-write-wins per key: existing rows keep their type and description
// and only take the new value.
func (r *PostgresSettingRepository) BatchUpsert(ctx context.Context, rows []models.SettingUpsert) ([]*models.SiteSetting, error) {
	if len(rows) == 0 {
		return []*models.SiteSetting{}, nil
	}

	query := `INSERT INTO site_settings (key, value, type, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING ` + settingColumns

	stmt, err := r.db.PreparexContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	out := make([]*models.SiteSetting, 0, len(rows))
	for _, row := range rows {
		typ := row.Type
		if typ == "" {
			typ = "text"
		}
		desc := row.Description
		if desc == nil {
			desc = &row.Key
		}

		var s models.SiteSetting
		if err := stmt.GetContext(ctx, &s, row.Key, row.Value, typ, desc); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, nil
}
