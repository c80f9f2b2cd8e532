package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/noonstudio/cms_api/internal/models"
)

// PostgresSocialLinkRepository provides data access methods for the social_links table.
type PostgresSocialLinkRepository struct {
	db *sqlx.DB
}

// NewSocialLinkRepository creates a new PostgresSocialLinkRepository.
func NewSocialLinkRepository(db *sqlx.DB) *PostgresSocialLinkRepository {
	return &PostgresSocialLinkRepository{db: db}
}

const socialLinkColumns = `id, platform, url, icon, sort_order, is_active, created_at`

func (r *PostgresSocialLinkRepository) list(ctx context.Context, where string) ([]*models.SocialLink, error) {
	query := `SELECT ` + socialLinkColumns + ` FROM social_links ` + where + ` ORDER BY sort_order ASC, created_at ASC`

	links := []*models.SocialLink{}
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, err
	}
	return links, nil
}

// List retrieves all social links ordered by sort_order.
func (r *PostgresSocialLinkRepository) List(ctx context.Context) ([]*models.SocialLink, error) {
	return r.list(ctx, "")
}

// ListActive retrieves active social links only, for the public site footer.
func (r *PostgresSocialLinkRepository) ListActive(ctx context.Context) ([]*models.SocialLink, error) {
	return r.list(ctx, "WHERE is_active = TRUE")
}

// GetByID finds a social link by id. Returns sql.ErrNoRows when absent.
func (r *PostgresSocialLinkRepository) GetByID(ctx context.Context, id string) (*models.SocialLink, error) {
	var l models.SocialLink
	query := `SELECT ` + socialLinkColumns + ` FROM social_links WHERE id = $1 LIMIT 1`
	if err := r.db.GetContext(ctx, &l, query, id); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new social link and fills in generated fields.
func (r *PostgresSocialLinkRepository) Create(ctx context.Context, l *models.SocialLink) error {
	query := `INSERT INTO social_links (platform, url, icon, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		l.Platform,
		l.URL,
		l.Icon,
		l.SortOrder,
		l.IsActive,
	).Scan(&l.ID, &l.CreatedAt)
}

// Update updates an existing social link. Returns sql.ErrNoRows when absent.
func (r *PostgresSocialLinkRepository) Update(ctx context.Context, l *models.SocialLink) error {
	query := `UPDATE social_links
		SET platform = $1, url = $2, icon = $3, sort_order = $4, is_active = $5
		WHERE id = $6
		RETURNING id`

	var id string
	return r.db.QueryRowxContext(ctx, query,
		l.Platform,
		l.URL,
		l.Icon,
		l.SortOrder,
		l.IsActive,
		l.ID,
	).Scan(&id)
}

// Delete removes a social link by id. Returns sql.ErrNoRows when absent.
func (r *PostgresSocialLinkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
