package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noonstudio/cms_api/internal/models"
)

// PostgresPortfolioRepository provides data access methods for the portfolios table.
type PostgresPortfolioRepository struct {
	db *sqlx.DB
}

// NewPortfolioRepository creates a new PostgresPortfolioRepository.
func NewPortfolioRepository(db *sqlx.DB) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{db: db}
}

const portfolioColumns = `id, title, description, category, image_url, images, thumbnail_url,
	tags, is_featured, is_published, sort_order, created_at, updated_at`

// scanPortfolio scans one row, using pq.Array for the TEXT[] columns.
func scanPortfolio(row sqlx.ColScanner) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.ImageURL,
		pq.Array(&p.Images),
		&p.ThumbnailURL,
		pq.Array(&p.Tags),
		&p.IsFeatured,
		&p.IsPublished,
		&p.SortOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPortfolioRepository) list(ctx context.Context, where string) ([]*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios ` + where + ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	portfolios := []*models.Portfolio{}
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

// List retrieves all portfolios ordered by sort_order.
func (r *PostgresPortfolioRepository) List(ctx context.Context) ([]*models.Portfolio, error) {
	return r.list(ctx, "")
}

// ListPublished retrieves published portfolios only, for the public site.
func (r *PostgresPortfolioRepository) ListPublished(ctx context.Context) ([]*models.Portfolio, error) {
	return r.list(ctx, "WHERE is_published = TRUE")
}

// GetByID finds a portfolio by id. Returns sql.ErrNoRows when absent.
func (r *PostgresPortfolioRepository) GetByID(ctx context.Context, id string) (*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE id = $1 LIMIT 1`
	row := r.db.QueryRowxContext(ctx, query, id)
	p, err := scanPortfolio(row)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new portfolio and fills in generated fields.
func (r *PostgresPortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	query := `INSERT INTO portfolios (title, description, category, image_url, images, thumbnail_url,
			tags, is_featured, is_published, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.Title,
		p.Description,
		p.Category,
		p.ImageURL,
		pq.Array(p.Images),
		p.ThumbnailURL,
		pq.Array(p.Tags),
		p.IsFeatured,
		p.IsPublished,
		p.SortOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update updates an existing portfolio. Returns sql.ErrNoRows when absent.
func (r *PostgresPortfolioRepository) Update(ctx context.Context, p *models.Portfolio) error {
	query := `UPDATE portfolios
		SET title = $1, description = $2, category = $3, image_url = $4, images = $5,
			thumbnail_url = $6, tags = $7, is_featured = $8, is_published = $9,
			sort_order = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.Title,
		p.Description,
		p.Category,
		p.ImageURL,
		pq.Array(p.Images),
		p.ThumbnailURL,
		pq.Array(p.Tags),
		p.IsFeatured,
		p.IsPublished,
		p.SortOrder,
		p.ID,
	).Scan(&p.UpdatedAt)
}

// Delete removes a portfolio by id. Returns sql.ErrNoRows when absent.
func (r *PostgresPortfolioRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
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
