package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/noonstudio/cms_api/internal/models"
)

// PostgresServiceRepository provides data access methods for the services table.
type PostgresServiceRepository struct {
	db *sqlx.DB
}

// NewServiceRepository creates a new PostgresServiceRepository.
func NewServiceRepository(db *sqlx.DB) *PostgresServiceRepository {
	return &PostgresServiceRepository{db: db}
}

const serviceColumns = `id, title, description, icon, sort_order, is_active, created_at, updated_at`

func (r *PostgresServiceRepository) list(ctx context.Context, where string) ([]*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ` + where + ` ORDER BY sort_order ASC, created_at ASC`

	services := []*models.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, err
	}
	return services, nil
}

// List retrieves all services ordered by sort_order.
func (r *PostgresServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	return r.list(ctx, "")
}

// ListActive retrieves active services only, for the public site.
func (r *PostgresServiceRepository) ListActive(ctx context.Context) ([]*models.Service, error) {
	return r.list(ctx, "WHERE is_active = TRUE")
}

// GetByID finds a service by id. Returns sql.ErrNoRows when absent.
func (r *PostgresServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 LIMIT 1`
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new service and fills in generated fields.
func (r *PostgresServiceRepository) Create(ctx context.Context, s *models.Service) error {
	query := `INSERT INTO services (title, description, icon, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		s.Title,
		s.Description,
		s.Icon,
		s.SortOrder,
		s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update updates an existing service. Returns sql.ErrNoRows when absent.
func (r *PostgresServiceRepository) Update(ctx context.Context, s *models.Service) error {
	query := `UPDATE services
		SET title = $1, description = $2, icon = $3, sort_order = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		s.Title,
		s.Description,
		s.Icon,
		s.SortOrder,
		s.IsActive,
		s.ID,
	).Scan(&s.UpdatedAt)
}

// Delete removes a service by id. Returns sql.ErrNoRows when absent.
func (r *PostgresServiceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
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
