package repository

import (
	"context"

	"github.com/noonstudio/cms_api/internal/models"
)

// PortfolioRepository defines data access for the portfolios table.
type PortfolioRepository interface {
	List(ctx context.Context) ([]*models.Portfolio, error)
	ListPublished(ctx context.Context) ([]*models.Portfolio, error)
	GetByID(ctx context.Context, id string) (*models.Portfolio, error)
	Create(ctx context.Context, p *models.Portfolio) error
	Update(ctx context.Context, p *models.Portfolio) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository defines data access for the services table.
type ServiceRepository interface {
	List(ctx context.Context) ([]*models.Service, error)
	ListActive(ctx context.Context) ([]*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id string) error
}

// SettingRepository defines data access for the site_settings table.
// Settings rows are created lazily by upsert and never deleted.
type SettingRepository interface {
	List(ctx context.Context) ([]*models.SiteSetting, error)
	ListByPrefix(ctx context.Context, prefix string) ([]*models.SiteSetting, error)
	Upsert(ctx context.Context, key string, value *string) (*models.SiteSetting, error)
	BatchUpsert(ctx context.Context, rows []models.SettingUpsert) ([]*models.SiteSetting, error)
}

// SocialLinkRepository defines data access for the social_links table.
type SocialLinkRepository interface {
	List(ctx context.Context) ([]*models.SocialLink, error)
	ListActive(ctx context.Context) ([]*models.SocialLink, error)
	GetByID(ctx context.Context, id string) (*models.SocialLink, error)
	Create(ctx context.Context, l *models.SocialLink) error
	Update(ctx context.Context, l *models.SocialLink) error
	Delete(ctx context.Context, id string) error
}

// CredentialRepository defines data access for the admin_credentials table.
// Get returns (nil, nil) when no credential row has been stored yet.
type CredentialRepository interface {
	Get(ctx context.Context) (*models.AdminCredential, error)
	Insert(ctx context.Context, passwordHash string) error
	UpdateHash(ctx context.Context, id int, passwordHash string) error
}
