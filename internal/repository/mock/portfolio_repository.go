package mock

import (
	"context"

	"github.com/noonstudio/cms_api/internal/models"
)

// PortfolioRepository is a mock implementation of repository.PortfolioRepository
type PortfolioRepository struct {
	ListFunc          func(ctx context.Context) ([]*models.Portfolio, error)
	ListPublishedFunc func(ctx context.Context) ([]*models.Portfolio, error)
	GetByIDFunc       func(ctx context.Context, id string) (*models.Portfolio, error)
	CreateFunc        func(ctx context.Context, p *models.Portfolio) error
	UpdateFunc        func(ctx context.Context, p *models.Portfolio) error
	DeleteFunc        func(ctx context.Context, id string) error

	Calls map[string][]interface{}
}

// NewPortfolioRepository creates a new mock portfolio repository
func NewPortfolioRepository() *PortfolioRepository {
	return &PortfolioRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *PortfolioRepository) List(ctx context.Context) ([]*models.Portfolio, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.Portfolio{}, nil
}

func (m *PortfolioRepository) ListPublished(ctx context.Context) ([]*models.Portfolio, error) {
	m.Calls["ListPublished"] = append(m.Calls["ListPublished"], nil)
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx)
	}
	return []*models.Portfolio{}, nil
}

func (m *PortfolioRepository) GetByID(ctx context.Context, id string) (*models.Portfolio, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *PortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	m.Calls["Create"] = append(m.Calls["Create"], p)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *PortfolioRepository) Update(ctx context.Context, p *models.Portfolio) error {
	m.Calls["Update"] = append(m.Calls["Update"], p)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *PortfolioRepository) Delete(ctx context.Context, id string) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
