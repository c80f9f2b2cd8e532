package mock

import (
	"context"

	"github.com/noonstudio/cms_api/internal/models"
)

// ServiceRepository is a mock implementation of repository.ServiceRepository
type ServiceRepository struct {
	ListFunc       func(ctx context.Context) ([]*models.Service, error)
	ListActiveFunc func(ctx context.Context) ([]*models.Service, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.Service, error)
	CreateFunc     func(ctx context.Context, s *models.Service) error
	UpdateFunc     func(ctx context.Context, s *models.Service) error
	DeleteFunc     func(ctx context.Context, id string) error

	Calls map[string][]interface{}
}

// NewServiceRepository creates a new mock service repository
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.Service{}, nil
}

func (m *ServiceRepository) ListActive(ctx context.Context) ([]*models.Service, error) {
	m.Calls["ListActive"] = append(m.Calls["ListActive"], nil)
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []*models.Service{}, nil
}

func (m *ServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ServiceRepository) Create(ctx context.Context, s *models.Service) error {
	m.Calls["Create"] = append(m.Calls["Create"], s)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *ServiceRepository) Update(ctx context.Context, s *models.Service) error {
	m.Calls["Update"] = append(m.Calls["Update"], s)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *ServiceRepository) Delete(ctx context.Context, id string) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
