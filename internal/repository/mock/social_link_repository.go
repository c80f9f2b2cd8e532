package mock

import (
	"context"

	"github.com/noonstudio/cms_api/internal/models"
)

// SocialLinkRepository is a mock implementation of repository.SocialLinkRepository
type SocialLinkRepository struct {
	ListFunc       func(ctx context.Context) ([]*models.SocialLink, error)
	ListActiveFunc func(ctx context.Context) ([]*models.SocialLink, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.SocialLink, error)
	CreateFunc     func(ctx context.Context, l *models.SocialLink) error
	UpdateFunc     func(ctx context.Context, l *models.SocialLink) error
	DeleteFunc     func(ctx context.Context, id string) error

	Calls map[string][]interface{}
}

// NewSocialLinkRepository creates a new mock social link repository
func NewSocialLinkRepository() *SocialLinkRepository {
	return &SocialLinkRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SocialLinkRepository) List(ctx context.Context) ([]*models.SocialLink, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.SocialLink{}, nil
}

func (m *SocialLinkRepository) ListActive(ctx context.Context) ([]*models.SocialLink, error) {
	m.Calls["ListActive"] = append(m.Calls["ListActive"], nil)
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []*models.SocialLink{}, nil
}

func (m *SocialLinkRepository) GetByID(ctx context.Context, id string) (*models.SocialLink, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *SocialLinkRepository) Create(ctx context.Context, l *models.SocialLink) error {
	m.Calls["Create"] = append(m.Calls["Create"], l)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *SocialLinkRepository) Update(ctx context.Context, l *models.SocialLink) error {
	m.Calls["Update"] = append(m.Calls["Update"], l)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *SocialLinkRepository) Delete(ctx context.Context, id string) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
