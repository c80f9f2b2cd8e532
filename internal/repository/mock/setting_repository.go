package mock

import (
	"context"

	"github.com/noonstudio/cms_api/internal/models"
)

// SettingRepository is a mock implementation of repository.SettingRepository
type SettingRepository struct {
	ListFunc         func(ctx context.Context) ([]*models.SiteSetting, error)
	ListByPrefixFunc func(ctx context.Context, prefix string) ([]*models.SiteSetting, error)
	UpsertFunc       func(ctx context.Context, key string, value *string) (*models.SiteSetting, error)
	BatchUpsertFunc  func(ctx context.Context, rows []models.SettingUpsert) ([]*models.SiteSetting, error)

	Calls map[string][]interface{}
}

// NewSettingRepository creates a new mock setting repository
func NewSettingRepository() *SettingRepository {
	return &SettingRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *SettingRepository) List(ctx context.Context) ([]*models.SiteSetting, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.SiteSetting{}, nil
}

func (m *SettingRepository) ListByPrefix(ctx context.Context, prefix string) ([]*models.SiteSetting, error) {
	m.Calls["ListByPrefix"] = append(m.Calls["ListByPrefix"], prefix)
	if m.ListByPrefixFunc != nil {
		return m.ListByPrefixFunc(ctx, prefix)
	}
	return []*models.SiteSetting{}, nil
}

func (m *SettingRepository) Upsert(ctx context.Context, key string, value *string) (*models.SiteSetting, error) {
	m.Calls["Upsert"] = append(m.Calls["Upsert"], key)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, key, value)
	}
	return nil, nil
}

func (m *SettingRepository) BatchUpsert(ctx context.Context, rows []models.SettingUpsert) ([]*models.SiteSetting, error) {
	m.Calls["BatchUpsert"] = append(m.Calls["BatchUpsert"], rows)
	if m.BatchUpsertFunc != nil {
		return m.BatchUpsertFunc(ctx, rows)
	}
	return []*models.SiteSetting{}, nil
}
