package mock

import (
	"context"

	"github.com/noonstudio/cms_api/internal/models"
)

// CredentialRepository is a mock implementation of repository.CredentialRepository
type CredentialRepository struct {
	// Function stubs that can be overridden in tests
	GetFunc        func(ctx context.Context) (*models.AdminCredential, error)
	InsertFunc     func(ctx context.Context, passwordHash string) error
	UpdateHashFunc func(ctx context.Context, id int, passwordHash string) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewCredentialRepository creates a new mock credential repository
func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *CredentialRepository) Get(ctx context.Context) (*models.AdminCredential, error) {
	m.Calls["Get"] = append(m.Calls["Get"], nil)
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *CredentialRepository) Insert(ctx context.Context, passwordHash string) error {
	m.Calls["Insert"] = append(m.Calls["Insert"], passwordHash)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, passwordHash)
	}
	return nil
}

func (m *CredentialRepository) UpdateHash(ctx context.Context, id int, passwordHash string) error {
	m.Calls["UpdateHash"] = append(m.Calls["UpdateHash"], passwordHash)
	if m.UpdateHashFunc != nil {
		return m.UpdateHashFunc(ctx, id, passwordHash)
	}
	return nil
}
