package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository/mock"
	"github.com/noonstudio/cms_api/internal/utils"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(hash)
}

func TestValidate_EnvFallbackWhenNoStoredHash(t *testing.T) {
	repo := mock.NewCredentialRepository()
	svc := NewCredentialService(repo, "bootstrap-pw")

	ok, err := svc.Validate(context.Background(), "bootstrap-pw")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok {
		t.Error("expected bootstrap password to validate when no hash is stored")
	}

	ok, err = svc.Validate(context.Background(), "wrong")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Error("expected wrong password to be rejected")
	}
}

func TestValidate_StoredHashShadowsEnvPassword(t *testing.T) {
	repo := mock.NewCredentialRepository()
	repo.GetFunc = func(ctx context.Context) (*models.AdminCredential, error) {
		return &models.AdminCredential{ID: 1, PasswordHash: mustHash(t, "rotated-pw")}, nil
	}
	svc := NewCredentialService(repo, "bootstrap-pw")

	ok, err := svc.Validate(context.Background(), "rotated-pw")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok {
		t.Error("expected stored password to validate")
	}

	// The bootstrap password must be unreachable once a hash is stored.
	ok, err = svc.Validate(context.Background(), "bootstrap-pw")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Error("expected bootstrap password to be rejected once a hash is stored")
	}
}

func TestValidate_FailsClosedWithNoCredentialAtAll(t *testing.T) {
	repo := mock.NewCredentialRepository()
	svc := NewCredentialService(repo, "")

	ok, err := svc.Validate(context.Background(), "")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Error("expected validation to fail with no stored hash and no bootstrap password")
	}
}

func TestValidate_PropagatesStoreError(t *testing.T) {
	repo := mock.NewCredentialRepository()
	repo.GetFunc = func(ctx context.Context) (*models.AdminCredential, error) {
		return nil, errors.New("connection refused")
	}
	svc := NewCredentialService(repo, "bootstrap-pw")

	if _, err := svc.Validate(context.Background(), "bootstrap-pw"); err == nil {
		t.Error("expected store error to propagate")
	}
}

func TestChangePassword_RejectsEmptyFields(t *testing.T) {
	repo := mock.NewCredentialRepository()
	svc := NewCredentialService(repo, "bootstrap-pw")

	if err := svc.ChangePassword(context.Background(), "", "new-password"); !errors.Is(err, utils.ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), "bootstrap-pw", ""); !errors.Is(err, utils.ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestChangePassword_RejectsShortPassword(t *testing.T) {
	repo := mock.NewCredentialRepository()
	svc := NewCredentialService(repo, "bootstrap-pw")

	err := svc.ChangePassword(context.Background(), "bootstrap-pw", "abc")
	if !errors.Is(err, utils.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if len(repo.Calls["Insert"]) != 0 || len(repo.Calls["UpdateHash"]) != 0 {
		t.Error("expected no credential write after a rejected rotation")
	}
}

func TestChangePassword_RejectsWrongCurrentPassword(t *testing.T) {
	repo := mock.NewCredentialRepository()
	svc := NewCredentialService(repo, "bootstrap-pw")

	err := svc.ChangePassword(context.Background(), "wrong", "new-password")
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.Calls["Insert"]) != 0 {
		t.Error("expected no credential write after a rejected rotation")
	}
}

func TestChangePassword_InsertsFirstHash(t *testing.T) {
	repo := mock.NewCredentialRepository()
	svc := NewCredentialService(repo, "bootstrap-pw")

	if err := svc.ChangePassword(context.Background(), "bootstrap-pw", "new-password"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if len(repo.Calls["Insert"]) != 1 {
		t.Fatalf("expected one Insert call, got %d", len(repo.Calls["Insert"]))
	}
	stored := repo.Calls["Insert"][0].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-password")); err != nil {
		t.Error("stored hash does not match the new password")
	}
}

func TestChangePassword_UpdatesExistingHash(t *testing.T) {
	repo := mock.NewCredentialRepository()
	repo.GetFunc = func(ctx context.Context) (*models.AdminCredential, error) {
		return &models.AdminCredential{ID: 1, PasswordHash: mustHash(t, "old-password")}, nil
	}
	svc := NewCredentialService(repo, "bootstrap-pw")

	if err := svc.ChangePassword(context.Background(), "old-password", "new-password"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if len(repo.Calls["UpdateHash"]) != 1 {
		t.Fatalf("expected one UpdateHash call, got %d", len(repo.Calls["UpdateHash"]))
	}
	if len(repo.Calls["Insert"]) != 0 {
		t.Error("expected rotation of an existing credential to update in place")
	}
	stored := repo.Calls["UpdateHash"][0].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-password")); err != nil {
		t.Error("stored hash does not match the new password")
	}
}
