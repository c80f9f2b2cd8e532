package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository/mock"
	"github.com/noonstudio/cms_api/internal/service"
)

func newPasswordRouter(t *testing.T, repo *mock.CredentialRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewPasswordHandler(service.NewCredentialService(repo, "bootstrap-pw"))
	router := gin.New()
	router.PUT("/api/admin/password", h.ChangePassword)
	return router
}

func putPassword(router *gin.Engine, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/password", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestChangePasswordEndpoint_Success(t *testing.T) {
	repo := mock.NewCredentialRepository()
	router := newPasswordRouter(t, repo)

	w := putPassword(router, `{"currentPassword":"bootstrap-pw","newPassword":"new-password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.Calls["Insert"]) != 1 {
		t.Errorf("expected the new hash to be stored, got %d Insert calls", len(repo.Calls["Insert"]))
	}
}

func TestChangePasswordEndpoint_RejectsMissingFields(t *testing.T) {
	router := newPasswordRouter(t, mock.NewCredentialRepository())

	for _, payload := range []string{
		`{"currentPassword":"","newPassword":"new-password"}`,
		`{"currentPassword":"bootstrap-pw","newPassword":""}`,
		`{}`,
	} {
		if w := putPassword(router, payload); w.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected status 400, got %d", payload, w.Code)
		}
	}
}

func TestChangePasswordEndpoint_RejectsShortPassword(t *testing.T) {
	router := newPasswordRouter(t, mock.NewCredentialRepository())

	if w := putPassword(router, `{"currentPassword":"bootstrap-pw","newPassword":"abc"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestChangePasswordEndpoint_RejectsWrongCurrentPassword(t *testing.T) {
	router := newPasswordRouter(t, mock.NewCredentialRepository())

	if w := putPassword(router, `{"currentPassword":"wrong","newPassword":"new-password"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestChangePasswordEndpoint_ReportsStoreFailure(t *testing.T) {
	repo := mock.NewCredentialRepository()
	repo.GetFunc = func(ctx context.Context) (*models.AdminCredential, error) {
		return nil, context.DeadlineExceeded
	}
	router := newPasswordRouter(t, repo)

	if w := putPassword(router, `{"currentPassword":"bootstrap-pw","newPassword":"new-password"}`); w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}
