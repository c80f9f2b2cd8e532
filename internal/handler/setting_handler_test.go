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
)

func newSettingRouter(t *testing.T, repo *mock.SettingRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewSettingHandler(repo)
	router := gin.New()
	router.GET("/api/admin/settings", h.ListSettings)
	router.PUT("/api/admin/settings", h.UpsertSetting)
	router.POST("/api/admin/settings", h.BatchUpsertSettings)
	return router
}

func TestListSettings_UsesPrefixFilter(t *testing.T) {
	repo := mock.NewSettingRepository()
	router := newSettingRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings?prefix=hero_", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if len(repo.Calls["ListByPrefix"]) != 1 {
		t.Fatalf("expected one ListByPrefix call, got %d", len(repo.Calls["ListByPrefix"]))
	}
	if prefix := repo.Calls["ListByPrefix"][0].(string); prefix != "hero_" {
		t.Errorf("expected prefix 'hero_', got %q", prefix)
	}
	if len(repo.Calls["List"]) != 0 {
		t.Error("expected the unfiltered list not to be used")
	}
}

func TestUpsertSetting_WritesSingleKey(t *testing.T) {
	repo := mock.NewSettingRepository()
	var gotKey string
	var gotValue *string
	repo.UpsertFunc = func(ctx context.Context, key string, value *string) (*models.SiteSetting, error) {
		gotKey = key
		gotValue = value
		return &models.SiteSetting{Key: key, Value: value}, nil
	}
	router := newSettingRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(`{"key":"site_title","value":"NOON"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotKey != "site_title" {
		t.Errorf("expected key 'site_title', got %q", gotKey)
	}
	if gotValue == nil || *gotValue != "NOON" {
		t.Errorf("expected value 'NOON', got %v", gotValue)
	}
}

func TestUpsertSetting_RejectsMissingKey(t *testing.T) {
	repo := mock.NewSettingRepository()
	router := newSettingRouter(t, repo)

	for _, payload := range []string{`{}`, `{"key":"","value":"x"}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/admin/settings", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected status 400, got %d", payload, w.Code)
		}
	}
	if len(repo.Calls["Upsert"]) != 0 {
		t.Error("expected no writes for rejected payloads")
	}
}

func TestBatchUpsertSettings_AcceptsArray(t *testing.T) {
	repo := mock.NewSettingRepository()
	router := newSettingRouter(t, repo)

	payload := `[{"key":"site_title","value":"NOON"},{"key":"hero_title","value":"We design"}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.Calls["BatchUpsert"]) != 1 {
		t.Fatalf("expected one BatchUpsert call, got %d", len(repo.Calls["BatchUpsert"]))
	}
	rows := repo.Calls["BatchUpsert"][0].([]models.SettingUpsert)
	if len(rows) != 2 || rows[0].Key != "site_title" || rows[1].Key != "hero_title" {
		t.Errorf("unexpected rows forwarded to the store: %+v", rows)
	}
}

func TestBatchUpsertSettings_AcceptsSingleObject(t *testing.T) {
	repo := mock.NewSettingRepository()
	router := newSettingRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/settings", strings.NewReader(`{"key":"site_title","value":"NOON"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := repo.Calls["BatchUpsert"][0].([]models.SettingUpsert)
	if len(rows) != 1 || rows[0].Key != "site_title" {
		t.Errorf("expected the single object to be wrapped as one row, got %+v", rows)
	}
}

func TestBatchUpsertSettings_RejectsRowWithoutKey(t *testing.T) {
	repo := mock.NewSettingRepository()
	router := newSettingRouter(t, repo)

	payload := `[{"key":"site_title","value":"NOON"},{"value":"orphan"}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if len(repo.Calls["BatchUpsert"]) != 0 {
		t.Error("expected no writes when any row is missing a key")
	}
}
