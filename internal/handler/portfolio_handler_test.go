package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository/mock"
)

func newPortfolioRouter(t *testing.T, repo *mock.PortfolioRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewPortfolioHandler(repo)
	router := gin.New()
	router.GET("/api/admin/portfolios", h.ListPortfolios)
	router.POST("/api/admin/portfolios", h.CreatePortfolio)
	router.GET("/api/admin/portfolios/:id", h.GetPortfolio)
	router.PUT("/api/admin/portfolios/:id", h.UpdatePortfolio)
	router.DELETE("/api/admin/portfolios/:id", h.DeletePortfolio)
	return router
}

func TestCreatePortfolio_RequiresTitle(t *testing.T) {
	repo := mock.NewPortfolioRepository()
	router := newPortfolioRouter(t, repo)

	for _, payload := range []string{`{}`, `{"title":""}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/portfolios", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected status 400, got %d", payload, w.Code)
		}
	}
	if len(repo.Calls["Create"]) != 0 {
		t.Error("expected no writes for rejected payloads")
	}
}

func TestCreatePortfolio_StoresFields(t *testing.T) {
	repo := mock.NewPortfolioRepository()
	router := newPortfolioRouter(t, repo)

	payload := `{"title":"Brand identity","category":"branding","tags":["logo","print"],"isFeatured":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/portfolios", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.Calls["Create"]) != 1 {
		t.Fatalf("expected one Create call, got %d", len(repo.Calls["Create"]))
	}

	p := repo.Calls["Create"][0].(*models.Portfolio)
	if p.Title != "Brand identity" {
		t.Errorf("expected title 'Brand identity', got %q", p.Title)
	}
	if p.Category == nil || *p.Category != "branding" {
		t.Errorf("unexpected category %v", p.Category)
	}
	if len(p.Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", p.Tags)
	}
	if !p.IsFeatured {
		t.Error("expected isFeatured to be set")
	}
	if p.Images == nil {
		t.Error("expected images to default to an empty slice")
	}
}

func TestGetPortfolio_NotFound(t *testing.T) {
	repo := mock.NewPortfolioRepository()
	repo.GetByIDFunc = func(ctx context.Context, id string) (*models.Portfolio, error) {
		return nil, sql.ErrNoRows
	}
	router := newPortfolioRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/portfolios/missing-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestUpdatePortfolio_MergesPartialPayload(t *testing.T) {
	existingTitle := "Old title"
	category := "branding"
	repo := mock.NewPortfolioRepository()
	repo.GetByIDFunc = func(ctx context.Context, id string) (*models.Portfolio, error) {
		return &models.Portfolio{
			ID:       id,
			Title:    existingTitle,
			Category: &category,
			Tags:     []string{"logo"},
		}, nil
	}
	router := newPortfolioRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/portfolios/p1", strings.NewReader(`{"title":"New title"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.Calls["Update"]) != 1 {
		t.Fatalf("expected one Update call, got %d", len(repo.Calls["Update"]))
	}

	p := repo.Calls["Update"][0].(*models.Portfolio)
	if p.Title != "New title" {
		t.Errorf("expected title to be replaced, got %q", p.Title)
	}
	if p.Category == nil || *p.Category != "branding" {
		t.Error("expected untouched fields to keep their stored values")
	}
	if len(p.Tags) != 1 || p.Tags[0] != "logo" {
		t.Error("expected untouched tags to keep their stored values")
	}
}

func TestDeletePortfolio_NotFound(t *testing.T) {
	repo := mock.NewPortfolioRepository()
	repo.DeleteFunc = func(ctx context.Context, id string) error {
		return sql.ErrNoRows
	}
	router := newPortfolioRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/portfolios/missing-id", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
