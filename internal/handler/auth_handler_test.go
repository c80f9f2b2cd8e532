package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/repository/mock"
	"github.com/noonstudio/cms_api/internal/service"
	"github.com/noonstudio/cms_api/internal/utils"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	credSvc := service.NewCredentialService(mock.NewCredentialRepository(), "bootstrap-pw")
	h := NewAuthHandler(credSvc, "test-secret", false, nil, nil)

	router := gin.New()
	router.POST("/api/admin/auth", h.Login)
	router.DELETE("/api/admin/auth", h.Logout)
	return router
}

func findSessionCookie(res *http.Response) *http.Cookie {
	for _, cookie := range res.Cookies() {
		if cookie.Name == utils.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	router := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", strings.NewReader(`{"password":"bootstrap-pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	cookie := findSessionCookie(w.Result())
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("expected session cookie to be httpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Errorf("expected cookie path '/', got %q", cookie.Path)
	}
	if cookie.MaxAge != int(utils.SessionTTL.Seconds()) {
		t.Errorf("expected Max-Age %d, got %d", int(utils.SessionTTL.Seconds()), cookie.MaxAge)
	}

	if _, err := utils.ValidateSessionToken(cookie.Value, "test-secret"); err != nil {
		t.Errorf("expected issued cookie to carry a valid token: %v", err)
	}
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	router := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if cookie := findSessionCookie(w.Result()); cookie != nil {
		t.Error("expected no session cookie on a failed login")
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body, got %q", w.Body.String())
	}
	if body["success"] != false {
		t.Error("expected success=false in response body")
	}
}

func TestLogin_RejectsMissingPassword(t *testing.T) {
	router := newAuthRouter(t)

	for _, payload := range []string{`{}`, `{"password":""}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected status 400, got %d", payload, w.Code)
		}
	}
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	router := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/auth", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	cookie := findSessionCookie(w.Result())
	if cookie == nil {
		t.Fatal("expected an expiring session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("expected cleared cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}
