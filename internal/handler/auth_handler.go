package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/metrics"
	"github.com/noonstudio/cms_api/internal/middleware"
	"github.com/noonstudio/cms_api/internal/service"
	"github.com/noonstudio/cms_api/internal/utils"
)

// AuthHandler handles admin login and logout. Login issues the signed session
// cookie; logout clears it. There is no per-user identity: a valid password
// yields the single shared admin role.
type AuthHandler struct {
	credService  *service.CredentialService
	secret       string
	secureCookie bool
	throttle     *middleware.LoginThrottle
	collector    *metrics.Collector
}

// NewAuthHandler constructs an AuthHandler. throttle and collector may be nil.
func NewAuthHandler(credService *service.CredentialService, secret string, secureCookie bool, throttle *middleware.LoginThrottle, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{
		credService:  credService,
		secret:       secret,
		secureCookie: secureCookie,
		throttle:     throttle,
		collector:    collector,
	}
}

// Login handles POST /api/admin/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		utils.Error(c, 400, "VALIDATION_ERROR", "Password is required")
		return
	}

	ok, err := h.credService.Validate(c.Request.Context(), req.Password)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to validate credentials")
		return
	}
	if !ok {
		if h.throttle != nil {
			h.throttle.RecordFailure(c.Request.Context(), c.ClientIP())
		}
		if h.collector != nil {
			h.collector.RecordLoginFailure()
		}
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Password is incorrect")
		return
	}

	token, err := utils.GenerateSessionToken(h.secret)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create session")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionTTL.Seconds()), "/", "", h.secureCookie, true)

	utils.Success(c, 200, "Login successful", nil)
}

// Logout handles DELETE /api/admin/auth
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", h.secureCookie, true)

	utils.Success(c, 200, "Logged out", nil)
}
