package handler

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/utils"
)

// SettingHandler handles admin site-settings endpoints. Settings are
// upsert-only: rows are created lazily on first write and never deleted.
type SettingHandler struct {
	settings repository.SettingRepository
}

// NewSettingHandler constructs a SettingHandler.
func NewSettingHandler(settings repository.SettingRepository) *SettingHandler {
	return &SettingHandler{settings: settings}
}

// ListSettings handles GET /api/admin/settings (and the public
// GET /api/settings). An optional prefix query narrows to one UI group.
func (h *SettingHandler) ListSettings(c *gin.Context) {
	var (
		settings []*models.SiteSetting
		err      error
	)
	if prefix := c.Query("prefix"); prefix != "" {
		settings, err = h.settings.ListByPrefix(c.Request.Context(), prefix)
	} else {
		settings, err = h.settings.List(c.Request.Context())
	}
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve settings")
		return
	}

	utils.Success(c, 200, "Settings retrieved", gin.H{
		"settings": settings,
		"total":    len(settings),
	})
}

// UpsertSetting handles PUT /api/admin/settings: a single {key, value} write.
// A missing row is created with type "text" and the key as description; an
// existing row has only its value replaced.
func (h *SettingHandler) UpsertSetting(c *gin.Context) {
	var req struct {
		Key   string  `json:"key"`
		Value *string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		utils.Error(c, 400, "VALIDATION_ERROR", "Setting key is required")
		return
	}

	setting, err := h.settings.Upsert(c.Request.Context(), req.Key, req.Value)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save setting")
		return
	}

	utils.Success(c, 200, "Setting saved", setting)
}

// BatchUpsertSettings handles POST /api/admin/settings. The body may be a
// single row object or an array of rows; conflict resolution is last write
// wins per key.
func (h *SettingHandler) BatchUpsertSettings(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var rows []models.SettingUpsert
	if err := json.Unmarshal(body, &rows); err != nil {
		var single models.SettingUpsert
		if err := json.Unmarshal(body, &single); err != nil {
			utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
			return
		}
		rows = []models.SettingUpsert{single}
	}

	for _, row := range rows {
		if row.Key == "" {
			utils.Error(c, 400, "VALIDATION_ERROR", "Every setting row needs a key")
			return
		}
	}

	settings, err := h.settings.BatchUpsert(c.Request.Context(), rows)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save settings")
		return
	}

	utils.Success(c, 200, "Settings saved", gin.H{
		"settings": settings,
		"total":    len(settings),
	})
}
