package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/utils"
)

// LinkHandler handles admin social-link CRUD endpoints.
type LinkHandler struct {
	links repository.SocialLinkRepository
}

// NewLinkHandler constructs a LinkHandler.
func NewLinkHandler(links repository.SocialLinkRepository) *LinkHandler {
	return &LinkHandler{links: links}
}

type linkRequest struct {
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	Icon      *string `json:"icon"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

func (req *linkRequest) apply(l *models.SocialLink) {
	if req.Platform != nil {
		l.Platform = *req.Platform
	}
	if req.URL != nil {
		l.URL = *req.URL
	}
	if req.Icon != nil {
		l.Icon = req.Icon
	}
	if req.SortOrder != nil {
		l.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
}

// ListLinks handles GET /api/admin/links
func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.links.List(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve links")
		return
	}

	utils.Success(c, 200, "Links retrieved", gin.H{
		"links": links,
		"total": len(links),
	})
}

// CreateLink handles POST /api/admin/links
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Platform == nil || *req.Platform == "" || req.URL == nil || *req.URL == "" {
		utils.Error(c, 400, "VALIDATION_ERROR", "Platform and URL are required")
		return
	}

	var l models.SocialLink
	l.IsActive = true
	req.apply(&l)

	if err := h.links.Create(c.Request.Context(), &l); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create link")
		return
	}

	utils.Success(c, 201, "Link created", l)
}

// GetLink handles GET /api/admin/links/:id
func (h *LinkHandler) GetLink(c *gin.Context) {
	l, err := h.links.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "LINK_NOT_FOUND", "Link not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve link")
		return
	}

	utils.Success(c, 200, "Link retrieved", l)
}

// UpdateLink handles PUT /api/admin/links/:id
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	l, err := h.links.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "LINK_NOT_FOUND", "Link not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve link")
		return
	}

	req.apply(l)

	if err := h.links.Update(ctx, l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "LINK_NOT_FOUND", "Link not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update link")
		return
	}

	utils.Success(c, 200, "Link updated", l)
}

// DeleteLink handles DELETE /api/admin/links/:id
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	if err := h.links.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "LINK_NOT_FOUND", "Link not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete link")
		return
	}

	utils.Success(c, 200, "Link deleted", nil)
}
