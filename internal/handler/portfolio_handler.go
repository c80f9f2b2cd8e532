package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/utils"
)

// PortfolioHandler handles admin portfolio CRUD endpoints.
type PortfolioHandler struct {
	portfolios repository.PortfolioRepository
}

// NewPortfolioHandler constructs a PortfolioHandler.
func NewPortfolioHandler(portfolios repository.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

// portfolioRequest carries a full or partial portfolio payload. Nil fields in
// an update leave the stored value untouched.
type portfolioRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	ImageURL     *string   `json:"imageUrl"`
	Images       *[]string `json:"images"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Tags         *[]string `json:"tags"`
	IsFeatured   *bool     `json:"isFeatured"`
	IsPublished  *bool     `json:"isPublished"`
	SortOrder    *int      `json:"sortOrder"`
}

func (req *portfolioRequest) apply(p *models.Portfolio) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.ThumbnailURL != nil {
		p.ThumbnailURL = req.ThumbnailURL
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
}

// ListPortfolios handles GET /api/admin/portfolios
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	portfolios, err := h.portfolios.List(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve portfolios")
		return
	}

	utils.Success(c, 200, "Portfolios retrieved", gin.H{
		"portfolios": portfolios,
		"total":      len(portfolios),
	})
}

// CreatePortfolio handles POST /api/admin/portfolios
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" {
		utils.Error(c, 400, "VALIDATION_ERROR", "Title is required")
		return
	}

	var p models.Portfolio
	p.Images = []string{}
	p.Tags = []string{}
	req.apply(&p)

	if err := h.portfolios.Create(c.Request.Context(), &p); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create portfolio")
		return
	}

	utils.Success(c, 201, "Portfolio created", p)
}

// GetPortfolio handles GET /api/admin/portfolios/:id
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	p, err := h.portfolios.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PORTFOLIO_NOT_FOUND", "Portfolio not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve portfolio")
		return
	}

	utils.Success(c, 200, "Portfolio retrieved", p)
}

// UpdatePortfolio handles PUT /api/admin/portfolios/:id
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	p, err := h.portfolios.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PORTFOLIO_NOT_FOUND", "Portfolio not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve portfolio")
		return
	}

	req.apply(p)

	if err := h.portfolios.Update(ctx, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PORTFOLIO_NOT_FOUND", "Portfolio not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update portfolio")
		return
	}

	utils.Success(c, 200, "Portfolio updated", p)
}

// DeletePortfolio handles DELETE /api/admin/portfolios/:id
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	if err := h.portfolios.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PORTFOLIO_NOT_FOUND", "Portfolio not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete portfolio")
		return
	}

	utils.Success(c, 200, "Portfolio deleted", nil)
}
