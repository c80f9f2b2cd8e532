package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/utils"
)

// SiteHandler serves the public, read-only content endpoints consumed by the
// marketing site. Only published portfolios and active services/links are
// exposed.
type SiteHandler struct {
	portfolios repository.PortfolioRepository
	services   repository.ServiceRepository
	links      repository.SocialLinkRepository
}

// NewSiteHandler constructs a SiteHandler.
func NewSiteHandler(
	portfolios repository.PortfolioRepository,
	services repository.ServiceRepository,
	links repository.SocialLinkRepository,
) *SiteHandler {
	return &SiteHandler{portfolios: portfolios, services: services, links: links}
}

// GetPortfolios handles GET /api/portfolios
func (h *SiteHandler) GetPortfolios(c *gin.Context) {
	portfolios, err := h.portfolios.ListPublished(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve portfolios")
		return
	}

	utils.Success(c, 200, "Portfolios retrieved", gin.H{
		"portfolios": portfolios,
		"total":      len(portfolios),
	})
}

// GetPortfolio handles GET /api/portfolios/:id. Unpublished entries are
// indistinguishable from missing ones.
func (h *SiteHandler) GetPortfolio(c *gin.Context) {
	p, err := h.portfolios.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PORTFOLIO_NOT_FOUND", "Portfolio not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve portfolio")
		return
	}
	if !p.IsPublished {
		utils.Error(c, 404, "PORTFOLIO_NOT_FOUND", "Portfolio not found")
		return
	}

	utils.Success(c, 200, "Portfolio retrieved", p)
}

// GetServices handles GET /api/services
func (h *SiteHandler) GetServices(c *gin.Context) {
	services, err := h.services.ListActive(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve services")
		return
	}

	utils.Success(c, 200, "Services retrieved", gin.H{
		"services": services,
		"total":    len(services),
	})
}

// GetLinks handles GET /api/links
func (h *SiteHandler) GetLinks(c *gin.Context) {
	links, err := h.links.ListActive(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve links")
		return
	}

	utils.Success(c, 200, "Links retrieved", gin.H{
		"links": links,
		"total": len(links),
	})
}
