package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/models"
	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/utils"
)

// ServiceHandler handles admin service-offering CRUD endpoints.
type ServiceHandler struct {
	services repository.ServiceRepository
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(services repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{services: services}
}

type serviceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

func (req *serviceRequest) apply(s *models.Service) {
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.Icon != nil {
		s.Icon = req.Icon
	}
	if req.SortOrder != nil {
		s.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
}

// ListServices handles GET /api/admin/services
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve services")
		return
	}

	utils.Success(c, 200, "Services retrieved", gin.H{
		"services": services,
		"total":    len(services),
	})
}

// CreateService handles POST /api/admin/services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" {
		utils.Error(c, 400, "VALIDATION_ERROR", "Title is required")
		return
	}

	var s models.Service
	s.IsActive = true
	req.apply(&s)

	if err := h.services.Create(c.Request.Context(), &s); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create service")
		return
	}

	utils.Success(c, 201, "Service created", s)
}

// UpdateService handles PUT /api/admin/services/:id
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	s, err := h.services.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "SERVICE_NOT_FOUND", "Service not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve service")
		return
	}

	req.apply(s)

	if err := h.services.Update(ctx, s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "SERVICE_NOT_FOUND", "Service not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update service")
		return
	}

	utils.Success(c, 200, "Service updated", s)
}

// DeleteService handles DELETE /api/admin/services/:id
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "SERVICE_NOT_FOUND", "Service not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete service")
		return
	}

	utils.Success(c, 200, "Service deleted", nil)
}
