package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/service"
	"github.com/noonstudio/cms_api/internal/utils"
)

// PasswordHandler rotates the admin credential.
type PasswordHandler struct {
	credService *service.CredentialService
}

// NewPasswordHandler constructs a PasswordHandler.
func NewPasswordHandler(credService *service.CredentialService) *PasswordHandler {
	return &PasswordHandler{credService: credService}
}

// ChangePassword handles PUT /api/admin/password
func (h *PasswordHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.credService.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		utils.Success(c, 200, "Password changed", nil)
	case errors.Is(err, utils.ErrPasswordRequired):
		utils.Error(c, 400, "VALIDATION_ERROR", "Both current and new passwords are required")
	case errors.Is(err, utils.ErrPasswordTooShort):
		utils.Error(c, 400, "VALIDATION_ERROR", "New password must be at least 6 characters")
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Current password is incorrect")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to change password")
	}
}
