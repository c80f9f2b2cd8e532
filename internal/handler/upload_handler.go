package handler

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/metrics"
	"github.com/noonstudio/cms_api/internal/service"
	"github.com/noonstudio/cms_api/internal/utils"
)

// MaxUploadSize is the upload size ceiling (10MB).
const MaxUploadSize = 10 * 1024 * 1024

// allowedMIMETypes maps accepted image MIME types to object key extensions.
var allowedMIMETypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadHandler accepts image uploads and returns public object URLs.
type UploadHandler struct {
	storage   *service.StorageService
	collector *metrics.Collector
}

// NewUploadHandler constructs an UploadHandler. collector may be nil.
func NewUploadHandler(storage *service.StorageService, collector *metrics.Collector) *UploadHandler {
	return &UploadHandler{storage: storage, collector: collector}
}

// Upload handles POST /api/admin/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "No file provided")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		utils.Error(c, 400, "VALIDATION_ERROR", "Unsupported file type (JPG, PNG, GIF, WEBP only)")
		return
	}

	if fileHeader.Size > MaxUploadSize {
		utils.Error(c, 400, "VALIDATION_ERROR", "File exceeds the 10MB size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read uploaded file")
		return
	}
	if len(data) > MaxUploadSize {
		utils.Error(c, 400, "VALIDATION_ERROR", "File exceeds the 10MB size limit")
		return
	}

	key, err := utils.GenerateObjectName("portfolios", strings.ToLower(ext))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to generate object name")
		return
	}

	url, err := h.storage.UploadImage(c.Request.Context(), key, data, contentType)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to upload file")
		return
	}

	if h.collector != nil {
		h.collector.RecordUpload()
	}

	utils.Success(c, 200, "File uploaded", gin.H{
		"url": url,
	})
}
