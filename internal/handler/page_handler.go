package handler

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static admin panel bundle. The login page lives at
// /admin and is reachable without a session; everything deeper sits behind
// the page guard.
type PageHandler struct {
	dir string
}

// NewPageHandler constructs a PageHandler serving files from dir.
func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

// Login handles GET /admin
func (h *PageHandler) Login(c *gin.Context) {
	h.serve(c, "index.html")
}

// App handles GET /admin/*path for the gated dashboard pages. Unknown paths
// fall back to the SPA index so client-side routing keeps working.
func (h *PageHandler) App(c *gin.Context) {
	h.serve(c, c.Param("path"))
}

func (h *PageHandler) serve(c *gin.Context, rel string) {
	path := filepath.Join(h.dir, filepath.Clean("/"+rel))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}
	c.File(filepath.Join(h.dir, "index.html"))
}
