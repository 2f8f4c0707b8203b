package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog/internal/server"
	"github.com/deppfellow/catalog/static"
)

// OpenAPIHandler serves the API docs UI and the OpenAPI document, both
// embedded in the binary.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  static.FS,
	}
}

// Assets returns the embedded static files, for mounting under /static.
func (h *OpenAPIHandler) Assets() fs.FS {
	return h.assets
}

// ServeOpenAPIUI serves openapi.html. Caching is disabled so docs changes
// show up on the next load.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := fs.ReadFile(h.assets, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
