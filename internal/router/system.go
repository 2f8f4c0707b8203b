package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not part of the
// catalog API: health, docs UI and the embedded docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", h.OpenAPI.Assets())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
