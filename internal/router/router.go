// Package router builds the echo instance: global middleware, error
// handler, system routes and the catalog routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/deppfellow/catalog/internal/handler"
	"github.com/deppfellow/catalog/internal/middleware"
	"github.com/deppfellow/catalog/internal/model/product"
	"github.com/deppfellow/catalog/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// /productos/ and /productos/5/ route like /productos and /productos/5.
	router.Pre(echomw.RemoveTrailingSlash())

	// Order matters: the request id and the New Relic transaction must exist
	// before the context logger is built from them.
	router.Use(
		middleware.RequestID(),
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.Global.Secure(),
		mws.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	// Only the catalog is rate limited; health checks and docs are not.
	// The limiter is attached per route: group-level middleware would add
	// catch-all routes and turn 405s into 404s.
	registerProductRoutes(router.Group("/productos"), h.Product, mws.RateLimit.Limit())

	return router
}

// registerProductRoutes mounts the catalog CRUD with limit on every route.
func registerProductRoutes(g *echo.Group, p *handler.ProductHandler, limit echo.MiddlewareFunc) {
	g.GET("", handler.Handle(p.Handler, p.ListProducts, http.StatusOK, &product.ListProductsRequest{}), limit)
	g.POST("", handler.Handle(p.Handler, p.CreateProduct, http.StatusOK, &product.CreateProductRequest{}), limit)

	g.GET("/:id", handler.Handle(p.Handler, p.GetProduct, http.StatusOK, &product.GetProductRequest{}), limit)
	g.PUT("/:id", handler.Handle(p.Handler, p.ReplaceProduct, http.StatusOK, &product.ReplaceProductRequest{}), limit)
	g.PATCH("/:id", handler.Handle(p.Handler, p.PatchProduct, http.StatusOK, &product.PatchProductRequest{}), limit)
	g.DELETE("/:id", handler.Handle(p.Handler, p.DeleteProduct, http.StatusOK, &product.DeleteProductRequest{}), limit)
}
