package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog/internal/model/product"
	"github.com/deppfellow/catalog/internal/server"
	"github.com/deppfellow/catalog/internal/service"
)

// ProductHandler exposes the catalog CRUD operations.
// Methods are HandlerFunc values meant to be wrapped with Handle.
type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, req *product.ListProductsRequest) (*product.ListResponse, error) {
	return &product.ListResponse{
		Products: h.productService.List(c.Request().Context(), req.Filter()),
	}, nil
}

func (h *ProductHandler) GetProduct(c echo.Context, req *product.GetProductRequest) (*product.Product, error) {
	p, err := h.productService.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *product.CreateProductRequest) (*product.MutationResponse, error) {
	p := h.productService.Create(c.Request().Context(), req.Fields())
	return &product.MutationResponse{
		Message: product.MessageCreated,
		Product: p,
	}, nil
}

func (h *ProductHandler) ReplaceProduct(c echo.Context, req *product.ReplaceProductRequest) (*product.MutationResponse, error) {
	p, err := h.productService.Replace(c.Request().Context(), req.ID, req.Fields())
	if err != nil {
		return nil, err
	}
	return &product.MutationResponse{
		Message: product.MessageUpdated,
		Product: p,
	}, nil
}

func (h *ProductHandler) PatchProduct(c echo.Context, req *product.PatchProductRequest) (*product.MutationResponse, error) {
	p, err := h.productService.Patch(c.Request().Context(), req.ID, req.Patch())
	if err != nil {
		return nil, err
	}
	return &product.MutationResponse{
		Message: product.MessagePartialUpdated,
		Product: p,
	}, nil
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *product.DeleteProductRequest) (*product.MessageResponse, error) {
	if err := h.productService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &product.MessageResponse{Message: product.MessageDeleted}, nil
}
