package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog/internal/errs"
	"github.com/deppfellow/catalog/internal/model/product"
	"github.com/deppfellow/catalog/internal/repository"
	"github.com/deppfellow/catalog/internal/server"
)

type ProductService struct {
	server *server.Server
	repo   *repository.ProductRepository
}

func NewProductService(s *server.Server, repo *repository.ProductRepository) *ProductService {
	return &ProductService{
		server: s,
		repo:   repo,
	}
}

// List returns the products matching filter. An empty filter returns the
// whole catalog.
func (s *ProductService) List(ctx context.Context, filter product.Filter) []product.Product {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id int) (product.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return product.Product{}, s.translate(ctx, err, id)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, fields product.Fields) product.Product {
	p := s.repo.Create(ctx, fields)

	zerolog.Ctx(ctx).Info().
		Int("product_id", p.ID).
		Str("categoria", p.Category).
		Msg("product created")

	return p
}

func (s *ProductService) Replace(ctx context.Context, id int, fields product.Fields) (product.Product, error) {
	p, err := s.repo.Replace(ctx, id, fields)
	if err != nil {
		return product.Product{}, s.translate(ctx, err, id)
	}

	zerolog.Ctx(ctx).Info().Int("product_id", id).Msg("product replaced")
	return p, nil
}

func (s *ProductService) Patch(ctx context.Context, id int, patch product.Patch) (product.Product, error) {
	p, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return product.Product{}, s.translate(ctx, err, id)
	}

	zerolog.Ctx(ctx).Info().Int("product_id", id).Msg("product patched")
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(ctx, err, id)
	}

	zerolog.Ctx(ctx).Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// Count reports the number of stored products.
func (s *ProductService) Count() int {
	return s.repo.Count()
}

// translate maps repository errors to client errors. Anything unexpected
// is wrapped and left for the global error handler to hide.
func (s *ProductService) translate(ctx context.Context, err error, id int) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		zerolog.Ctx(ctx).Debug().Int("product_id", id).Msg("product not found")
		return errs.NewProductNotFoundError()
	}
	return errors.Wrapf(err, "product %d", id)
}
