// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from handlers, applies the catalog rules and translates repository
// errors into errs.HTTPError values.
package service

import (
	"github.com/deppfellow/catalog/internal/repository"
	"github.com/deppfellow/catalog/internal/server"
)

type Services struct {
	Product *ProductService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Product: NewProductService(s, repos.Product),
	}
}
