// Package repository owns the catalog data.
//
// There is no database: products live in process memory for the lifetime of
// the server. Repositories hand out copies, never references into their
// internal state.
package repository

import (
	"github.com/deppfellow/catalog/internal/model/product"
	"github.com/deppfellow/catalog/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Product *ProductRepository
}

// NewRepositories constructs the repository container, seeding the product
// store when the catalog config asks for it.
func NewRepositories(s *server.Server) *Repositories {
	var seed []product.Product
	if s.Config.Catalog.Seed {
		seed = product.Seed()
	}

	return &Repositories{
		Product: NewProductRepository(seed),
	}
}
