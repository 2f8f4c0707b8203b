package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/deppfellow/catalog/internal/model/product"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository stores products in insertion order.
//
// Lookups are linear scans; the catalog is expected to stay small. Every
// method is a single critical section, so read-modify-write operations are
// atomic with respect to each other.
type ProductRepository struct {
	mu       sync.RWMutex
	products []product.Product
}

// NewProductRepository returns a store holding a copy of seed.
func NewProductRepository(seed []product.Product) *ProductRepository {
	products := make([]product.Product, len(seed))
	copy(products, seed)
	return &ProductRepository{products: products}
}

// List returns the products matching filter, in insertion order.
// The result is never nil.
func (r *ProductRepository) List(_ context.Context, filter product.Filter) []product.Product {
	var needle string
	if filter.Name != "" {
		needle = fold(filter.Name)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, 0, len(r.products))
	for _, p := range r.products {
		if needle != "" && !strings.Contains(fold(p.Name), needle) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns the product with the given id.
func (r *ProductRepository) Get(_ context.Context, id int) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return product.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// Create assigns the next id (max existing id + 1, or 1 when empty),
// appends the product and returns it.
func (r *ProductRepository) Create(_ context.Context, fields product.Fields) product.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := product.Product{ID: r.nextID()}
	fields.Apply(&p)
	r.products = append(r.products, p)
	return p
}

// Replace overwrites every field except id.
func (r *ProductRepository) Replace(_ context.Context, id int, fields product.Fields) (product.Product, error) {
	return r.update(id, fields.Apply)
}

// Patch overwrites only the fields present in patch.
func (r *ProductRepository) Patch(_ context.Context, id int, patch product.Patch) (product.Product, error) {
	return r.update(id, patch.Apply)
}

// Delete removes the first product with the given id.
func (r *ProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

func (r *ProductRepository) update(id int, apply func(*product.Product)) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return product.Product{}, ErrProductNotFound
	}
	apply(&r.products[i])
	r.products[i].ID = id
	return r.products[i], nil
}

// indexOf must be called with r.mu held.
func (r *ProductRepository) indexOf(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with r.mu held.
func (r *ProductRepository) nextID() int {
	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// fold normalizes s for caseless comparison ("RATÓN" and "ratón" fold equal).
func fold(s string) string {
	return cases.Fold().String(s)
}
