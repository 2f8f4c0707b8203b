package product

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON name, so field errors read
// "precio" rather than "Price".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ListProductsRequest binds GET /productos/?nombre=&categoria=.
type ListProductsRequest struct {
	Name     string `query:"nombre"`
	Category string `query:"categoria"`
}

func (r *ListProductsRequest) Validate() error {
	return nil
}

// Filter converts the query into a store filter.
func (r *ListProductsRequest) Filter() Filter {
	return Filter{Name: r.Name, Category: r.Category}
}

// GetProductRequest binds the product id path parameter.
type GetProductRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *GetProductRequest) Validate() error {
	return nil
}

// DeleteProductRequest binds DELETE /productos/:id.
type DeleteProductRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *DeleteProductRequest) Validate() error {
	return nil
}

// CreateProductRequest is the full product body (without id).
//
// Pointers distinguish a missing field from its zero value: `"stock": 0`
// is valid, an absent "stock" is not.
type CreateProductRequest struct {
	Name     *string  `json:"nombre" validate:"required"`
	Price    *float64 `json:"precio" validate:"required"`
	Category *string  `json:"categoria" validate:"required"`
	Stock    *int     `json:"stock" validate:"required"`
}

func (r *CreateProductRequest) Validate() error {
	return validate.Struct(r)
}

// Fields returns the body as product fields. Call only after Validate.
func (r *CreateProductRequest) Fields() Fields {
	return Fields{
		Name:     *r.Name,
		Price:    *r.Price,
		Category: *r.Category,
		Stock:    *r.Stock,
	}
}

// ReplaceProductRequest binds PUT /productos/:id.
type ReplaceProductRequest struct {
	ID int `param:"id" json:"-"`
	CreateProductRequest
}

func (r *ReplaceProductRequest) Validate() error {
	return validate.Struct(r)
}

// PatchProductRequest binds PATCH /productos/:id. Every body field is optional.
type PatchProductRequest struct {
	ID       int      `param:"id" json:"-"`
	Name     *string  `json:"nombre"`
	Price    *float64 `json:"precio"`
	Category *string  `json:"categoria"`
	Stock    *int     `json:"stock"`
}

func (r *PatchProductRequest) Validate() error {
	return nil
}

// Patch returns the body as a partial update.
func (r *PatchProductRequest) Patch() Patch {
	return Patch{
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
		Stock:    r.Stock,
	}
}
