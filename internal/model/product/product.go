// Package product holds the catalog's domain type and its HTTP payloads.
package product

// Product is a catalog item. ID is assigned by the store and never changes.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"nombre"`
	Price    float64 `json:"precio"`
	Category string  `json:"categoria"`
	Stock    int     `json:"stock"`
}

// Fields is the mutable part of a Product: everything except ID.
type Fields struct {
	Name     string
	Price    float64
	Category string
	Stock    int
}

// Apply overwrites every mutable field of p.
func (f Fields) Apply(p *Product) {
	p.Name = f.Name
	p.Price = f.Price
	p.Category = f.Category
	p.Stock = f.Stock
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Price    *float64
	Category *string
	Stock    *int
}

// Apply overwrites only the fields present in the patch.
func (pt Patch) Apply(p *Product) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.Stock != nil {
		p.Stock = *pt.Stock
	}
}

// Filter narrows a listing. Empty fields do not filter.
type Filter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Category matches exactly.
	Category string
}

// Seed returns the catalog the service starts with.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Croquetas Premium", Price: 25.0, Category: "alimento", Stock: 50},
		{ID: 2, Name: "Pelota de Goma", Price: 5.5, Category: "juguetes", Stock: 100},
		{ID: 3, Name: "Correa para perro", Price: 15.0, Category: "accesorios", Stock: 30},
		{ID: 4, Name: "Arena para gatos", Price: 12.0, Category: "accesorios", Stock: 40},
		{ID: 5, Name: "Comida húmeda para gato", Price: 2.5, Category: "alimento", Stock: 60},
		{ID: 6, Name: "Hueso de juguete", Price: 4.0, Category: "juguetes", Stock: 75},
		{ID: 7, Name: "Dispensador de agua", Price: 18.0, Category: "accesorios", Stock: 25},
		{ID: 8, Name: "Snacks para perro", Price: 3.5, Category: "alimento", Stock: 80},
		{ID: 9, Name: "Ratón de peluche", Price: 3.0, Category: "juguetes", Stock: 90},
		{ID: 10, Name: "Cepillo para mascotas", Price: 9.0, Category: "accesorios", Stock: 35},
		{ID: 11, Name: "Pienso natural", Price: 22.5, Category: "alimento", Stock: 45},
		{ID: 12, Name: "Cuerda para morder", Price: 6.0, Category: "juguetes", Stock: 50},
		{ID: 13, Name: "Transportín pequeño", Price: 29.0, Category: "accesorios", Stock: 20},
		{ID: 14, Name: "Galletas para gato", Price: 3.8, Category: "alimento", Stock: 70},
		{ID: 15, Name: "Pelota con sonido", Price: 7.5, Category: "juguetes", Stock: 60},
		{ID: 16, Name: "Collar reflectante", Price: 8.0, Category: "accesorios", Stock: 55},
		{ID: 17, Name: "Comida seca para perro", Price: 20.0, Category: "alimento", Stock: 65},
		{ID: 18, Name: "Juguete interactivo", Price: 15.0, Category: "juguetes", Stock: 40},
		{ID: 19, Name: "Cama para mascotas", Price: 35.0, Category: "accesorios", Stock: 30},
		{ID: 20, Name: "Snacks naturales para gato", Price: 4.5, Category: "alimento", Stock: 85},
	}
}
