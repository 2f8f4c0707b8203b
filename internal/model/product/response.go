package product

// Response messages, kept verbatim for existing clients.
const (
	MessageCreated        = "Producto creado"
	MessageUpdated        = "Producto actualizado"
	MessagePartialUpdated = "Producto actualizado parcialmente"
	MessageDeleted        = "Producto eliminado"
)

// ListResponse is the body of GET /productos/.
type ListResponse struct {
	Products []Product `json:"productos"`
}

// MutationResponse is the body of POST, PUT and PATCH.
type MutationResponse struct {
	Message string  `json:"mensaje"`
	Product Product `json:"producto"`
}

// MessageResponse is the body of DELETE.
type MessageResponse struct {
	Message string `json:"mensaje"`
}
