package dto

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
