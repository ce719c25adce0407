package dto

// StockDTO representación de Stock en la API.
// ProductoNombre se deriva del producto referenciado al momento de la lectura; no se persiste.
type StockDTO struct {
	ID             *int64  `json:"id"`
	Cantidad       *int64  `json:"cantidad" validate:"required,min=0"`
	ProductoID     *int64  `json:"productoId"`
	ProductoNombre *string `json:"productoNombre"`
}
