package entity

// Producto es el artículo al que se asocia un Stock.
type Producto struct {
	ID     int64
	Nombre string
}

// ProductoRef construye una referencia que solo lleva la identidad (sin cargar el nombre).
func ProductoRef(id int64) *Producto {
	return &Producto{ID: id}
}
