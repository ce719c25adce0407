package entity

// Stock representa la cantidad disponible de un producto.
// Producto es una referencia no propietaria; puede ser nil.
type Stock struct {
	ID       int64
	Cantidad int64
	Producto *Producto
}

// ProductoID devuelve la identidad del producto referenciado, o nil si no hay producto.
func (s *Stock) ProductoID() *int64 {
	if s == nil || s.Producto == nil {
		return nil
	}
	id := s.Producto.ID
	return &id
}

// IsNew indica si el stock aún no tiene identidad asignada por el store.
func (s *Stock) IsNew() bool {
	return s.ID == 0
}
