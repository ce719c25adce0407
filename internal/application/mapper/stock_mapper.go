// Package mapper convierte entre entidades de dominio y DTOs de la API.
package mapper

import (
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// StockToDTO copia los escalares y denormaliza productoId/productoNombre del producto referenciado.
// Un nombre vacío (referencia sin cargar) se expone como null.
func StockToDTO(s *entity.Stock) *dto.StockDTO {
	if s == nil {
		return nil
	}
	out := &dto.StockDTO{Cantidad: int64Ptr(s.Cantidad)}
	if !s.IsNew() {
		out.ID = int64Ptr(s.ID)
	}
	if s.Producto != nil {
		out.ProductoID = int64Ptr(s.Producto.ID)
		if s.Producto.Nombre != "" {
			nombre := s.Producto.Nombre
			out.ProductoNombre = &nombre
		}
	}
	return out
}

// StockToEntity copia los escalares y adjunta el producto solo por identidad.
// ProductoNombre se descarta: nunca se persiste.
func StockToEntity(d *dto.StockDTO) *entity.Stock {
	if d == nil {
		return nil
	}
	s := &entity.Stock{}
	if d.ID != nil {
		s.ID = *d.ID
	}
	if d.Cantidad != nil {
		s.Cantidad = *d.Cantidad
	}
	if d.ProductoID != nil {
		s.Producto = entity.ProductoRef(*d.ProductoID)
	}
	return s
}

// StocksToDTO mapea una lista; nunca devuelve nil.
func StocksToDTO(list []*entity.Stock) []dto.StockDTO {
	out := make([]dto.StockDTO, 0, len(list))
	for _, s := range list {
		out = append(out, *StockToDTO(s))
	}
	return out
}

// ProductoToResponse mapea un producto a su salida HTTP.
func ProductoToResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{ID: p.ID, Nombre: p.Nombre}
}

func int64Ptr(v int64) *int64 { return &v }
