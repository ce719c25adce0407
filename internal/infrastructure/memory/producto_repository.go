package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo ProductoRepository en memoria.
type ProductoRepo struct {
	store *Store
}

// Create asigna ID y guarda el producto.
func (r *ProductoRepo) Create(ctx context.Context, producto *entity.Producto) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextProductoID++
	producto.ID = r.store.nextProductoID
	r.store.productos[producto.ID] = producto.Nombre
	return nil
}

// Rename cambia el nombre de un producto existente. No es parte del puerto: lo usan los
// tests que verifican que productoNombre se resuelve con el nombre vigente al leer.
func (r *ProductoRepo) Rename(ctx context.Context, id int64, nombre string) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.productos[id]; !ok {
		return false
	}
	r.store.productos[id] = nombre
	return true
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	nombre, ok := r.store.productos[id]
	if !ok {
		return nil, nil
	}
	return &entity.Producto{ID: id, Nombre: nombre}, nil
}

// List lista productos por ID con paginación.
func (r *ProductoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Producto, error) {
	r.store.mu.RLock()
	ids := make([]int64, 0, len(r.store.productos))
	for id := range r.store.productos {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	list := []*entity.Producto{}
	for i, id := range ids {
		if i < offset || len(list) >= limit {
			continue
		}
		list = append(list, &entity.Producto{ID: id, Nombre: r.store.productos[id]})
	}
	r.store.mu.RUnlock()
	return list, nil
}
