package query

import (
	"fmt"
	"strings"
)

// Direction sentido de ordenamiento.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order criterio de ordenamiento sobre un campo.
type Order struct {
	Field     string
	Direction Direction
}

// Pageable paginación y orden. Size == 0 significa sin paginar.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Unpaged devuelve un Pageable sin límite ni orden explícito.
func Unpaged() Pageable {
	return Pageable{}
}

// IsPaged indica si se debe aplicar LIMIT/OFFSET.
func (p Pageable) IsPaged() bool {
	return p.Size > 0
}

// Offset filas a saltar.
func (p Pageable) Offset() int {
	if !p.IsPaged() || p.Page <= 0 {
		return 0
	}
	return p.Page * p.Size
}

// ParseOrder interpreta "campo" o "campo,asc|desc".
func ParseOrder(raw string) (Order, error) {
	parts := strings.Split(raw, ",")
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return Order{}, fmt.Errorf("sort vacío")
	}
	o := Order{Field: field, Direction: Asc}
	if len(parts) > 1 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "", "asc":
		case "desc":
			o.Direction = Desc
		default:
			return Order{}, fmt.Errorf("dirección de sort inválida: %q", parts[1])
		}
	}
	return o, nil
}
