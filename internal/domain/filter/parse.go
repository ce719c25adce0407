package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-stock/internal/domain"
)

// Nombres de operador tal como llegan en el query string.
const (
	opEquals             = "equals"
	opNotEquals          = "notEquals"
	opIn                 = "in"
	opNotIn              = "notIn"
	opSpecified          = "specified"
	opGreaterThan        = "greaterThan"
	opGreaterThanOrEqual = "greaterThanOrEqual"
	opLessThan           = "lessThan"
	opLessThanOrEqual    = "lessThanOrEqual"
)

// ParseError parámetro de filtro con valor no interpretable.
type ParseError struct {
	Param string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filtro %s=%q inválido: %v", e.Param, e.Value, e.Err)
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ParseError) Unwrap() error { return domain.ErrInvalidInput }

// ParseLong lee los parámetros "<name>.<operador>" de values.
// Devuelve nil si ninguno está presente. Operadores desconocidos se ignoran.
func ParseLong(values url.Values, name string) (*LongFilter, error) {
	f := &LongFilter{}
	found := false
	for key, raw := range values {
		field, op, ok := strings.Cut(key, ".")
		if !ok || field != name || len(raw) == 0 {
			continue
		}
		var err error
		switch op {
		case opEquals:
			f.Equals, err = parseInt64Ptr(key, raw[0])
		case opNotEquals:
			f.NotEquals, err = parseInt64Ptr(key, raw[0])
		case opGreaterThan:
			f.GreaterThan, err = parseInt64Ptr(key, raw[0])
		case opGreaterThanOrEqual:
			f.GreaterThanOrEqual, err = parseInt64Ptr(key, raw[0])
		case opLessThan:
			f.LessThan, err = parseInt64Ptr(key, raw[0])
		case opLessThanOrEqual:
			f.LessThanOrEqual, err = parseInt64Ptr(key, raw[0])
		case opIn:
			f.In, err = parseInt64List(key, raw)
		case opNotIn:
			f.NotIn, err = parseInt64List(key, raw)
		case opSpecified:
			var b bool
			b, err = strconv.ParseBool(strings.TrimSpace(raw[0]))
			if err != nil {
				err = &ParseError{Param: key, Value: raw[0], Err: err}
			} else {
				f.Specified = &b
			}
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		found = true
	}
	if !found {
		return nil, nil
	}
	return f, nil
}

func parseInt64Ptr(key, raw string) (*int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, &ParseError{Param: key, Value: raw, Err: err}
	}
	return &n, nil
}

// parseInt64List acepta valores separados por coma y/o parámetros repetidos.
func parseInt64List(key string, raw []string) ([]int64, error) {
	out := []int64{}
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, &ParseError{Param: key, Value: r, Err: err}
			}
			out = append(out, n)
		}
	}
	return out, nil
}
