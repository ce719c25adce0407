package http

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/query"
	"github.com/jhoicas/inventario-stock/pkg/config"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderLink       = "Link"
)

// queryValues copia los query params conservando parámetros repetidos (?sort=a&sort=b).
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		values.Add(string(k), string(v))
	})
	return values
}

// parsePageable lee page, size y sort. Sin size se usa el tamaño por defecto (0 = sin paginar);
// size se recorta al máximo configurado.
func parsePageable(values url.Values, limits config.PageConfig) (query.Pageable, error) {
	p := query.Pageable{Size: limits.DefaultSize}
	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return query.Pageable{}, fmt.Errorf("page=%q inválido: %w", raw, domain.ErrInvalidInput)
		}
		p.Page = n
	}
	if raw := values.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return query.Pageable{}, fmt.Errorf("size=%q inválido: %w", raw, domain.ErrInvalidInput)
		}
		p.Size = n
	}
	if limits.MaxSize > 0 && p.Size > limits.MaxSize {
		p.Size = limits.MaxSize
	}
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return query.Pageable{}, fmt.Errorf("page=%d fuera de rango: %w", p.Page, domain.ErrInvalidInput)
	}
	for _, raw := range values["sort"] {
		o, err := query.ParseOrder(raw)
		if err != nil {
			return query.Pageable{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		p.Sort = append(p.Sort, o)
	}
	return p, nil
}

// linkHeader arma el header Link (RFC 5988) con first, prev, next y last.
// Los demás parámetros de la petición (filtros, sort) se conservan.
func linkHeader(base string, values url.Values, p query.Pageable, total int64) string {
	if !p.IsPaged() {
		return ""
	}
	last := 0
	if total > 0 {
		last = int((total - 1) / int64(p.Size))
	}
	link := func(page int, rel string) string {
		v := url.Values{}
		for k, vs := range values {
			v[k] = vs
		}
		v.Set("page", strconv.Itoa(page))
		v.Set("size", strconv.Itoa(p.Size))
		return fmt.Sprintf(`<%s?%s>; rel="%s"`, base, v.Encode(), rel)
	}

	links := []string{}
	if p.Page < last {
		links = append(links, link(p.Page+1, "next"))
	}
	if p.Page > 0 {
		links = append(links, link(min(p.Page-1, last), "prev"))
	}
	links = append(links, link(last, "last"), link(0, "first"))
	return strings.Join(links, ",")
}
