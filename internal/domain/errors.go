package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrIDAlreadySet     = errors.New("un recurso nuevo no puede tener id")
	ErrIDRequired       = errors.New("id requerido")
	ErrInvalidReference = errors.New("referencia a recurso inexistente")
)
