package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidDate   = errors.New("fecha inválida")
	ErrInvalidStatus = errors.New("estado de venta inválido")
)
