package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidRole  = errors.New("rol inválido")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrOutOfStock   = errors.New("activo sin unidades disponibles")
	ErrPendingLimit = errors.New("límite de solicitudes pendientes alcanzado")
	ErrNotApproved  = errors.New("la solicitud no está aprobada")
)
