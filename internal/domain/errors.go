package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrUnknownRole      = errors.New("rol desconocido")
	ErrUnknownKPI       = errors.New("KPI desconocido")
	ErrPredictionFailed = errors.New("error de predicción")
)
