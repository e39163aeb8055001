package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables localmente: ninguna operación que los devuelve
// deja el estado a medio escribir.
var (
	ErrNotFound         = errors.New("factura no encontrada")
	ErrSystemLocked     = errors.New("exclusión del sistema: no modificable manualmente")
	ErrCutoffPassed     = errors.New("el corte del ciclo ya pasó: solo lectura")
	ErrWithdrawalClosed = errors.New("ventana de retiro cerrada: contactar soporte")
	ErrNothingToSubmit  = errors.New("no hay facturas listas para enviar")
	ErrInvalidReason    = errors.New("motivo de exclusión inválido")
	ErrInvalidInput     = errors.New("entrada inválida")
)
