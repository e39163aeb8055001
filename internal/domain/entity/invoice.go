package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones de cada parte sobre una factura (modelo de doble tick).
// Cada parte marca su acción de forma independiente; la factura solo
// entra a compensación cuando ambas están en Submitted dentro del ciclo.
const (
	ActionNone      = "none"      // sin acción
	ActionSubmitted = "submitted" // marcada para compensación
	ActionRejected  = "rejected"  // rechazada por la parte
)

// Dirección de la factura relativa al negocio autenticado.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Invoice representa una factura entre dos negocios.
// Los campos estáticos son inmutables tras la creación; solo las acciones
// de cada parte mutan, y únicamente a través del ledger.
type Invoice struct {
	ID             string
	From           string // ID del negocio emisor
	To             string // ID del negocio receptor
	Amount         decimal.Decimal
	Currency       string // código ISO 4217
	Description    string
	DueDate        *time.Time
	UserAction     string // acción del negocio local
	SupplierAction string // acción de la contraparte
	Matched        bool   // false = contraparte no es miembro del sistema
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Direction devuelve sent si el negocio indicado es el emisor, received si no.
func (i *Invoice) Direction(businessID string) string {
	if i.From == businessID {
		return DirectionSent
	}
	return DirectionReceived
}

// BothSubmitted indica si ambas partes marcaron la factura para compensación.
// La propiedad es conmutativa: el orden en que cada parte marcó no importa.
func (i *Invoice) BothSubmitted() bool {
	return i.UserAction == ActionSubmitted && i.SupplierAction == ActionSubmitted
}
