package clearing

import "github.com/jhoicas/Compensa-api/internal/domain/entity"

// Eligible filtra las facturas candidatas a compensación: solo las que tienen
// contraparte miembro del sistema (matched). Pura y estable respecto al orden
// de entrada; el consumidor puede reordenar.
func Eligible(invoices []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Matched {
			out = append(out, inv)
		}
	}
	return out
}

// EligibleIDs ids de las facturas elegibles, en el mismo orden.
func EligibleIDs(invoices []entity.Invoice) []string {
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Matched {
			ids = append(ids, inv.ID)
		}
	}
	return ids
}
