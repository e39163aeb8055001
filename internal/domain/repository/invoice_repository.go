package repository

import (
	"context"

	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=invoice_repository.go

// InvoiceRepository puerto de lectura del feed de facturas y de las acciones
// de doble tick. Las facturas se devuelven orientadas al negocio consultante:
// UserAction es la acción de ese negocio y SupplierAction la de su contraparte.
type InvoiceRepository interface {
	// ListByBusiness devuelve todas las facturas donde el negocio es emisor o receptor.
	ListByBusiness(ctx context.Context, businessID string) ([]entity.Invoice, error)
	// SetUserAction fija la acción del negocio sobre la factura.
	// Devuelve domain.ErrNotFound si la factura no existe o no pertenece al negocio.
	SetUserAction(ctx context.Context, businessID, invoiceID, action string) error
}
