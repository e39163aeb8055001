package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compensa-api/internal/domain"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo adaptador PostgreSQL del feed de facturas (usable con pool o tx).
//
// La tabla guarda la acción de cada lado (from_action / to_action); el
// repositorio orienta las filas al negocio consultante: UserAction es la
// acción de ese negocio y SupplierAction la de la contraparte.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta una factura (feed externo / seed del prototipo).
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	query := `
		INSERT INTO invoices (id, from_business, to_business, amount, currency, description, due_date, from_action, to_action, matched, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.From, inv.To, inv.Amount, inv.Currency, inv.Description,
		inv.DueDate, entity.ActionNone, entity.ActionNone, inv.Matched, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ListByBusiness devuelve las facturas donde el negocio es emisor o receptor,
// con las acciones orientadas a ese negocio.
func (r *InvoiceRepo) ListByBusiness(ctx context.Context, businessID string) ([]entity.Invoice, error) {
	query := `
		SELECT id, from_business, to_business, amount, currency, description, due_date,
		       from_action, to_action, matched, created_at, updated_at
		FROM invoices
		WHERE from_business = $1 OR to_business = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var fromAction, toAction string
		if err := rows.Scan(
			&inv.ID, &inv.From, &inv.To, &inv.Amount, &inv.Currency, &inv.Description,
			&inv.DueDate, &fromAction, &toAction, &inv.Matched, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if inv.From == businessID {
			inv.UserAction, inv.SupplierAction = fromAction, toAction
		} else {
			inv.UserAction, inv.SupplierAction = toAction, fromAction
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return out, nil
}

// SetUserAction fija la acción del lado del negocio sobre la factura.
// Devuelve domain.ErrNotFound si la factura no existe o no le pertenece.
func (r *InvoiceRepo) SetUserAction(ctx context.Context, businessID, invoiceID, action string) error {
	query := `
		UPDATE invoices
		SET from_action = CASE WHEN from_business = $1 THEN $3 ELSE from_action END,
		    to_action   = CASE WHEN to_business   = $1 THEN $3 ELSE to_action   END,
		    updated_at  = $4
		WHERE id = $2 AND (from_business = $1 OR to_business = $1)`
	tag, err := r.q.Exec(ctx, query, businessID, invoiceID, action, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update invoice action: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
