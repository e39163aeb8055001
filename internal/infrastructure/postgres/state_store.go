package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

var _ repository.StateStore = (*StateStore)(nil)

// StateStore almacén clave-valor del snapshot de compensación: una fila JSONB
// por (negocio, ciclo). El valor se reemplaza completo en cada guardado.
type StateStore struct {
	q Querier
}

// NewStateStore construye el adaptador.
func NewStateStore(q Querier) *StateStore {
	return &StateStore{q: q}
}

// Load devuelve el payload guardado, o (nil, nil) si la clave no existe.
func (s *StateStore) Load(ctx context.Context, businessID, cycleKey string) ([]byte, error) {
	query := `SELECT payload FROM clearing_state WHERE business_id = $1 AND cycle_key = $2`
	var payload []byte
	err := s.q.QueryRow(ctx, query, businessID, cycleKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load clearing state: %w", err)
	}
	return payload, nil
}

// Save reemplaza el payload de la clave (upsert).
func (s *StateStore) Save(ctx context.Context, businessID, cycleKey string, payload []byte) error {
	query := `
		INSERT INTO clearing_state (business_id, cycle_key, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_id, cycle_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	_, err := s.q.Exec(ctx, query, businessID, cycleKey, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save clearing state: %w", err)
	}
	return nil
}
