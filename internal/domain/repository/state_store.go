package repository

import "context"

//go:generate mockgen -destination=mocks/mock_state_store.go -package=mocks -source=state_store.go

// StateStore puerto clave-valor donde se persiste el snapshot JSON del estado
// de compensación, bajo la clave (negocio, ciclo). Colaborador externo: la
// fuente de verdad de la sesión es la memoria; fallos de guardado se registran
// y nunca se propagan ni revierten el estado.
type StateStore interface {
	// Load devuelve el payload guardado, o (nil, nil) si no hay estado para la clave.
	Load(ctx context.Context, businessID, cycleKey string) ([]byte, error)
	// Save reemplaza el payload de la clave.
	Save(ctx context.Context, businessID, cycleKey string, payload []byte) error
}
