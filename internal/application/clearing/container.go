package clearing

import (
	"context"
	"sync"
	"time"

	domclearing "github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
	"github.com/jhoicas/Compensa-api/pkg/logger"
)

// Container mantiene en memoria el estado de compensación por
// (negocio, ciclo) y lo respalda en el StateStore.
//
// La memoria es la fuente de verdad de la sesión: el guardado es
// fire-and-forget tras cada mutación; un fallo de persistencia se registra y
// nunca se propaga ni revierte el estado. Un actor lógico por negocio: el
// mutex serializa todas las transiciones.
type Container struct {
	store repository.StateStore
	log   *logger.Logger

	mu     sync.Mutex
	states map[string]*domclearing.State

	saves sync.WaitGroup
}

// NewContainer construye el contenedor.
func NewContainer(store repository.StateStore, log *logger.Logger) *Container {
	return &Container{
		store:  store,
		log:    log,
		states: make(map[string]*domclearing.State),
	}
}

// Mutate ejecuta fn sobre el estado de la clave bajo el mutex y, si fn no
// falla, dispara el guardado asíncrono del snapshot. Si fn devuelve error no
// se persiste nada: el estado queda tal como fn lo dejó (las transiciones de
// dominio no hacen escrituras parciales).
func (c *Container) Mutate(ctx context.Context, businessID, cycleKey string, fn func(*domclearing.State) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.stateLocked(ctx, businessID, cycleKey)
	if err := fn(st); err != nil {
		return err
	}
	c.persistLocked(businessID, cycleKey, st)
	return nil
}

// View ejecuta fn de solo lectura sobre el estado bajo el mutex, sin disparar
// persistencia. fn puede reconciliar (idempotente); el resultado se rederiva
// igual en el próximo arranque.
func (c *Container) View(ctx context.Context, businessID, cycleKey string, fn func(*domclearing.State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.stateLocked(ctx, businessID, cycleKey))
}

// Wait espera los guardados en vuelo (apagado ordenado y tests).
func (c *Container) Wait() {
	c.saves.Wait()
}

func (c *Container) stateLocked(ctx context.Context, businessID, cycleKey string) *domclearing.State {
	key := businessID + "|" + cycleKey
	if st, ok := c.states[key]; ok {
		return st
	}

	st := c.loadState(ctx, businessID, cycleKey)
	c.states[key] = st
	return st
}

// loadState restaura el snapshot guardado. Ausencia o datos corruptos caen a
// un estado fresco (defaults de reconciliación), nunca a un crash.
func (c *Container) loadState(ctx context.Context, businessID, cycleKey string) *domclearing.State {
	payload, err := c.store.Load(ctx, businessID, cycleKey)
	if err != nil {
		c.log.Error().Err(err).Str("business_id", businessID).Str("cycle", cycleKey).
			Msg("cargar estado de compensación: usando estado fresco")
		return domclearing.NewState()
	}
	if payload == nil {
		return domclearing.NewState()
	}
	st, err := domclearing.DecodeState(payload)
	if err != nil {
		c.log.Error().Err(err).Str("business_id", businessID).Str("cycle", cycleKey).
			Msg("snapshot corrupto: usando estado fresco")
		return domclearing.NewState()
	}
	return st
}

func (c *Container) persistLocked(businessID, cycleKey string, st *domclearing.State) {
	payload, err := domclearing.EncodeState(st)
	if err != nil {
		c.log.Err(err, "serializar estado de compensación")
		return
	}

	c.saves.Add(1)
	go func() {
		defer c.saves.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.store.Save(ctx, businessID, cycleKey, payload); err != nil {
			c.log.Error().Err(err).Str("business_id", businessID).Str("cycle", cycleKey).
				Msg("persistir estado de compensación")
		}
	}()
}
