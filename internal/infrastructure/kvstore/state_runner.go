package kvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// StateRunner ejecuta callbacks sobre el estado persistido de forma atómica:
// un solo callback a la vez, escrituras en buffer y un único SetMany si fn termina sin error.
type StateRunner struct {
	mu      sync.Mutex
	store   repository.KeyValueStore
	log     zerolog.Logger
	taxRate decimal.Decimal
}

// NewStateRunner construye el runner. taxRate cero usa entity.DefaultTaxRate.
func NewStateRunner(store repository.KeyValueStore, log zerolog.Logger, taxRate decimal.Decimal) *StateRunner {
	if taxRate.IsZero() {
		taxRate = entity.DefaultTaxRate
	}
	return &StateRunner{store: store, log: log, taxRate: taxRate}
}

// Run ejecuta fn con un repositorio atado a esta ejecución y hace flush o descarta.
func (r *StateRunner) Run(ctx context.Context, fn func(repo repository.StateRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := newBufferedState(r.store, r.log, r.taxRate)
	if err := fn(state); err != nil {
		return err
	}
	if len(state.pending) == 0 {
		return nil
	}
	if err := r.store.SetMany(ctx, state.pending); err != nil {
		return fmt.Errorf("persistir estado: %w", err)
	}
	return nil
}

// Exclusive ejecuta fn con acceso exclusivo al almacén crudo (reinicio total y sembrado).
func (r *StateRunner) Exclusive(ctx context.Context, fn func(ctx context.Context, store repository.KeyValueStore) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx, r.store)
}
