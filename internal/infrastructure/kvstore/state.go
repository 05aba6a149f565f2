package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

var _ repository.StateRepository = (*bufferedState)(nil)

// bufferedState vista tipada de una ejecución. Las lecturas ven las escrituras pendientes.
// Una clave leída con registros ilegibles no se puede guardar en la misma ejecución:
// sobrescribirla perdería los datos que no se pudieron decodificar.
type bufferedState struct {
	store      repository.KeyValueStore
	log        zerolog.Logger
	taxRate    decimal.Decimal
	pending    map[string][]byte
	unreadable map[string]bool
}

func newBufferedState(store repository.KeyValueStore, log zerolog.Logger, taxRate decimal.Decimal) *bufferedState {
	return &bufferedState{
		store:      store,
		log:        log,
		taxRate:    taxRate,
		pending:    make(map[string][]byte),
		unreadable: make(map[string]bool),
	}
}

func (s *bufferedState) raw(ctx context.Context, key string) ([]byte, bool, error) {
	if v, ok := s.pending[key]; ok {
		return v, true, nil
	}
	return s.store.Get(ctx, key)
}

// load decodifica la clave en dst. Ausente o JSON corrupto deja dst con su valor por defecto.
func (s *bufferedState) load(ctx context.Context, key string, dst any) error {
	data, found, err := s.raw(ctx, key)
	if err != nil {
		return err
	}
	if !found || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("dato corrupto en el almacén, se usa el valor por defecto")
		s.unreadable[key] = true
		return errCorrupt
	}
	return nil
}

var errCorrupt = errors.New("dato corrupto")

// loadList decodifica una colección registro a registro y omite los ilegibles.
func loadList[T any](ctx context.Context, s *bufferedState, key string) ([]T, error) {
	data, found, err := s.raw(ctx, key)
	if err != nil {
		return []T{}, err
	}
	if !found || len(data) == 0 {
		return []T{}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("colección corrupta en el almacén, se usa una lista vacía")
		s.unreadable[key] = true
		return []T{}, nil
	}
	out := make([]T, 0, len(records))
	for i, rec := range records {
		var v T
		if err := json.Unmarshal(rec, &v); err != nil {
			s.log.Warn().Err(err).Str("key", key).Int("index", i).Msg("registro ilegible omitido")
			s.unreadable[key] = true
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *bufferedState) save(key string, v any) error {
	if s.unreadable[key] {
		return fmt.Errorf("%w: %s", domain.ErrCorruptState, key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	s.pending[key] = data
	return nil
}

// loadOr carga en dst y, si el dato está corrupto, restaura fallback.
func loadOr[T any](ctx context.Context, s *bufferedState, key string, fallback T) (T, error) {
	var v T
	err := s.load(ctx, key, &v)
	switch {
	case errors.Is(err, errCorrupt):
		return fallback, nil
	case err != nil:
		return fallback, err
	}
	return v, nil
}

func (s *bufferedState) Meta(ctx context.Context) (json.RawMessage, bool, error) {
	data, found, err := s.raw(ctx, repository.KeyMeta)
	if err != nil || !found {
		return nil, false, err
	}
	return json.RawMessage(data), true, nil
}

func (s *bufferedState) Routes(ctx context.Context) (entity.RouteTable, error) {
	v, err := loadOr(ctx, s, repository.KeyRoutes, entity.RouteTable{})
	if v == nil {
		v = entity.RouteTable{}
	}
	return v, err
}

func (s *bufferedState) Rates(ctx context.Context) (entity.RateTable, error) {
	v, err := loadOr(ctx, s, repository.KeyRates, entity.RateTable{})
	if v == nil {
		v = entity.RateTable{}
	}
	return v, err
}

func (s *bufferedState) Shipments(ctx context.Context) ([]entity.Shipment, error) {
	return loadList[entity.Shipment](ctx, s, repository.KeyShipments)
}

func (s *bufferedState) SaveShipments(_ context.Context, shipments []entity.Shipment) error {
	if shipments == nil {
		shipments = []entity.Shipment{}
	}
	return s.save(repository.KeyShipments, shipments)
}

func (s *bufferedState) Containers(ctx context.Context) ([]entity.Container, error) {
	return loadList[entity.Container](ctx, s, repository.KeyContainers)
}

func (s *bufferedState) SaveContainers(_ context.Context, containers []entity.Container) error {
	if containers == nil {
		containers = []entity.Container{}
	}
	return s.save(repository.KeyContainers, containers)
}

func (s *bufferedState) Fleet(ctx context.Context) (entity.Fleet, error) {
	v, err := loadOr(ctx, s, repository.KeyFleet, entity.Fleet{})
	if v.Ships == nil {
		v.Ships = []entity.Vehicle{}
	}
	if v.Trucks == nil {
		v.Trucks = []entity.Vehicle{}
	}
	return v, err
}

func (s *bufferedState) SaveFleet(_ context.Context, fleet entity.Fleet) error {
	return s.save(repository.KeyFleet, fleet)
}

func (s *bufferedState) Inventory(ctx context.Context) ([]entity.InventoryItem, error) {
	return loadList[entity.InventoryItem](ctx, s, repository.KeyInventory)
}

func (s *bufferedState) SaveInventory(_ context.Context, items []entity.InventoryItem) error {
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return s.save(repository.KeyInventory, items)
}

// Financials el libro con tasa por defecto si la clave falta o está corrupta.
func (s *bufferedState) Financials(ctx context.Context) (entity.Financials, error) {
	fallback := entity.NewFinancials(s.taxRate)
	v, err := loadOr(ctx, s, repository.KeyFinancials, fallback)
	if err != nil {
		return fallback, err
	}
	if v.TaxRate.IsZero() {
		v.TaxRate = s.taxRate
	}
	v.Recompute()
	return v, nil
}

func (s *bufferedState) SaveFinancials(_ context.Context, fin entity.Financials) error {
	fin.Recompute()
	return s.save(repository.KeyFinancials, fin)
}
