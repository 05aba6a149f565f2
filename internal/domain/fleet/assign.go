package fleet

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// Request selección del operador: envío y vehículo. Kind vacío se infiere del ID en la flota.
type Request struct {
	ShipmentID string
	Kind       entity.VehicleKind
	VehicleID  entity.VehicleID
}

// Outcome resultado de una asignación válida.
type Outcome struct {
	Shipment    entity.Shipment
	Fleet       entity.Fleet
	Kind        entity.VehicleKind
	Vehicle     entity.Vehicle
	Expense     decimal.Decimal
	LedgerDelta decimal.Decimal // expense - fleet_total_expense previo
}

// Assigner aplica la regla de ruteo y las precondiciones de asignación.
type Assigner struct {
	router Router
}

// NewAssigner crea el motor de asignación.
func NewAssigner(router Router) *Assigner {
	return &Assigner{router: router}
}

// Router devuelve el Router configurado.
func (a *Assigner) Router() Router { return a.router }

// Check valida las precondiciones sin mutar nada y devuelve el envío, el tipo y el vehículo resueltos.
// Orden: envío seleccionado, envío existente, distancia > 0, tipo acorde a la ruta, vehículo existente, vehículo Idle.
func (a *Assigner) Check(req Request, shipments []entity.Shipment, fleet entity.Fleet) (int, entity.VehicleKind, *entity.Vehicle, error) {
	id := strings.TrimSpace(req.ShipmentID)
	if id == "" {
		return -1, "", nil, domain.ErrNoShipmentSelected
	}
	idx := -1
	for i := range shipments {
		if shipments[i].ShipmentID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1, "", nil, domain.ErrShipmentNotFound
	}
	s := shipments[idx]
	if !(s.DistanceKm > 0) {
		return -1, "", nil, domain.ErrDistanceUndefined
	}

	kind := req.Kind
	if kind == "" {
		located, v := fleet.Locate(req.VehicleID)
		if v == nil {
			return -1, "", nil, domain.ErrVehicleNotFound
		}
		kind = located
	}
	if kind != a.router.RequiredKind(s.Destination) {
		return -1, "", nil, domain.ErrWrongVehicleType
	}

	v := fleet.Find(kind, req.VehicleID)
	if v == nil {
		return -1, "", nil, domain.ErrVehicleNotFound
	}
	if !v.IsIdle() {
		return -1, "", nil, domain.ErrVehicleBusy
	}
	return idx, kind, v, nil
}

// Estimate gasto que tendría la asignación, con las mismas precondiciones de Assign.
func (a *Assigner) Estimate(req Request, shipments []entity.Shipment, fleet entity.Fleet) (decimal.Decimal, error) {
	idx, kind, v, err := a.Check(req, shipments, fleet)
	if err != nil {
		return decimal.Zero, err
	}
	return ComputeExpense(v, kind, shipments[idx].DistanceKm), nil
}

// Assign vincula el vehículo al envío. No muta las entradas: devuelve copias actualizadas.
// Si alguna precondición falla no hay resultado parcial.
func (a *Assigner) Assign(req Request, shipments []entity.Shipment, fleet entity.Fleet) (Outcome, error) {
	idx, kind, _, err := a.Check(req, shipments, fleet)
	if err != nil {
		return Outcome{}, err
	}

	updatedFleet := fleet.Clone()
	v := updatedFleet.Find(kind, req.VehicleID)
	s := shipments[idx]

	expense := ComputeExpense(v, kind, s.DistanceKm)
	delta := expense.Sub(s.PreviousFleetExpense())

	vid := string(v.ID)
	paid := decimal.NewNullDecimal(expense)
	cleared := decimal.NewNullDecimal(decimal.Zero)
	switch kind {
	case entity.KindTruck:
		s.TruckID, s.TruckName, s.TruckExpense = &vid, v.Name, paid
		s.ShipID, s.ShipName, s.ShipExpense = nil, "", cleared
	case entity.KindShip:
		s.ShipID, s.ShipName, s.ShipExpense = &vid, v.Name, paid
		s.TruckID, s.TruckName, s.TruckExpense = nil, "", cleared
	}
	s.FleetTotalExpense = paid
	s.TransportMode = ModeFor(kind)
	// el estado solo avanza: un envío ya en tránsito conserva su estado al reasignar
	if s.IsPending() {
		s.Status = entity.StatusReadyForTransport
	}

	v.Status = entity.VehicleInTransit

	return Outcome{
		Shipment:    s,
		Fleet:       updatedFleet,
		Kind:        kind,
		Vehicle:     *v,
		Expense:     expense,
		LedgerDelta: delta,
	}, nil
}
