package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatus estado del ciclo de vida de un envío.
type ShipmentStatus string

// Estados de un envío; solo avanzan hacia adelante (salvo el reinicio explícito).
const (
	StatusPending           ShipmentStatus = "Pending"
	StatusReadyForTransport ShipmentStatus = "Ready for Transport"
	StatusInTransit         ShipmentStatus = "In Transit"
	StatusDelivered         ShipmentStatus = "Delivered"
)

var statusRank = map[ShipmentStatus]int{
	StatusPending:           0,
	StatusReadyForTransport: 1,
	StatusInTransit:         2,
	StatusDelivered:         3,
}

// ParseShipmentStatus normaliza un estado escrito con cualquier capitalización.
// Vacío equivale a Pending.
func ParseShipmentStatus(s string) (ShipmentStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, true
	}
	for st := range statusRank {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// Rank posición del estado en la secuencia; -1 si es desconocido.
func (s ShipmentStatus) Rank() int {
	st, ok := ParseShipmentStatus(string(s))
	if !ok {
		return -1
	}
	return statusRank[st]
}

// CanAdvanceTo indica si next está estrictamente por delante de s.
func (s ShipmentStatus) CanAdvanceTo(next ShipmentStatus) bool {
	from, to := s.Rank(), next.Rank()
	return from >= 0 && to > from
}

// TransportMode modo de transporte elegido al asignar flota.
type TransportMode string

const (
	ModeDomesticTruck     TransportMode = "Domestic-Truck"
	ModeInternationalShip TransportMode = "International-Ship"
)

// Shipment representa una solicitud de envío.
// Price = DistanceKm × tarifa por km del tipo de contenedor, fijada al crear el envío.
type Shipment struct {
	ShipmentID      string          `json:"shipment_id"`
	Destination     string          `json:"destination"` // "Ciudad, CC"
	ProductName     string          `json:"product_name,omitempty"`
	ProductCategory string          `json:"product_category,omitempty"`
	ContainerType   string          `json:"container_type"`
	WeightKg        Kilograms       `json:"weight_kg"`
	DistanceKm      float64         `json:"distance_km"`
	RatePerKm       decimal.Decimal `json:"rate_per_km"`
	Price           decimal.Decimal `json:"price"`
	EtaDays         int             `json:"eta_days,omitempty"`
	Details         string          `json:"details,omitempty"`
	Status          ShipmentStatus  `json:"status"`

	TruckID           *string             `json:"truck_id"`
	TruckName         string              `json:"truck_name,omitempty"`
	TruckExpense      decimal.NullDecimal `json:"truck_expense"`
	ShipID            *string             `json:"ship_id"`
	ShipName          string              `json:"ship_name,omitempty"`
	ShipExpense       decimal.NullDecimal `json:"ship_expense"`
	FleetTotalExpense decimal.NullDecimal `json:"fleet_total_expense"`
	TransportMode     TransportMode       `json:"transport_mode,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsPending compara el estado sin distinguir mayúsculas; vacío cuenta como Pending.
func (s *Shipment) IsPending() bool {
	st, ok := ParseShipmentStatus(string(s.Status))
	return ok && st == StatusPending
}

// HasVehicle indica si el envío ya tiene un camión o un barco asignado.
func (s *Shipment) HasVehicle() bool {
	return (s.TruckID != nil && *s.TruckID != "") || (s.ShipID != nil && *s.ShipID != "")
}

// PreviousFleetExpense gasto de flota ya contabilizado para este envío (0 si no hay).
func (s *Shipment) PreviousFleetExpense() decimal.Decimal {
	if !s.FleetTotalExpense.Valid {
		return decimal.Zero
	}
	return s.FleetTotalExpense.Decimal
}
