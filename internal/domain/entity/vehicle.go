package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// VehicleKind tipo de activo de la flota.
type VehicleKind string

const (
	KindTruck VehicleKind = "truck"
	KindShip  VehicleKind = "ship"
)

// ParseVehicleKind acepta "truck"/"ship" sin distinguir mayúsculas.
func ParseVehicleKind(s string) (VehicleKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindTruck):
		return KindTruck, true
	case string(KindShip):
		return KindShip, true
	}
	return "", false
}

// VehicleStatus disponibilidad del vehículo.
type VehicleStatus string

const (
	VehicleIdle      VehicleStatus = "Idle"
	VehicleInTransit VehicleStatus = "In Transit"
)

// VehicleID identificador de vehículo; los fixtures pueden traerlo como número o como texto.
type VehicleID string

// UnmarshalJSON acepta "T-01" o 7.
func (id *VehicleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = VehicleID(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = VehicleID(n.String())
	return nil
}

// Vehicle camión o barco con sus parámetros de costo.
// Los camiones usan DriverCost y los barcos CrewCost.
type Vehicle struct {
	ID          VehicleID       `json:"id"`
	Name        string          `json:"name"`
	Status      VehicleStatus   `json:"status"`
	FuelPerKm   decimal.Decimal `json:"fuel_per_km"`
	DriverCost  decimal.Decimal `json:"driver_cost,omitempty"`
	CrewCost    decimal.Decimal `json:"crew_cost,omitempty"`
	Maintenance decimal.Decimal `json:"maintenance"`
	CapacityKg  float64         `json:"capacity_kg,omitempty"`
}

// IsIdle estado vacío cuenta como Idle.
func (v *Vehicle) IsIdle() bool {
	return v.Status == "" || v.Status == VehicleIdle
}

// OperatorCost costo fijo de tripulación según el tipo de vehículo.
func (v *Vehicle) OperatorCost(kind VehicleKind) decimal.Decimal {
	if kind == KindShip {
		return v.CrewCost
	}
	return v.DriverCost
}

// Fleet colección de vehículos tal como se persiste: {"ships": [...], "trucks": [...]}.
type Fleet struct {
	Ships  []Vehicle `json:"ships"`
	Trucks []Vehicle `json:"trucks"`
}

func (f *Fleet) list(kind VehicleKind) []Vehicle {
	if kind == KindShip {
		return f.Ships
	}
	return f.Trucks
}

// Find busca un vehículo por tipo e ID. Devuelve nil si no existe.
func (f *Fleet) Find(kind VehicleKind, id VehicleID) *Vehicle {
	list := f.list(kind)
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// Locate busca el ID en ambas listas (primero camiones).
func (f *Fleet) Locate(id VehicleID) (VehicleKind, *Vehicle) {
	if v := f.Find(KindTruck, id); v != nil {
		return KindTruck, v
	}
	if v := f.Find(KindShip, id); v != nil {
		return KindShip, v
	}
	return "", nil
}

// Idle vehículos disponibles del tipo indicado, en orden de registro.
func (f *Fleet) Idle(kind VehicleKind) []Vehicle {
	out := make([]Vehicle, 0)
	for _, v := range f.list(kind) {
		if v.IsIdle() {
			out = append(out, v)
		}
	}
	return out
}

// PrimaryShip primer barco registrado, nil si la flota no tiene barcos.
func (f *Fleet) PrimaryShip() *Vehicle {
	if len(f.Ships) == 0 {
		return nil
	}
	return &f.Ships[0]
}

// Clone copia profunda de las listas para mutar sin afectar el original.
func (f Fleet) Clone() Fleet {
	out := Fleet{
		Ships:  make([]Vehicle, len(f.Ships)),
		Trucks: make([]Vehicle, len(f.Trucks)),
	}
	copy(out.Ships, f.Ships)
	copy(out.Trucks, f.Trucks)
	return out
}
