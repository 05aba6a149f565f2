package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// AssignRequest body para POST /api/fleet/assignments y POST /api/fleet/estimate.
// VehicleType es opcional ("truck" | "ship"); si falta se deduce del ID.
type AssignRequest struct {
	ShipmentID  string `json:"shipment_id"`
	VehicleType string `json:"vehicle_type,omitempty"`
	VehicleID   string `json:"vehicle_id"`
}

// AssignResponse resultado de una asignación.
type AssignResponse struct {
	Shipment   entity.Shipment   `json:"shipment"`
	Vehicle    entity.Vehicle    `json:"vehicle"`
	Expense    decimal.Decimal   `json:"expense"`
	Financials entity.Financials `json:"financials"`
}

// EstimateResponse vista previa del gasto de una asignación.
type EstimateResponse struct {
	ShipmentID    string               `json:"shipment_id"`
	VehicleType   string               `json:"vehicle_type"`
	VehicleID     string               `json:"vehicle_id"`
	DistanceKm    float64              `json:"distance_km"`
	TransportMode entity.TransportMode `json:"transport_mode"`
	Expense       decimal.Decimal      `json:"expense"`
}

// AvailableVehiclesResponse vehículos Idle por tipo.
type AvailableVehiclesResponse struct {
	Trucks []entity.Vehicle `json:"trucks"`
	Ships  []entity.Vehicle `json:"ships"`
}

// AssignmentDTO fila de la tabla de asignaciones.
type AssignmentDTO struct {
	ShipmentID        string                `json:"shipment_id"`
	Destination       string                `json:"destination"`
	Status            entity.ShipmentStatus `json:"status"`
	TransportMode     entity.TransportMode  `json:"transport_mode"`
	VehicleType       string                `json:"vehicle_type"`
	VehicleID         string                `json:"vehicle_id"`
	VehicleName       string                `json:"vehicle_name"`
	VehicleStatus     entity.VehicleStatus  `json:"vehicle_status,omitempty"`
	FleetTotalExpense decimal.Decimal       `json:"fleet_total_expense"`
}
