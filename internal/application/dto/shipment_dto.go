package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// ShipmentRequest body para POST /api/shipments y POST /api/shipments/quote.
type ShipmentRequest struct {
	Destination     string  `json:"destination"`
	ProductName     string  `json:"product_name"`
	ProductCategory string  `json:"product_category"`
	ContainerType   string  `json:"container_type"`
	WeightKg        float64 `json:"weight_kg"`
	Details         string  `json:"details,omitempty"`
}

// QuoteResponse precio, ETA y advertencia de capacidad para un envío sin crearlo.
type QuoteResponse struct {
	Destination   string               `json:"destination"`
	DistanceKm    float64              `json:"distance_km"`
	ContainerType string               `json:"container_type"`
	CapacityKg    float64              `json:"capacity_kg"`
	RatePerKm     decimal.Decimal      `json:"rate_per_km"`
	Price         decimal.Decimal      `json:"price"`
	EtaDays       int                  `json:"eta_days"`
	TransportMode entity.TransportMode `json:"transport_mode"`
	Warning       string               `json:"warning,omitempty"`
}

// ShipmentListResponse listado paginado de envíos.
type ShipmentListResponse struct {
	Items []entity.Shipment `json:"items"`
	Page  PageResponse      `json:"page"`
}

// TrackResponse estado de un envío y su paso en la línea de tiempo.
type TrackResponse struct {
	Shipment    entity.Shipment `json:"shipment"`
	Step        int             `json:"step"` // índice en Steps
	Steps       []string        `json:"steps"`
	ContainerID string          `json:"container_id,omitempty"`
}

// UpdateStatusRequest body para PATCH /api/shipments/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
