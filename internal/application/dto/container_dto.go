package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// SkippedShipmentDTO envío pendiente que no se pudo empacar y su motivo.
type SkippedShipmentDTO struct {
	ShipmentID string `json:"shipment_id"`
	Reason     string `json:"reason"`
}

// OptimizeResponse resultado de POST /api/containers/optimize.
type OptimizeResponse struct {
	NoPending       bool                 `json:"no_pending"`
	Message         string               `json:"message"`
	Containers      []entity.Container   `json:"containers"`
	PackedShipments int                  `json:"packed_shipments"`
	Skipped         []SkippedShipmentDTO `json:"skipped"`
	Financials      entity.Financials    `json:"financials"`
}

// ResetContainersResponse resultado de POST /api/containers/reset.
type ResetContainersResponse struct {
	ShipmentsReset    int               `json:"shipments_reset"`
	ContainersRemoved int               `json:"containers_removed"`
	VehiclesUnbound   int               `json:"vehicles_unbound"` // siguen En Tránsito, sin envío
	Financials        entity.Financials `json:"financials"`
	Message           string            `json:"message"`
}

// ContainerListResponse listado de contenedores con totales.
type ContainerListResponse struct {
	Containers []entity.Container `json:"containers"`
	TotalCost  decimal.Decimal    `json:"total_cost"`
	TotalKg    float64            `json:"total_kg"`
}

// ManifestDTO manifiesto XML de carga de un contenedor y su huella canónica.
type ManifestDTO struct {
	ContainerID string `json:"container_id"`
	XML         []byte `json:"-"`
	Digest      string `json:"digest"` // SHA-256 hex de la forma C14N
}
