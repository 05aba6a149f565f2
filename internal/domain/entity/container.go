package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Container agrupa envíos con el mismo destino y tipo de contenedor.
// Inmutable una vez calculado TransportCost: nunca se divide ni se fusiona.
type Container struct {
	ContainerID   string          `json:"container_id"`
	Destination   string          `json:"destination"`
	ContainerType string          `json:"container_type"`
	CapacityKg    float64         `json:"capacity_kg"`
	UsedKg        float64         `json:"used_kg"`      // suma de pesos empacados, <= CapacityKg
	RemainingKg   float64         `json:"remaining_kg"` // CapacityKg - UsedKg
	ShipmentIDs   []string        `json:"shipment_ids"` // orden de empaque
	DistanceKm    float64         `json:"distance_km"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	Status        ShipmentStatus  `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Fits indica si weight cabe en el espacio libre.
func (c *Container) Fits(weight float64) bool {
	return c.UsedKg+weight <= c.CapacityKg
}

// Add suma un envío al contenedor. El llamador valida antes con Fits.
func (c *Container) Add(shipmentID string, weight float64) {
	c.UsedKg += weight
	c.RemainingKg = c.CapacityKg - c.UsedKg
	c.ShipmentIDs = append(c.ShipmentIDs, shipmentID)
}
