package packing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// CostProfile calcula el costo de transporte de un contenedor a partir de su distancia.
type CostProfile interface {
	ContainerCost(distanceKm float64) decimal.Decimal
}

// PrimaryShipProfile aplica el perfil de costos del primer barco registrado a todos los
// contenedores, sin importar tipo ni destino del grupo.
type PrimaryShipProfile struct {
	ship *entity.Vehicle
}

// NewPrimaryShipProfile toma el primer barco de la flota; sin barcos el costo es 0.
func NewPrimaryShipProfile(fleet entity.Fleet) PrimaryShipProfile {
	p := PrimaryShipProfile{}
	if s := fleet.PrimaryShip(); s != nil {
		ship := *s
		p.ship = &ship
	}
	return p
}

// ContainerCost = fuel_per_km × distancia + crew_cost + maintenance, redondeado al entero y con piso 0.
func (p PrimaryShipProfile) ContainerCost(distanceKm float64) decimal.Decimal {
	if p.ship == nil {
		return decimal.Zero
	}
	total := p.ship.FuelPerKm.Mul(decimal.NewFromFloat(distanceKm)).
		Add(p.ship.CrewCost).
		Add(p.ship.Maintenance)
	return decimal.Max(decimal.Zero, total.Round(0))
}
