package fleet

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// ComputeExpense = fuel_per_km × distancia + (driver_cost | crew_cost) + maintenance.
// Vehículo nil o distancia <= 0 devuelve 0: el llamador lo trata como "no calculable".
func ComputeExpense(v *entity.Vehicle, kind entity.VehicleKind, distanceKm float64) decimal.Decimal {
	if v == nil || !(distanceKm > 0) {
		return decimal.Zero
	}
	return v.FuelPerKm.Mul(decimal.NewFromFloat(distanceKm)).
		Add(v.OperatorCost(kind)).
		Add(v.Maintenance)
}
