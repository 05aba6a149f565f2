package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// FinancialSummaryResponse libro y totales de las colecciones que lo alimentan.
type FinancialSummaryResponse struct {
	Financials     entity.Financials `json:"financials"`
	ShipmentCount  int               `json:"shipment_count"`
	ContainerCount int               `json:"container_count"`
	ContainerCost  decimal.Decimal   `json:"container_cost"`
	FleetExpense   decimal.Decimal   `json:"fleet_expense"`
	UsedKg         float64           `json:"used_kg"`
}

// FinancialReport datos que se vuelcan en el PDF del reporte financiero.
type FinancialReport struct {
	Title      string
	Summary    FinancialSummaryResponse
	Shipments  []entity.Shipment
	Containers []entity.Container
}

// SystemResetRequest body para POST /api/system/reset.
type SystemResetRequest struct {
	Confirm bool `json:"confirm"`
}
