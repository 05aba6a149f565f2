package entity

import "math"

// Estados de stock de un ítem de inventario.
const (
	StockOK  = "OK"
	StockLow = "Low"
)

// InventoryItem stock disponible (kg) por categoría de producto.
type InventoryItem struct {
	Category   string  `json:"category"`
	QuantityKg float64 `json:"quantity_kg"`
	MinStock   float64 `json:"min_stock"`
	Status     string  `json:"status"`
}

// ComputeStatus Low cuando quantity_kg <= min_stock; valores no finitos cuentan como 0.
func (i *InventoryItem) ComputeStatus() string {
	qty, minStock := finiteOrZero(i.QuantityKg), finiteOrZero(i.MinStock)
	if qty <= minStock {
		return StockLow
	}
	return StockOK
}

// Adjust suma delta (negativo para descontar) con piso 0 y recalcula el estado.
func (i *InventoryItem) Adjust(delta float64) {
	i.QuantityKg = math.Max(0, finiteOrZero(i.QuantityKg)+delta)
	i.Status = i.ComputeStatus()
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
