package dto

import "github.com/jhoicas/freight-api/internal/domain/entity"

// InventorySummary totales del inventario.
type InventorySummary struct {
	TotalKg       float64  `json:"total_kg"`
	OKCount       int      `json:"ok_count"`
	LowCount      int      `json:"low_count"`
	LowCategories []string `json:"low_categories"`
}

// InventoryResponse ítems con estado recalculado y resumen.
type InventoryResponse struct {
	Items   []entity.InventoryItem `json:"items"`
	Summary InventorySummary       `json:"summary"`
}

// RestockRequest body para POST /api/inventory/restock.
type RestockRequest struct {
	Category   string  `json:"category"`
	QuantityKg float64 `json:"quantity_kg"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para una categoría en estado Low.
type ReplenishmentSuggestionDTO struct {
	Category     string  `json:"category"`
	QuantityKg   float64 `json:"quantity_kg"`
	MinStock     float64 `json:"min_stock"`
	IdealStockKg float64 `json:"ideal_stock_kg"` // MinStock * 1.5
	SuggestedKg  float64 `json:"suggested_kg"`   // IdealStockKg - QuantityKg
	Priority     int     `json:"priority"`       // 1 = más urgente
}
