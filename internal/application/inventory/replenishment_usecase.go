package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// idealFactor stock ideal = min_stock × 1.5.
const idealFactor = 1.5

// Replenishment devuelve las categorías en estado Low con la cantidad sugerida a reponer,
// ordenadas por déficit relativo (la más lejos de su mínimo primero).
func (uc *InventoryUseCase) Replenishment(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	var items []entity.InventoryItem
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		var err error
		items, err = repo.Inventory(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, item := range items {
		if item.ComputeStatus() != entity.StockLow {
			continue
		}
		ideal := item.MinStock * idealFactor
		suggested := ideal - item.QuantityKg
		if suggested < 0 {
			suggested = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			Category:     item.Category,
			QuantityKg:   item.QuantityKg,
			MinStock:     item.MinStock,
			IdealStockKg: ideal,
			SuggestedKg:  suggested,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return coverage(suggestions[i]) < coverage(suggestions[j])
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

// coverage fracción del mínimo cubierta por el stock actual.
func coverage(s dto.ReplenishmentSuggestionDTO) float64 {
	if s.MinStock <= 0 {
		return 1
	}
	return s.QuantityKg / s.MinStock
}
