package inventory

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/repository"
	"github.com/jhoicas/freight-api/pkg/textnorm"
)

// productSuffix el formulario de envíos muestra las categorías como "<categoría> Blueberries".
const productSuffix = "blueberries"

// InventoryUseCase stock por categoría: listado con resumen, reposición y consumo al crear envíos.
type InventoryUseCase struct {
	runner ports.StateRunner
	log    zerolog.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(runner ports.StateRunner, log zerolog.Logger) *InventoryUseCase {
	return &InventoryUseCase{runner: runner, log: log}
}

// List recalcula el estado de cada ítem, lo persiste y devuelve el resumen.
func (uc *InventoryUseCase) List(ctx context.Context) (*dto.InventoryResponse, error) {
	var out dto.InventoryResponse
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		items, err := repo.Inventory(ctx)
		if err != nil {
			return err
		}
		changed := false
		for i := range items {
			if st := items[i].ComputeStatus(); st != items[i].Status {
				items[i].Status = st
				changed = true
			}
		}
		if changed {
			if err := repo.SaveInventory(ctx, items); err != nil {
				return err
			}
		}
		out = dto.InventoryResponse{Items: items, Summary: Summarize(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Restock suma kg a una categoría existente. El delta debe ser positivo y finito.
func (uc *InventoryUseCase) Restock(ctx context.Context, in dto.RestockRequest) (*entity.InventoryItem, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" || math.IsNaN(in.QuantityKg) || math.IsInf(in.QuantityKg, 0) || in.QuantityKg <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated entity.InventoryItem
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		items, err := repo.Inventory(ctx)
		if err != nil {
			return err
		}
		idx := findCategory(items, category)
		if idx < 0 {
			return domain.ErrNotFound
		}
		items[idx].Adjust(in.QuantityKg)
		updated = items[idx]
		return repo.SaveInventory(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("category", updated.Category).
		Float64("added_kg", in.QuantityKg).
		Float64("quantity_kg", updated.QuantityKg).
		Msg("stock repuesto")
	return &updated, nil
}

// ConsumeInRun descuenta kg de la categoría del producto usando el repositorio del llamador
// (misma ejecución atómica). Una categoría desconocida no es error: no hay stock que descontar.
func ConsumeInRun(ctx context.Context, repo repository.StateRepository, productCategory string, kg float64) (bool, error) {
	items, err := repo.Inventory(ctx)
	if err != nil {
		return false, err
	}
	idx := findCategory(items, productCategory)
	if idx < 0 {
		return false, nil
	}
	items[idx].Adjust(-kg)
	return true, repo.SaveInventory(ctx, items)
}

// Summarize totales del inventario: kg totales, conteo OK/Low y categorías en alerta.
func Summarize(items []entity.InventoryItem) dto.InventorySummary {
	s := dto.InventorySummary{LowCategories: []string{}}
	for i := range items {
		qty := items[i].QuantityKg
		if !math.IsNaN(qty) && !math.IsInf(qty, 0) {
			s.TotalKg += qty
		}
		if items[i].ComputeStatus() == entity.StockLow {
			s.LowCount++
			s.LowCategories = append(s.LowCategories, items[i].Category)
		} else {
			s.OKCount++
		}
	}
	return s
}

// findCategory compara normalizado y acepta el nombre con el sufijo de producto.
func findCategory(items []entity.InventoryItem, category string) int {
	key := textnorm.Normalize(category)
	if key == "" {
		return -1
	}
	base := strings.TrimSpace(strings.TrimSuffix(key, productSuffix))
	for i := range items {
		name := textnorm.Normalize(items[i].Category)
		if name == key || (base != "" && name == base) {
			return i
		}
	}
	return -1
}
