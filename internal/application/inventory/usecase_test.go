package inventory_test

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/inventory"
	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/repository"
	"github.com/jhoicas/freight-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/freight-api/internal/infrastructure/seed"
)

func newUseCase(t *testing.T) (*inventory.InventoryUseCase, *kvstore.StateRunner) {
	t.Helper()
	runner := kvstore.NewStateRunner(kvstore.NewMemoryStore(), zerolog.Nop(), decimal.Zero)
	_, err := seed.NewBootstrapper(runner, seed.Fixtures(), zerolog.Nop()).BootstrapIfNeeded(context.Background())
	require.NoError(t, err)
	return inventory.NewInventoryUseCase(runner, zerolog.Nop()), runner
}

// ==================== List ====================

func TestList_ResumenDeFixtures(t *testing.T) {
	uc, _ := newUseCase(t)

	res, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Items, 4)
	assert.Equal(t, 37500.0, res.Summary.TotalKg)
	assert.Equal(t, 3, res.Summary.OKCount)
	assert.Equal(t, 1, res.Summary.LowCount)
	assert.Equal(t, []string{"Organic"}, res.Summary.LowCategories)
}

// ==================== Restock ====================

func TestRestock_SumaYRecalculaEstado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	item, err := uc.Restock(ctx, dto.RestockRequest{Category: "organic blueberries", QuantityKg: 500})
	require.NoError(t, err)
	assert.Equal(t, "Organic", item.Category)
	assert.Equal(t, 3000.0, item.QuantityKg)
	assert.Equal(t, entity.StockOK, item.Status)

	res, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Summary.LowCount)
}

func TestRestock_Rechazos(t *testing.T) {
	uc, _ := newUseCase(t)
	tests := []struct {
		name string
		in   dto.RestockRequest
		want error
	}{
		{"sin categoría", dto.RestockRequest{QuantityKg: 10}, domain.ErrInvalidInput},
		{"cantidad cero", dto.RestockRequest{Category: "Fresh"}, domain.ErrInvalidInput},
		{"cantidad negativa", dto.RestockRequest{Category: "Fresh", QuantityKg: -5}, domain.ErrInvalidInput},
		{"NaN", dto.RestockRequest{Category: "Fresh", QuantityKg: math.NaN()}, domain.ErrInvalidInput},
		{"categoría desconocida", dto.RestockRequest{Category: "Canned", QuantityKg: 5}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Restock(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ==================== ConsumeInRun ====================

func TestConsumeInRun_PisoCeroYCategoriaDesconocida(t *testing.T) {
	_, runner := newUseCase(t)
	ctx := context.Background()

	require.NoError(t, runner.Run(ctx, func(repo repository.StateRepository) error {
		ok, err := inventory.ConsumeInRun(ctx, repo, "Frozen Blueberries", 10000)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = inventory.ConsumeInRun(ctx, repo, "Canned", 10)
		require.NoError(t, err)
		assert.False(t, ok)

		items, err := repo.Inventory(ctx)
		require.NoError(t, err)
		for _, it := range items {
			if it.Category == "Frozen" {
				assert.Equal(t, 0.0, it.QuantityKg)
				assert.Equal(t, entity.StockLow, it.Status)
			}
		}
		return nil
	}))
}

// ==================== Replenishment ====================

func TestReplenishment_OrdenPorCobertura(t *testing.T) {
	uc, runner := newUseCase(t)
	ctx := context.Background()

	// Dried queda en 600 de un mínimo de 3000 (20%); Organic en 2500/2500 (100%)
	require.NoError(t, runner.Run(ctx, func(repo repository.StateRepository) error {
		_, err := inventory.ConsumeInRun(ctx, repo, "Dried", 14400)
		return err
	}))

	list, err := uc.Replenishment(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Dried", list[0].Category)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 4500.0, list[0].IdealStockKg)
	assert.InDelta(t, 3900.0, list[0].SuggestedKg, 1e-9)

	assert.Equal(t, "Organic", list[1].Category)
	assert.Equal(t, 2, list[1].Priority)
	assert.Equal(t, 1250.0, list[1].SuggestedKg)
}

func TestSummarize_IgnoraValoresNoFinitos(t *testing.T) {
	s := inventory.Summarize([]entity.InventoryItem{
		{Category: "A", QuantityKg: math.Inf(1), MinStock: 10},
		{Category: "B", QuantityKg: 50, MinStock: 10},
	})
	assert.Equal(t, 50.0, s.TotalKg)
	assert.Equal(t, 1, s.LowCount)
	assert.Equal(t, []string{"A"}, s.LowCategories)
}
