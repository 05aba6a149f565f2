package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/inventory"
)

// InventoryHandler stock por categoría.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Inventario con resumen
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Reponer stock de una categoría
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockRequest  true  "category, quantity_kg (> 0)"
// @Success      200   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.uc.Restock(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// GetReplenishmentList godoc
// @Summary      Sugerencias de reposición
// @Description  Categorías en estado Low con la cantidad para llegar al stock ideal (mínimo × 1.5),
//
//	la más alejada de su mínimo primero.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.uc.Replenishment(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
