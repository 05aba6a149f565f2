package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/logistics"
)

// FleetHandler pantalla de flota: vehículos, pendientes, asignaciones y estimación de gasto.
type FleetHandler struct {
	uc *logistics.FleetUseCase
}

// NewFleetHandler construye el handler.
func NewFleetHandler(uc *logistics.FleetUseCase) *FleetHandler {
	return &FleetHandler{uc: uc}
}

// Fleet godoc
// @Summary      Registro de flota
// @Tags         fleet
// @Produce      json
// @Success      200  {object}  entity.Fleet
// @Router       /api/fleet [get]
func (h *FleetHandler) Fleet(c *fiber.Ctx) error {
	fl, err := h.uc.Fleet(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fl)
}

// Available godoc
// @Summary      Vehículos disponibles (Idle)
// @Tags         fleet
// @Produce      json
// @Success      200  {object}  dto.AvailableVehiclesResponse
// @Router       /api/fleet/available [get]
func (h *FleetHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.AvailableVehicles(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PendingShipments godoc
// @Summary      Envíos pendientes de asignación
// @Tags         fleet
// @Produce      json
// @Success      200  {array}  entity.Shipment
// @Router       /api/fleet/pending-shipments [get]
func (h *FleetHandler) PendingShipments(c *fiber.Ctx) error {
	out, err := h.uc.PendingShipments(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Assignments godoc
// @Summary      Asignaciones vigentes
// @Tags         fleet
// @Produce      json
// @Success      200  {array}  dto.AssignmentDTO
// @Router       /api/fleet/assignments [get]
func (h *FleetHandler) Assignments(c *fiber.Ctx) error {
	out, err := h.uc.Assignments(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Estimate godoc
// @Summary      Estimar gasto de una asignación
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignRequest  true  "shipment_id, vehicle_id, vehicle_type opcional"
// @Success      200   {object}  dto.EstimateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fleet/estimate [post]
func (h *FleetHandler) Estimate(c *fiber.Ctx) error {
	var in dto.AssignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Estimate(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar vehículo a un envío
// @Description  Camión para destinos domésticos, barco para internacionales. Suma el gasto al libro.
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignRequest  true  "shipment_id, vehicle_id, vehicle_type opcional"
// @Success      200   {object}  dto.AssignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fleet/assignments [post]
func (h *FleetHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Assign(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
