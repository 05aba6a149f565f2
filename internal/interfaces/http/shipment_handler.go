package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/logistics"
)

// ShipmentHandler maneja alta, cotización, listado y seguimiento de envíos, y los catálogos
// de rutas y tarifas.
type ShipmentHandler struct {
	uc *logistics.ShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *logistics.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Routes godoc
// @Summary      Rutas y distancias desde el origen
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   entity.Route
// @Router       /api/routes [get]
func (h *ShipmentHandler) Routes(c *fiber.Ctx) error {
	routes, err := h.uc.Routes(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(routes)
}

// Rates godoc
// @Summary      Tarifas por tipo de contenedor
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   entity.ContainerRate
// @Router       /api/rates [get]
func (h *ShipmentHandler) Rates(c *fiber.Ctx) error {
	rates, err := h.uc.Rates(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rates)
}

// Quote godoc
// @Summary      Cotizar un envío sin crearlo
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShipmentRequest  true  "destination, container_type, weight_kg"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipments/quote [post]
func (h *ShipmentHandler) Quote(c *fiber.Ctx) error {
	var in dto.ShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	q, err := h.uc.Quote(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(q)
}

// Create godoc
// @Summary      Crear envío
// @Description  Registra el envío en estado Pending, descuenta inventario y suma el precio a los ingresos.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShipmentRequest  true  "destination, product_category, container_type, weight_kg"
// @Success      201   {object}  entity.Shipment
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.ShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// List godoc
// @Summary      Listar envíos
// @Tags         shipments
// @Produce      json
// @Param        status  query  string  false  "Pending | Ready for Transport | In Transit | Delivered"
// @Param        limit   query  int     false  "Máximo de ítems (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ShipmentListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), c.Query("status"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Track godoc
// @Summary      Seguimiento de un envío
// @Tags         shipments
// @Produce      json
// @Param        id   path  string  true  "ID del envío (TW-YYMMDD-XXXX)"
// @Success      200  {object}  dto.TrackResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [get]
func (h *ShipmentHandler) Track(c *fiber.Ctx) error {
	out, err := h.uc.Track(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar el estado de un envío
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del envío"
// @Param        body  body  dto.UpdateStatusRequest   true  "status"
// @Success      200   {object}  entity.Shipment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.AdvanceStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s)
}
