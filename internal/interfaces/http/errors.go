package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/domain"
)

// errorMapping estado HTTP y código estable de cada error de dominio.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNoShipmentSelected, fiber.StatusBadRequest, "NO_SHIPMENT_SELECTED"},
	{domain.ErrDistanceUndefined, fiber.StatusBadRequest, "DISTANCE_UNDEFINED"},
	{domain.ErrWrongVehicleType, fiber.StatusBadRequest, "WRONG_VEHICLE_TYPE"},
	{domain.ErrExceedsCapacity, fiber.StatusBadRequest, "EXCEEDS_CAPACITY"},
	{domain.ErrRouteNotFound, fiber.StatusBadRequest, "ROUTE_NOT_FOUND"},
	{domain.ErrRateNotFound, fiber.StatusBadRequest, "RATE_NOT_FOUND"},
	{domain.ErrResetNotConfirmed, fiber.StatusBadRequest, "RESET_NOT_CONFIRMED"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrShipmentNotFound, fiber.StatusNotFound, "SHIPMENT_NOT_FOUND"},
	{domain.ErrVehicleNotFound, fiber.StatusNotFound, "VEHICLE_NOT_FOUND"},
	{domain.ErrVehicleBusy, fiber.StatusConflict, "VEHICLE_BUSY"},
	{domain.ErrInvalidStatusTransition, fiber.StatusConflict, "INVALID_STATUS_TRANSITION"},
	{domain.ErrIDSpaceExhausted, fiber.StatusConflict, "ID_SPACE_EXHAUSTED"},
	{domain.ErrCorruptState, fiber.StatusConflict, "CORRUPT_STATE"},
}

// writeError traduce err a dto.ErrorResponse. Lo que no es de dominio sale como 500.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	requestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
