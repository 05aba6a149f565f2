package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/logistics"
)

// FinancialsHandler libro financiero y reinicio total del sistema.
type FinancialsHandler struct {
	uc     *logistics.FinancialsUseCase
	system *logistics.SystemUseCase
}

// NewFinancialsHandler construye el handler.
func NewFinancialsHandler(uc *logistics.FinancialsUseCase, system *logistics.SystemUseCase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc, system: system}
}

// Summary godoc
// @Summary      Libro financiero
// @Tags         financials
// @Produce      json
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Router       /api/financials [get]
func (h *FinancialsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte financiero en PDF
// @Tags         financials
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/financials/report.pdf [get]
func (h *FinancialsHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.Report(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="financial-report.pdf"`)
	return c.Send(pdf)
}

// SystemReset godoc
// @Summary      Reinicio total del sistema
// @Description  Borra todas las claves y vuelve a sembrar los datos iniciales. Requiere {"confirm": true}.
// @Tags         system
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SystemResetRequest  true  "confirm"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/system/reset [post]
func (h *FinancialsHandler) SystemReset(c *fiber.Ctx) error {
	var in dto.SystemResetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.system.FullReset(c.Context(), in.Confirm); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sistema reiniciado"})
}
