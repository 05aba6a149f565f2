package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freight-api/internal/application/logistics"
)

// ContainerHandler optimización y consulta de contenedores.
type ContainerHandler struct {
	uc *logistics.ContainerUseCase
}

// NewContainerHandler construye el handler.
func NewContainerHandler(uc *logistics.ContainerUseCase) *ContainerHandler {
	return &ContainerHandler{uc: uc}
}

// List godoc
// @Summary      Listar contenedores
// @Tags         containers
// @Produce      json
// @Success      200  {object}  dto.ContainerListResponse
// @Router       /api/containers [get]
func (h *ContainerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Optimize godoc
// @Summary      Empacar envíos pendientes
// @Description  First-fit-decreasing por destino y tipo de contenedor. Sin pendientes no cambia nada.
// @Tags         containers
// @Produce      json
// @Success      200  {object}  dto.OptimizeResponse
// @Router       /api/containers/optimize [post]
func (h *ContainerHandler) Optimize(c *fiber.Ctx) error {
	out, err := h.uc.Optimize(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Reiniciar contenedores
// @Description  Devuelve todos los envíos a Pending, borra los contenedores y deja los gastos en 0.
// @Tags         containers
// @Produce      json
// @Success      200  {object}  dto.ResetContainersResponse
// @Router       /api/containers/reset [post]
func (h *ContainerHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.Reset(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Manifest godoc
// @Summary      Manifiesto XML de carga
// @Tags         containers
// @Produce      xml
// @Param        id   path  string  true  "ID del contenedor (CT-YYMMDD-XXX)"
// @Success      200  {string}  string
// @Header       200  {string}  X-Manifest-Digest  "SHA-256 de la forma canónica"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/containers/{id}/manifest [get]
func (h *ContainerHandler) Manifest(c *fiber.Ctx) error {
	m, err := h.uc.Manifest(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(m.ContainerID + ".xml")
	c.Set("X-Manifest-Digest", m.Digest)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(m.XML)
}
