package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/reports"
)

// ReporteHandler sirve los exports descargables.
type ReporteHandler struct {
	uc   *reports.UseCase
	resp *Responder
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reports.UseCase, resp *Responder) *ReporteHandler {
	return &ReporteHandler{uc: uc, resp: resp}
}

// AlertasPDF godoc
// @Summary      Informe de alertas en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes/alertas.pdf [get]
func (h *ReporteHandler) AlertasPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.AlertasPDF(c.Context(), GetSesion(c))
	if err != nil {
		return h.resp.Error(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas.pdf"`)
	return c.Send(pdf)
}

// MovimientosXLSX godoc
// @Summary      Historial de movimientos en Excel
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos.xlsx [get]
func (h *ReporteHandler) MovimientosXLSX(c *fiber.Ctx) error {
	xlsx, err := h.uc.MovimientosXLSX(c.Context(), GetSesion(c))
	if err != nil {
		return h.resp.Error(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xlsx"`)
	return c.Send(xlsx)
}
