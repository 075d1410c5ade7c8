package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
)

// DashboardHandler sirve el resumen del inventario y la campana de
// notificaciones.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	campana   *analytics.CampanaUseCase
	resp      *Responder
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	dashboard *analytics.DashboardUseCase,
	campana *analytics.CampanaUseCase,
	resp *Responder,
) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, campana: campana, resp: resp}
}

// Resumen godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.dashboard.Resumen(c.Context(), GetSesion(c))
	if err != nil {
		return h.resp.Error(c, err)
	}
	return c.JSON(out)
}

// Alertas godoc
// @Summary      Notificaciones de caducidad (campana)
// @Tags         dashboard
// @Produce      json
// @Param        refrescar  query  bool  false  "Fuerza la lectura ignorando la caché"
// @Success      200  {array}   dto.AlertaCampanaDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/alertas [get]
func (h *DashboardHandler) Alertas(c *fiber.Ctx) error {
	forzar := c.QueryBool("refrescar")
	out, err := h.campana.Alertas(c.Context(), GetSesion(c), forzar)
	if err != nil {
		return h.resp.Error(c, err)
	}
	return c.JSON(out)
}
