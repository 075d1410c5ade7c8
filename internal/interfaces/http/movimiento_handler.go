package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
)

// MovimientoHandler maneja el historial y el registro de movimientos.
type MovimientoHandler struct {
	listar    *inventory.MovimientoUseCase
	registrar *inventory.RegistrarMovimientoUseCase
	resp      *Responder
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(
	listar *inventory.MovimientoUseCase,
	registrar *inventory.RegistrarMovimientoUseCase,
	resp *Responder,
) *MovimientoHandler {
	return &MovimientoHandler{listar: listar, registrar: registrar, resp: resp}
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movimientos
// @Produce      json
// @Success      200  {array}   dto.MovimientoDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	out, err := h.listar.Listar(c.Context(), GetSesion(c))
	if err != nil {
		return h.resp.Error(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Movimiento"
// @Success      201   {object}  dto.RegistrarMovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Failure      502   {object}  dto.ErrorResponse  "Movimiento registrado sin actualizar stock"
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registrar.Registrar(c.Context(), GetSesion(c), in)
	if err != nil {
		return h.resp.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarMovimientoResponse{
		Mensaje:      "Movimiento registrado.",
		MovimientoID: out.Movimiento.ID,
		NuevoStock:   out.NuevoStock,
	})
}

// Reject responde a cualquier intento de editar o borrar un movimiento.
// El historial es inmutable: las correcciones se hacen con un movimiento
// compensatorio nuevo.
func (h *MovimientoHandler) Reject(c *fiber.Ctx) error {
	return h.resp.Error(c, domain.ErrMovimientoInmutable)
}
