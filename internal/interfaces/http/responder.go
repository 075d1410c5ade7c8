package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/auth"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/restapi"
)

// CookieSesion nombre de la cookie que lleva el id de sesión del gateway.
const CookieSesion = "inventario_sesion"

// Responder centraliza el mapeo de errores de dominio a respuestas HTTP.
// Cuando el servicio remoto rechaza la credencial (401/403) limpia la
// sesión local completa: fila persistida, caché de campana y cookie.
type Responder struct {
	auth    *auth.UseCase
	campana *analytics.CampanaUseCase
}

// NewResponder construye el responder.
func NewResponder(authUC *auth.UseCase, campana *analytics.CampanaUseCase) *Responder {
	return &Responder{auth: authUC, campana: campana}
}

// Error responde el error con el código y estado que le corresponden.
func (r *Responder) Error(c *fiber.Ctx, err error) error {
	var insuficiente *domain.ErrStockInsuficiente
	if errors.As(err, &insuficiente) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: insuficiente.Error(),
		})
	}

	// Fallo parcial del flujo de movimiento: el movimiento quedó
	// registrado pero el stock no se actualizó. Se distingue de un fallo
	// del primer paso para que el operador sepa que hay que reconciliar.
	var parcial *domain.ErrStockNoActualizado
	if errors.As(err, &parcial) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "STOCK_NOT_UPDATED", Message: parcial.Error(),
		})
	}

	if errors.Is(err, domain.ErrSesionInvalida) {
		r.limpiarSesion(c)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "SESSION_INVALID", Message: domain.ErrSesionInvalida.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrNoAutenticado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "AUTH_REQUIRED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrAccesoDenegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrProductoNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrCantidadInvalida),
		errors.Is(err, domain.ErrTipoMovimientoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrMovimientoInmutable):
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
			Code: "IMMUTABLE", Message: err.Error(),
		})
	}

	// Error remoto: se reenvía el mejor mensaje disponible tal cual.
	var remoto *restapi.APIError
	if errors.As(err, &remoto) {
		status := remoto.Status
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code: "REMOTE", Message: remoto.Mensaje,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "Error al procesar la petición.",
	})
}

// limpiarSesion descarta todo el estado local asociado a la sesión.
func (r *Responder) limpiarSesion(c *fiber.Ctx) {
	if id := c.Cookies(CookieSesion); id != "" {
		r.auth.Invalidar(c.Context(), id)
		r.campana.Invalidar(id)
	}
	c.ClearCookie(CookieSesion)
}
