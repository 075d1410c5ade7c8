package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/auth"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

const localSesion = "sesion"

// SesionMiddleware restaura la sesión persistida desde la cookie y la
// deja en los locals de la petición. Sin sesión válida responde 401: las
// rutas protegidas exigen login previo.
func SesionMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sesion, err := authUC.Restaurar(c.Context(), c.Cookies(CookieSesion))
		if err != nil {
			c.ClearCookie(CookieSesion)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "SESSION_INVALID", Message: "Debe iniciar sesión.",
			})
		}
		c.Locals(localSesion, sesion)
		return c.Next()
	}
}

// GetSesion devuelve la sesión cargada por el middleware, o nil.
func GetSesion(c *fiber.Ctx) *entity.Sesion {
	sesion, _ := c.Locals(localSesion).(*entity.Sesion)
	return sesion
}

// RequiereAdmin autoriza solo a administradores. Es el chequeo de
// capacidad de presentación; el servicio remoto vuelve a validar.
func RequiereAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sesion := GetSesion(c)
		if sesion == nil || !sesion.Usuario.EsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "Se requiere rol de administrador.",
			})
		}
		return c.Next()
	}
}
