package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/auth"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
)

// AuthHandler maneja login, registro y cierre de sesión.
type AuthHandler struct {
	uc      *auth.UseCase
	campana *analytics.CampanaUseCase
	resp    *Responder
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, campana *analytics.CampanaUseCase, resp *Responder) *AuthHandler {
	return &AuthHandler{uc: uc, campana: campana, resp: resp}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SesionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	sesion, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return h.resp.Error(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieSesion,
		Value:    sesion.ID,
		Expires:  sesion.ExpiraEn,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.SesionResponse{Usuario: dto.DesdeUsuario(sesion.Usuario)})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.UsuarioLogin == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, usuario_login y contrasena son requeridos"})
	}
	if err := h.uc.Registrar(c.Context(), in); err != nil {
		return h.resp.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Mensaje: "Usuario registrado. Ya puede iniciar sesión."})
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sesion := GetSesion(c)
	if sesion == nil {
		return h.resp.Error(c, domain.ErrNoAutenticado)
	}
	return c.JSON(dto.SesionResponse{Usuario: dto.DesdeUsuario(sesion.Usuario)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MensajeResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(CookieSesion); id != "" {
		if err := h.uc.Logout(c.Context(), id); err != nil {
			return h.resp.Error(c, err)
		}
		h.campana.Invalidar(id)
	}
	c.ClearCookie(CookieSesion)
	return c.JSON(dto.MensajeResponse{Mensaje: "Sesión cerrada."})
}
