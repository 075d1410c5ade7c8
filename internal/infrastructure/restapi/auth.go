package restapi

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// usuarioWire forma en el cable del usuario autenticado.
type usuarioWire struct {
	ID           int    `json:"id_usuario"`
	UsuarioLogin string `json:"usuario_login"`
	Nombre       string `json:"nombre"`
	Rol          string `json:"rol"`
}

// Login implementa POST /auth/login.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (string, *entity.Usuario, error) {
	var wire struct {
		Token   string      `json:"token"`
		Usuario usuarioWire `json:"user"`
	}
	if err := c.do(ctx, "POST", "/auth/login", "", in, &wire); err != nil {
		return "", nil, err
	}
	usuario := &entity.Usuario{
		ID:           wire.Usuario.ID,
		UsuarioLogin: wire.Usuario.UsuarioLogin,
		Nombre:       wire.Usuario.Nombre,
		Rol:          wire.Usuario.Rol,
	}
	return wire.Token, usuario, nil
}

// Registrar implementa POST /auth/register.
func (c *Client) Registrar(ctx context.Context, in dto.RegistroRequest) error {
	return c.do(ctx, "POST", "/auth/register", "", in, nil)
}
