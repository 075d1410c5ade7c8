package entity

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
)

// Usuario es el usuario autenticado contra el servicio remoto.
type Usuario struct {
	ID           int
	UsuarioLogin string
	Nombre       string
	Rol          string // admin, operador
}

// EsAdmin indica si el usuario tiene rol de administrador.
func (u *Usuario) EsAdmin() bool {
	return u != nil && u.Rol == RolAdmin
}

// PuedeEliminarProductos es el chequeo de capacidad para el control de
// borrado. Es solo presentación: la autorización real la aplica el
// servicio remoto.
func (u *Usuario) PuedeEliminarProductos() bool {
	return u.EsAdmin()
}
