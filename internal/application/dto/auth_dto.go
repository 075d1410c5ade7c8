package dto

// LoginRequest credenciales para iniciar sesión contra el servicio remoto.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistroRequest datos de registro de un usuario nuevo. Los nombres de
// campo son los que espera el backend.
type RegistroRequest struct {
	Nombre       string `json:"nombre"`
	UsuarioLogin string `json:"usuario_login"`
	Contrasena   string `json:"contrasena"`
}

// UsuarioDTO representación del usuario autenticado para la UI.
type UsuarioDTO struct {
	ID           int    `json:"id_usuario"`
	UsuarioLogin string `json:"usuario_login"`
	Nombre       string `json:"nombre"`
	Rol          string `json:"rol"`
	EsAdmin      bool   `json:"es_admin"`
}

// SesionResponse respuesta de login / restauración de sesión.
type SesionResponse struct {
	Usuario UsuarioDTO `json:"usuario"`
}
