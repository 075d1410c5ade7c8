package auth

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// ServicioAuth puerto hacia los endpoints de autenticación del servicio
// remoto de inventario.
type ServicioAuth interface {
	// Login intercambia credenciales por token + usuario.
	Login(ctx context.Context, in dto.LoginRequest) (token string, usuario *entity.Usuario, err error)
	// Registrar da de alta un usuario nuevo; no inicia sesión.
	Registrar(ctx context.Context, in dto.RegistroRequest) error
}

// SesionStore almacenamiento local duradero de sesiones: sobrevive a los
// reinicios del gateway igual que el localStorage del navegador sobrevive
// a las recargas.
type SesionStore interface {
	Guardar(ctx context.Context, s *entity.Sesion) error
	// Obtener devuelve (nil, nil) si la sesión no existe.
	Obtener(ctx context.Context, id string) (*entity.Sesion, error)
	Eliminar(ctx context.Context, id string) error
	// EliminarExpiradas purga sesiones vencidas; devuelve cuántas borró.
	EliminarExpiradas(ctx context.Context, ahora time.Time) (int64, error)
}
