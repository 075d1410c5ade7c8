package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// UseCase gestiona el ciclo de vida de la sesión: se crea en el login con
// el token del servicio remoto, se persiste en el almacenamiento local
// duradero, se restaura en cada petición y se limpia en el logout o cuando
// el remoto responde 401/403.
type UseCase struct {
	api      ServicioAuth
	sesiones SesionStore
	duracion time.Duration // vigencia por defecto si el token no trae exp
	log      *logger.Logger
	ahora    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(api ServicioAuth, sesiones SesionStore, duracion time.Duration, log *logger.Logger) *UseCase {
	return &UseCase{
		api:      api,
		sesiones: sesiones,
		duracion: duracion,
		log:      log,
		ahora:    time.Now,
	}
}

// Login autentica contra el servicio remoto y persiste la sesión nueva.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Sesion, error) {
	token, usuario, err := uc.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}

	ahora := uc.ahora()
	sesion := &entity.Sesion{
		ID:       uuid.New().String(),
		Token:    token,
		Usuario:  *usuario,
		CreadaEn: ahora,
		ExpiraEn: uc.expiracion(token, ahora),
	}
	if err := uc.sesiones.Guardar(ctx, sesion); err != nil {
		return nil, fmt.Errorf("persistir sesión: %w", err)
	}

	uc.log.Info().
		Int("id_usuario", usuario.ID).
		Str("rol", usuario.Rol).
		Msg("sesión iniciada")
	return sesion, nil
}

// Registrar da de alta un usuario; el flujo de la UI lleva después al login.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistroRequest) error {
	return uc.api.Registrar(ctx, in)
}

// Restaurar carga la sesión persistida. Una sesión vencida se elimina y se
// reporta como inválida, forzando un login nuevo.
func (uc *UseCase) Restaurar(ctx context.Context, sesionID string) (*entity.Sesion, error) {
	if sesionID == "" {
		return nil, domain.ErrSesionInvalida
	}
	sesion, err := uc.sesiones.Obtener(ctx, sesionID)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if sesion == nil {
		return nil, domain.ErrSesionInvalida
	}
	if sesion.Expirada(uc.ahora()) {
		_ = uc.sesiones.Eliminar(ctx, sesionID)
		return nil, domain.ErrSesionInvalida
	}
	return sesion, nil
}

// Logout elimina la sesión local. El token remoto simplemente se descarta.
func (uc *UseCase) Logout(ctx context.Context, sesionID string) error {
	if sesionID == "" {
		return nil
	}
	return uc.sesiones.Eliminar(ctx, sesionID)
}

// Invalidar limpia la sesión cuando el servicio remoto la rechazó
// (respuesta 401/403): el token ya no sirve y obligamos un login nuevo.
func (uc *UseCase) Invalidar(ctx context.Context, sesionID string) {
	if err := uc.sesiones.Eliminar(ctx, sesionID); err != nil {
		uc.log.Warn().Err(err).Str("sesion", sesionID).Msg("no se pudo limpiar la sesión rechazada")
	}
}

// PurgarExpiradas elimina sesiones vencidas del almacenamiento.
func (uc *UseCase) PurgarExpiradas(ctx context.Context) (int64, error) {
	return uc.sesiones.EliminarExpiradas(ctx, uc.ahora())
}

// expiracion toma la vigencia del claim exp del JWT remoto cuando es
// legible; el token no se verifica aquí (la firma la valida el remoto en
// cada llamada). Si el token es opaco se usa la duración configurada.
func (uc *UseCase) expiracion(token string, ahora time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return ahora.Add(uc.duracion)
}
