package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// apiFalsa implementa ServicioInventario en memoria y registra cada
// escritura para verificar el orden y los payloads del flujo de dos pasos.
type apiFalsa struct {
	productos   []entity.Producto
	movimientos []entity.Movimiento

	fallarCrearMovimiento error
	fallarActualizar      error

	movimientosCreados []dto.MovimientoPayload
	actualizaciones    []actualizacion
	siguienteMovID     int
}

type actualizacion struct {
	id      int
	payload dto.ProductoPayload
}

func (f *apiFalsa) ListarProductos(ctx context.Context, token string) ([]entity.Producto, error) {
	return f.productos, nil
}

func (f *apiFalsa) ObtenerProducto(ctx context.Context, token string, id int) (*entity.Producto, error) {
	for i := range f.productos {
		if f.productos[i].ID == id {
			return &f.productos[i], nil
		}
	}
	return nil, domain.ErrProductoNoEncontrado
}

func (f *apiFalsa) CrearProducto(ctx context.Context, token string, p dto.ProductoPayload) (*entity.Producto, error) {
	return nil, errors.New("no usado en estos tests")
}

func (f *apiFalsa) ActualizarProducto(ctx context.Context, token string, id int, p dto.ProductoPayload) (*entity.Producto, error) {
	if f.fallarActualizar != nil {
		return nil, f.fallarActualizar
	}
	f.actualizaciones = append(f.actualizaciones, actualizacion{id: id, payload: p})
	for i := range f.productos {
		if f.productos[i].ID == id {
			f.productos[i].Cantidad = p.Cantidad
			return &f.productos[i], nil
		}
	}
	return nil, domain.ErrProductoNoEncontrado
}

func (f *apiFalsa) EliminarProducto(ctx context.Context, token string, id int) error {
	return nil
}

func (f *apiFalsa) ObtenerAlertas(ctx context.Context, token string) (*dto.AlertasRemotas, error) {
	return &dto.AlertasRemotas{}, nil
}

func (f *apiFalsa) ListarMovimientos(ctx context.Context, token string) ([]entity.Movimiento, error) {
	return f.movimientos, nil
}

func (f *apiFalsa) CrearMovimiento(ctx context.Context, token string, m dto.MovimientoPayload) (*entity.Movimiento, error) {
	if f.fallarCrearMovimiento != nil {
		return nil, f.fallarCrearMovimiento
	}
	f.siguienteMovID++
	f.movimientosCreados = append(f.movimientosCreados, m)
	return &entity.Movimiento{
		ID:         f.siguienteMovID,
		ProductoID: m.ProductoID,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		UsuarioID:  m.UsuarioID,
		Fecha:      time.Now(),
	}, nil
}

func sesionDePrueba() *entity.Sesion {
	return &entity.Sesion{
		ID:    "11111111-1111-1111-1111-111111111111",
		Token: "token-remoto",
		Usuario: entity.Usuario{
			ID:           7,
			UsuarioLogin: "operador1",
			Nombre:       "Operador Uno",
			Rol:          entity.RolOperador,
		},
		ExpiraEn: time.Now().Add(time.Hour),
	}
}

func apiConProducto(cantidad int) *apiFalsa {
	caducidad := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	return &apiFalsa{
		productos: []entity.Producto{{
			ID:             42,
			Nombre:         "Leche entera",
			Cantidad:       cantidad,
			FechaCaducidad: &caducidad,
			Ubicacion:      "Pasillo 3",
		}},
	}
}

func TestRegistrar_EntradaSumaStock(t *testing.T) {
	api := apiConProducto(10)
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	out, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoEntrada, Cantidad: 5, ProductoID: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, 15, out.NuevoStock)

	// Primero el movimiento, después el stock, cada uno una sola vez.
	require.Len(t, api.movimientosCreados, 1)
	require.Len(t, api.actualizaciones, 1)
	assert.Equal(t, dto.MovimientoPayload{
		ProductoID: 42, Tipo: entity.TipoEntrada, Cantidad: 5, UsuarioID: 7,
	}, api.movimientosCreados[0])
	assert.Equal(t, 42, api.actualizaciones[0].id)
	assert.Equal(t, 15, api.actualizaciones[0].payload.Cantidad)
}

func TestRegistrar_SalidaExactaDejaStockEnCero(t *testing.T) {
	api := apiConProducto(5)
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	out, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoSalida, Cantidad: 5, ProductoID: 42,
	})

	// Sacar exactamente el stock disponible es válido; queda en cero.
	require.NoError(t, err)
	assert.Equal(t, 0, out.NuevoStock)
	assert.Equal(t, 0, api.productos[0].Cantidad)
}

func TestRegistrar_SalidaInsuficienteNoEscribeNada(t *testing.T) {
	api := apiConProducto(5)
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	_, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoSalida, Cantidad: 6, ProductoID: 42,
	})

	var insuficiente *domain.ErrStockInsuficiente
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, 5, insuficiente.StockActual)
	assert.Equal(t, "Stock insuficiente. Solo hay 5 unidades disponibles.", err.Error())

	// El rechazo ocurre antes de cualquier escritura remota.
	assert.Empty(t, api.movimientosCreados)
	assert.Empty(t, api.actualizaciones)
}

func TestRegistrar_ValidacionesLocalesNoTocanLaRed(t *testing.T) {
	casos := []struct {
		nombre string
		sesion *entity.Sesion
		in     dto.RegistrarMovimientoRequest
		errEsp error
	}{
		{
			"sin sesión", nil,
			dto.RegistrarMovimientoRequest{Tipo: entity.TipoEntrada, Cantidad: 1, ProductoID: 42},
			domain.ErrNoAutenticado,
		},
		{
			"cantidad cero", sesionDePrueba(),
			dto.RegistrarMovimientoRequest{Tipo: entity.TipoEntrada, Cantidad: 0, ProductoID: 42},
			domain.ErrCantidadInvalida,
		},
		{
			"cantidad negativa", sesionDePrueba(),
			dto.RegistrarMovimientoRequest{Tipo: entity.TipoSalida, Cantidad: -3, ProductoID: 42},
			domain.ErrCantidadInvalida,
		},
		{
			"tipo desconocido", sesionDePrueba(),
			dto.RegistrarMovimientoRequest{Tipo: "ajuste", Cantidad: 1, ProductoID: 42},
			domain.ErrTipoMovimientoInvalido,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			api := apiConProducto(10)
			uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

			_, err := uc.Registrar(context.Background(), c.sesion, c.in)

			require.ErrorIs(t, err, c.errEsp)
			assert.Empty(t, api.movimientosCreados)
			assert.Empty(t, api.actualizaciones)
		})
	}
}

func TestRegistrar_ProductoInexistente(t *testing.T) {
	api := apiConProducto(10)
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	_, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoEntrada, Cantidad: 1, ProductoID: 999,
	})

	require.ErrorIs(t, err, domain.ErrProductoNoEncontrado)
	assert.Empty(t, api.movimientosCreados)
}

func TestRegistrar_FalloDelPrimerPasoNoTocaElStock(t *testing.T) {
	api := apiConProducto(10)
	api.fallarCrearMovimiento = errors.New("remoto caído")
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	_, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoEntrada, Cantidad: 5, ProductoID: 42,
	})

	require.Error(t, err)
	assert.False(t, inventory.EsFalloParcial(err))
	assert.Empty(t, api.actualizaciones, "si el alta del movimiento falla no debe intentarse el PUT")
	assert.Equal(t, 10, api.productos[0].Cantidad)
}

func TestRegistrar_FalloDelSegundoPasoSeReportaComoParcial(t *testing.T) {
	api := apiConProducto(10)
	api.fallarActualizar = errors.New("timeout en el PUT")
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	_, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoSalida, Cantidad: 3, ProductoID: 42,
	})

	// El movimiento quedó registrado pero el stock no cambió: el error lo
	// dice explícitamente, con el id del movimiento huérfano.
	var parcial *domain.ErrStockNoActualizado
	require.ErrorAs(t, err, &parcial)
	assert.True(t, inventory.EsFalloParcial(err))
	assert.Equal(t, 1, parcial.MovimientoID)
	require.Len(t, api.movimientosCreados, 1)
	assert.Equal(t, 10, api.productos[0].Cantidad)
}

func TestRegistrar_PayloadDeStockConservaLosDemasCampos(t *testing.T) {
	api := apiConProducto(10)
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())

	_, err := uc.Registrar(context.Background(), sesionDePrueba(), dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoSalida, Cantidad: 4, ProductoID: 42,
	})

	require.NoError(t, err)
	payload := api.actualizaciones[0].payload
	assert.Equal(t, "Leche entera", payload.Nombre)
	assert.Equal(t, "Pasillo 3", payload.Ubicacion)
	// La fecha viaja como fecha calendario plana, sin hora ni zona.
	require.NotNil(t, payload.FechaCaducidad)
	assert.Equal(t, "2026-12-01", *payload.FechaCaducidad)
}

func TestRegistrar_SecuenciaHastaAgotarElStock(t *testing.T) {
	api := apiConProducto(5)
	uc := inventory.NewRegistrarMovimientoUseCase(api, logger.Nop())
	sesion := sesionDePrueba()

	out, err := uc.Registrar(context.Background(), sesion, dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoSalida, Cantidad: 5, ProductoID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NuevoStock)

	// El siguiente intento ve el stock ya agotado del snapshot fresco.
	_, err = uc.Registrar(context.Background(), sesion, dto.RegistrarMovimientoRequest{
		Tipo: entity.TipoSalida, Cantidad: 1, ProductoID: 42,
	})
	var insuficiente *domain.ErrStockInsuficiente
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, "Stock insuficiente. Solo hay 0 unidades disponibles.", err.Error())
}
