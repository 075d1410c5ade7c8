package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// hoy fijo para todos los casos, con hora para cubrir el truncado a fecha.
var hoy = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

// servicioFalso implementa inventory.ServicioInventario con datos fijos y
// cuenta las lecturas de alertas para verificar la caché de la campana.
type servicioFalso struct {
	productos    []entity.Producto
	movimientos  []entity.Movimiento
	alertas      dto.AlertasRemotas
	lecturasAler int
}

func (f *servicioFalso) ListarProductos(ctx context.Context, token string) ([]entity.Producto, error) {
	return f.productos, nil
}

func (f *servicioFalso) ObtenerProducto(ctx context.Context, token string, id int) (*entity.Producto, error) {
	return nil, domain.ErrProductoNoEncontrado
}

func (f *servicioFalso) CrearProducto(ctx context.Context, token string, p dto.ProductoPayload) (*entity.Producto, error) {
	return nil, nil
}

func (f *servicioFalso) ActualizarProducto(ctx context.Context, token string, id int, p dto.ProductoPayload) (*entity.Producto, error) {
	return nil, nil
}

func (f *servicioFalso) EliminarProducto(ctx context.Context, token string, id int) error {
	return nil
}

func (f *servicioFalso) ObtenerAlertas(ctx context.Context, token string) (*dto.AlertasRemotas, error) {
	f.lecturasAler++
	return &f.alertas, nil
}

func (f *servicioFalso) ListarMovimientos(ctx context.Context, token string) ([]entity.Movimiento, error) {
	return f.movimientos, nil
}

func (f *servicioFalso) CrearMovimiento(ctx context.Context, token string, m dto.MovimientoPayload) (*entity.Movimiento, error) {
	return nil, nil
}

func sesionDePrueba() *entity.Sesion {
	return &entity.Sesion{
		ID:       "aaaaaaaa-0000-0000-0000-000000000001",
		Token:    "token-remoto",
		Usuario:  entity.Usuario{ID: 3, Rol: entity.RolOperador},
		ExpiraEn: hoy.Add(time.Hour),
	}
}

func fecha(n int) *time.Time {
	f := hoy.AddDate(0, 0, n)
	return &f
}

func TestResumen_ClasificaYCuenta(t *testing.T) {
	// Yogur: vencido y además con stock bajo; Queso: rojo; Pan: amarillo;
	// Sal: sin fecha; Arroz: solo stock bajo.
	api := &servicioFalso{
		productos: []entity.Producto{
			{ID: 1, Nombre: "Yogur", Cantidad: 4, FechaCaducidad: fecha(-2)},
			{ID: 2, Nombre: "Queso", Cantidad: 50, FechaCaducidad: fecha(5)},
			{ID: 3, Nombre: "Pan", Cantidad: 20, FechaCaducidad: fecha(20)},
			{ID: 4, Nombre: "Sal", Cantidad: 100, FechaCaducidad: nil},
			{ID: 5, Nombre: "Arroz", Cantidad: 8, FechaCaducidad: fecha(120)},
		},
	}
	uc := NewDashboardUseCase(api, 10, 30)
	uc.ahora = func() time.Time { return hoy }

	resumen, err := uc.Resumen(context.Background(), sesionDePrueba())
	require.NoError(t, err)

	assert.Equal(t, 182, resumen.StockTotal)
	assert.Equal(t, 1, resumen.ProductosVencidos)
	assert.Equal(t, 2, resumen.ProductosStockBajo)

	require.Len(t, resumen.AlertasCaducidad, 3)
	porID := map[int]dto.AlertaCaducidadDTO{}
	for _, a := range resumen.AlertasCaducidad {
		porID[a.ProductoID] = a
	}
	assert.True(t, porID[1].Vencido)
	assert.Equal(t, -2, porID[1].DiasRestantes)
	assert.Equal(t, "rojo", porID[2].Nivel)
	assert.Equal(t, "amarillo", porID[3].Nivel)

	// El yogur aparece en ambos paneles a la vez.
	require.Len(t, resumen.StockBajo, 2)
	assert.Equal(t, 1, resumen.StockBajo[0].ProductoID)
	assert.Equal(t, 5, resumen.StockBajo[1].ProductoID)
}

func TestResumen_UltimosCincoMovimientos(t *testing.T) {
	api := &servicioFalso{}
	for i := 1; i <= 8; i++ {
		api.movimientos = append(api.movimientos, entity.Movimiento{
			ID:    i,
			Tipo:  entity.TipoEntrada,
			Fecha: hoy.Add(time.Duration(i) * time.Minute),
		})
	}
	uc := NewDashboardUseCase(api, 10, 30)
	uc.ahora = func() time.Time { return hoy }

	resumen, err := uc.Resumen(context.Background(), sesionDePrueba())
	require.NoError(t, err)

	assert.Equal(t, 8, resumen.TotalMovimientos)
	require.Len(t, resumen.UltimosMovimientos, 5)
	// Más reciente primero: ids 8..4.
	for i, m := range resumen.UltimosMovimientos {
		assert.Equal(t, 8-i, m.ID)
	}
}

func TestResumen_SinSesion(t *testing.T) {
	uc := NewDashboardUseCase(&servicioFalso{}, 10, 30)
	_, err := uc.Resumen(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}

func fechaStr(n int) *string {
	s := hoy.AddDate(0, 0, n).Format("2006-01-02")
	return &s
}

func TestAlertas_ClasificaYOrdena(t *testing.T) {
	api := &servicioFalso{
		alertas: dto.AlertasRemotas{
			AlertaRoja: []dto.ProductoDTO{
				{ID: 1, Nombre: "Yogur", FechaCaducidad: fechaStr(-1)},
				{ID: 2, Nombre: "Queso", FechaCaducidad: fechaStr(6)},
			},
			AlertaAmarilla: []dto.ProductoDTO{
				{ID: 3, Nombre: "Pan", FechaCaducidad: fechaStr(20)},
				{ID: 4, Nombre: "Sal", FechaCaducidad: nil},
			},
		},
	}
	uc := NewCampanaUseCase(api, 5*time.Minute)
	uc.ahora = func() time.Time { return hoy }

	alertas, err := uc.Alertas(context.Background(), sesionDePrueba(), false)
	require.NoError(t, err)
	require.Len(t, alertas, 4)

	// Orden por fecha ascendente; sin fecha al final.
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		alertas[0].ProductoID, alertas[1].ProductoID,
		alertas[2].ProductoID, alertas[3].ProductoID,
	})

	assert.Equal(t, "alerta_roja", alertas[0].Tipo)
	assert.True(t, alertas[0].Vencida)
	assert.Equal(t, -1, alertas[0].DiasRestantes)

	assert.Equal(t, "alerta_roja", alertas[1].Tipo)
	assert.False(t, alertas[1].Vencida)

	assert.Equal(t, "alerta_amarilla", alertas[2].Tipo)
	assert.Equal(t, "alerta_amarilla", alertas[3].Tipo, "sin fecha queda en amarilla")
}

func TestAlertas_CacheConTTL(t *testing.T) {
	api := &servicioFalso{}
	uc := NewCampanaUseCase(api, 5*time.Minute)
	ahora := hoy
	uc.ahora = func() time.Time { return ahora }
	sesion := sesionDePrueba()

	_, err := uc.Alertas(context.Background(), sesion, false)
	require.NoError(t, err)
	_, err = uc.Alertas(context.Background(), sesion, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.lecturasAler, "dentro del TTL se sirve de la caché")

	// forzar=true ignora la caché aunque no haya expirado.
	_, err = uc.Alertas(context.Background(), sesion, true)
	require.NoError(t, err)
	assert.Equal(t, 2, api.lecturasAler)

	// Pasado el TTL se vuelve a leer.
	ahora = hoy.Add(6 * time.Minute)
	_, err = uc.Alertas(context.Background(), sesion, false)
	require.NoError(t, err)
	assert.Equal(t, 3, api.lecturasAler)
}

func TestAlertas_InvalidarDescartaLaCache(t *testing.T) {
	api := &servicioFalso{}
	uc := NewCampanaUseCase(api, 5*time.Minute)
	uc.ahora = func() time.Time { return hoy }
	sesion := sesionDePrueba()

	_, err := uc.Alertas(context.Background(), sesion, false)
	require.NoError(t, err)
	uc.Invalidar(sesion.ID)
	_, err = uc.Alertas(context.Background(), sesion, false)
	require.NoError(t, err)
	assert.Equal(t, 2, api.lecturasAler)
}

func TestAlertas_SinSesion(t *testing.T) {
	uc := NewCampanaUseCase(&servicioFalso{}, time.Minute)
	_, err := uc.Alertas(context.Background(), nil, false)
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}
