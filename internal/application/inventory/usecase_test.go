package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

func TestMovimientoListar_MasRecientePrimero(t *testing.T) {
	base := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	api := &apiFalsa{movimientos: []entity.Movimiento{
		{ID: 1, Tipo: entity.TipoEntrada, Fecha: base},
		{ID: 2, Tipo: entity.TipoSalida, Fecha: base.Add(2 * time.Hour)},
		{ID: 3, Tipo: entity.TipoEntrada, Fecha: base.Add(time.Hour)},
	}}
	uc := inventory.NewMovimientoUseCase(api)

	out, err := uc.Listar(context.Background(), sesionDePrueba())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{out[0].ID, out[1].ID, out[2].ID})
}

func TestMovimientoListar_SinSesion(t *testing.T) {
	uc := inventory.NewMovimientoUseCase(&apiFalsa{})
	_, err := uc.Listar(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoAutenticado)
}

func TestProductoEliminar_RequiereAdministrador(t *testing.T) {
	api := apiConProducto(10)
	uc := inventory.NewProductoUseCase(api)

	err := uc.Eliminar(context.Background(), sesionDePrueba(), 42)
	assert.ErrorIs(t, err, domain.ErrAccesoDenegado)

	admin := sesionDePrueba()
	admin.Usuario.Rol = entity.RolAdmin
	assert.NoError(t, uc.Eliminar(context.Background(), admin, 42))
}

func TestProductoCrear_RechazaCantidadNegativa(t *testing.T) {
	uc := inventory.NewProductoUseCase(&apiFalsa{})
	_, err := uc.Crear(context.Background(), sesionDePrueba(), dto.ProductoPayload{
		Nombre: "Harina", Cantidad: -1,
	})
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
}
