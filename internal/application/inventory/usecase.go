package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// ProductoUseCase operaciones CRUD de productos: pasan directo al servicio
// remoto con el token de la sesión. El gateway no persiste nada.
type ProductoUseCase struct {
	api ServicioInventario
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(api ServicioInventario) *ProductoUseCase {
	return &ProductoUseCase{api: api}
}

// Listar devuelve el snapshot actual de productos.
func (uc *ProductoUseCase) Listar(ctx context.Context, sesion *entity.Sesion) ([]dto.ProductoDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	productos, err := uc.api.ListarProductos(ctx, sesion.Token)
	if err != nil {
		return nil, err
	}
	return dto.DesdeProductos(productos), nil
}

// Obtener devuelve un producto por id.
func (uc *ProductoUseCase) Obtener(ctx context.Context, sesion *entity.Sesion, id int) (*dto.ProductoDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	p, err := uc.api.ObtenerProducto(ctx, sesion.Token, id)
	if err != nil {
		return nil, err
	}
	out := dto.DesdeProducto(*p)
	return &out, nil
}

// Crear da de alta un producto nuevo.
func (uc *ProductoUseCase) Crear(ctx context.Context, sesion *entity.Sesion, payload dto.ProductoPayload) (*dto.ProductoDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	if payload.Cantidad < 0 {
		return nil, domain.ErrCantidadInvalida
	}
	p, err := uc.api.CrearProducto(ctx, sesion.Token, payload)
	if err != nil {
		return nil, err
	}
	out := dto.DesdeProducto(*p)
	return &out, nil
}

// Actualizar edita un producto en el servicio remoto.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, sesion *entity.Sesion, id int, payload dto.ProductoPayload) (*dto.ProductoDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	if payload.Cantidad < 0 {
		return nil, domain.ErrCantidadInvalida
	}
	p, err := uc.api.ActualizarProducto(ctx, sesion.Token, id, payload)
	if err != nil {
		return nil, err
	}
	out := dto.DesdeProducto(*p)
	return &out, nil
}

// Eliminar borra un producto. El chequeo de rol aquí es de presentación;
// el servicio remoto vuelve a validar que el usuario sea administrador.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, sesion *entity.Sesion, id int) error {
	if sesion == nil {
		return domain.ErrNoAutenticado
	}
	if !sesion.Usuario.PuedeEliminarProductos() {
		return domain.ErrAccesoDenegado
	}
	return uc.api.EliminarProducto(ctx, sesion.Token, id)
}

// MovimientoUseCase operaciones de lectura del historial de movimientos.
// Los movimientos son inmutables: no existe edición ni borrado.
type MovimientoUseCase struct {
	api ServicioInventario
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(api ServicioInventario) *MovimientoUseCase {
	return &MovimientoUseCase{api: api}
}

// Listar devuelve el historial completo, más reciente primero.
func (uc *MovimientoUseCase) Listar(ctx context.Context, sesion *entity.Sesion) ([]dto.MovimientoDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	movimientos, err := uc.api.ListarMovimientos(ctx, sesion.Token)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movimientos, func(i, j int) bool {
		return movimientos[i].Fecha.After(movimientos[j].Fecha)
	})
	out := make([]dto.MovimientoDTO, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, dto.DesdeMovimiento(m))
	}
	return out, nil
}
