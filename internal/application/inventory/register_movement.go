package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// RegistrarMovimientoUseCase convierte la intención de movimiento del
// usuario en el par de escrituras remotas del flujo original: primero el
// alta del movimiento (POST /movimientos) y después la actualización de
// stock del producto (PUT /productos/{id}), en ese orden y sin transacción
// coordinada. Si la segunda escritura falla el movimiento queda registrado
// sin efecto sobre el stock; ese hueco se reporta con ErrStockNoActualizado
// en lugar de ocultarse tras un error genérico.
//
// No hay bloqueo contra envíos concurrentes del mismo usuario ni token de
// versión sobre el producto: dos envíos simultáneos sobre un snapshot
// desactualizado pueden perder una actualización (lost update).
type RegistrarMovimientoUseCase struct {
	api ServicioInventario
	log *logger.Logger
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(api ServicioInventario, log *logger.Logger) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{api: api, log: log}
}

// ResultadoMovimiento resultado de un registro exitoso.
type ResultadoMovimiento struct {
	Movimiento *entity.Movimiento
	NuevoStock int
}

// Registrar valida la petición, calcula el stock resultante sobre el
// snapshot más reciente de productos y ejecuta las dos escrituras en
// secuencia. Las validaciones locales (sesión, cantidad, tipo) fallan
// antes de tocar la red.
func (uc *RegistrarMovimientoUseCase) Registrar(
	ctx context.Context,
	sesion *entity.Sesion,
	in dto.RegistrarMovimientoRequest,
) (*ResultadoMovimiento, error) {
	if sesion == nil || sesion.Usuario.ID == 0 {
		metrics.MovimientosRechazados.WithLabelValues("validacion").Inc()
		return nil, domain.ErrNoAutenticado
	}
	if in.Cantidad <= 0 {
		metrics.MovimientosRechazados.WithLabelValues("validacion").Inc()
		return nil, domain.ErrCantidadInvalida
	}
	if !entity.TipoValido(in.Tipo) {
		metrics.MovimientosRechazados.WithLabelValues("validacion").Inc()
		return nil, domain.ErrTipoMovimientoInvalido
	}

	// Snapshot de productos: única lectura antes de escribir. No hay
	// verificación de versión posterior sobre el servicio remoto.
	productos, err := uc.api.ListarProductos(ctx, sesion.Token)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot de productos: %w", err)
	}
	producto := buscarProducto(productos, in.ProductoID)
	if producto == nil {
		metrics.MovimientosRechazados.WithLabelValues("validacion").Inc()
		return nil, domain.ErrProductoNoEncontrado
	}

	stockActual := producto.Cantidad
	var nuevoStock int
	switch in.Tipo {
	case entity.TipoEntrada:
		nuevoStock = stockActual + in.Cantidad
	case entity.TipoSalida:
		if in.Cantidad > stockActual {
			metrics.MovimientosRechazados.WithLabelValues("stock_insuficiente").Inc()
			return nil, &domain.ErrStockInsuficiente{StockActual: stockActual}
		}
		nuevoStock = stockActual - in.Cantidad
	}

	op := uuid.New().String() // correlación de las dos escrituras en los logs
	log := uc.log.With().
		Str("op", op).
		Str("tipo", in.Tipo).
		Int("id_producto", in.ProductoID).
		Int("id_usuario", sesion.Usuario.ID).
		Logger()

	movPayload := dto.MovimientoPayload{
		ProductoID: in.ProductoID,
		Tipo:       in.Tipo,
		Cantidad:   in.Cantidad,
		UsuarioID:  sesion.Usuario.ID,
	}
	prodPayload := dto.ProductoPayload{
		Nombre:         producto.Nombre,
		Cantidad:       nuevoStock,
		FechaCaducidad: producto.FechaCaducidadSQL(),
		Ubicacion:      producto.Ubicacion,
		PrecioCosto:    producto.PrecioCosto,
		PrecioVenta:    producto.PrecioVenta,
	}

	// Primera escritura: alta del movimiento. Si falla, nada cambió.
	mov, err := uc.api.CrearMovimiento(ctx, sesion.Token, movPayload)
	if err != nil {
		metrics.MovimientosRechazados.WithLabelValues("remoto").Inc()
		log.Error().Err(err).Msg("fallo al registrar el movimiento; el stock no se tocó")
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}

	// Segunda escritura: stock del producto. Solo se intenta si la primera
	// tuvo éxito; si falla no hay compensación y el sistema queda con un
	// movimiento registrado cuyo efecto no se aplicó.
	if _, err := uc.api.ActualizarProducto(ctx, sesion.Token, in.ProductoID, prodPayload); err != nil {
		metrics.MovimientosRechazados.WithLabelValues("stock_no_actualizado").Inc()
		log.Error().Err(err).
			Int("id_movimiento", mov.ID).
			Msg("movimiento registrado pero la actualización de stock falló")
		return nil, &domain.ErrStockNoActualizado{MovimientoID: mov.ID, Causa: err}
	}

	metrics.MovimientosRegistrados.WithLabelValues(in.Tipo).Inc()
	log.Info().
		Int("id_movimiento", mov.ID).
		Int("stock_anterior", stockActual).
		Int("nuevo_stock", nuevoStock).
		Msg("movimiento registrado y stock actualizado")

	return &ResultadoMovimiento{Movimiento: mov, NuevoStock: nuevoStock}, nil
}

// EsFalloParcial indica si el error corresponde al estado inconsistente
// "movimiento registrado, stock sin actualizar".
func EsFalloParcial(err error) bool {
	var e *domain.ErrStockNoActualizado
	return errors.As(err, &e)
}

func buscarProducto(productos []entity.Producto, id int) *entity.Producto {
	for i := range productos {
		if productos[i].ID == id {
			return &productos[i]
		}
	}
	return nil
}
