package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoAutenticado          = errors.New("autenticación requerida")
	ErrProductoNoEncontrado   = errors.New("producto no encontrado")
	ErrCantidadInvalida       = errors.New("la cantidad debe ser un número entero mayor que cero")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento inválido")
	ErrMovimientoInmutable    = errors.New("los movimientos son un registro histórico y no pueden modificarse")
	ErrSesionInvalida         = errors.New("sesión inválida o expirada")
	ErrAccesoDenegado         = errors.New("acceso denegado")
)

// ErrStockInsuficiente se produce cuando una salida pide más unidades de
// las disponibles. Conserva el stock actual para el mensaje al usuario.
type ErrStockInsuficiente struct {
	StockActual int
}

func (e *ErrStockInsuficiente) Error() string {
	return fmt.Sprintf("Stock insuficiente. Solo hay %d unidades disponibles.", e.StockActual)
}

// ErrStockNoActualizado señala el estado inconsistente conocido del flujo
// de movimientos: el movimiento quedó registrado en el servicio remoto pero
// la actualización de stock del producto falló. No hay compensación; se
// reporta distinto de un fallo del primer paso (donde nada cambió).
type ErrStockNoActualizado struct {
	MovimientoID int
	Causa        error
}

func (e *ErrStockNoActualizado) Error() string {
	return fmt.Sprintf("el movimiento %d quedó registrado pero el stock no pudo actualizarse: %v", e.MovimientoID, e.Causa)
}

func (e *ErrStockNoActualizado) Unwrap() error { return e.Causa }
