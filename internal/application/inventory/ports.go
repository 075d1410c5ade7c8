package inventory

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// ServicioInventario es el puerto de salida hacia el Servicio Remoto de
// Inventario (la API REST dueña de los datos). Todas las operaciones
// reciben el token bearer de la sesión que las ejecuta; el gateway solo
// mantiene copias transitorias, posiblemente desactualizadas, de lo que
// devuelven las lecturas.
type ServicioInventario interface {
	// ListarProductos devuelve el snapshot de productos (GET /productos).
	ListarProductos(ctx context.Context, token string) ([]entity.Producto, error)
	// ObtenerProducto devuelve un producto por id (GET /productos/{id}).
	ObtenerProducto(ctx context.Context, token string, id int) (*entity.Producto, error)
	// CrearProducto crea un producto (POST /productos).
	CrearProducto(ctx context.Context, token string, p dto.ProductoPayload) (*entity.Producto, error)
	// ActualizarProducto reemplaza los campos del producto, incluida la
	// cantidad calculada (PUT /productos/{id}).
	ActualizarProducto(ctx context.Context, token string, id int, p dto.ProductoPayload) (*entity.Producto, error)
	// EliminarProducto borra un producto (DELETE /productos/{id}). La
	// autorización real la aplica el servicio remoto.
	EliminarProducto(ctx context.Context, token string, id int) error
	// ObtenerAlertas devuelve los dos grupos de alerta del servicio
	// remoto (GET /productos/alertas).
	ObtenerAlertas(ctx context.Context, token string) (*dto.AlertasRemotas, error)
	// ListarMovimientos devuelve el historial completo (GET /movimientos).
	ListarMovimientos(ctx context.Context, token string) ([]entity.Movimiento, error)
	// CrearMovimiento registra el hecho histórico (POST /movimientos).
	CrearMovimiento(ctx context.Context, token string, m dto.MovimientoPayload) (*entity.Movimiento, error)
}
