package restapi

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// productoWire forma en el cable de un producto. Las fechas llegan como
// string (a veces fecha plana, a veces ISO con hora y zona).
type productoWire struct {
	ID             int             `json:"id_producto"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	FechaCaducidad *string         `json:"fecha_caducidad"`
	Ubicacion      string          `json:"ubicacion"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	FechaIngreso   *string         `json:"fecha_ingreso"`
}

func (w productoWire) aEntidad() entity.Producto {
	return entity.Producto{
		ID:             w.ID,
		Nombre:         w.Nombre,
		Cantidad:       w.Cantidad,
		FechaCaducidad: parseFecha(w.FechaCaducidad),
		Ubicacion:      w.Ubicacion,
		PrecioCosto:    w.PrecioCosto,
		PrecioVenta:    w.PrecioVenta,
		FechaIngreso:   parseFecha(w.FechaIngreso),
	}
}

// parseFecha interpreta la fecha del backend quedándose con la parte
// calendario (YYYY-MM-DD), descartando hora y zona si vienen.
func parseFecha(s *string) *time.Time {
	if s == nil || len(*s) < 10 {
		return nil
	}
	t, err := time.Parse("2006-01-02", (*s)[:10])
	if err != nil {
		return nil
	}
	return &t
}

// ListarProductos implementa GET /productos.
func (c *Client) ListarProductos(ctx context.Context, token string) ([]entity.Producto, error) {
	var wire []productoWire
	if err := c.do(ctx, "GET", "/productos", token, nil, &wire); err != nil {
		return nil, err
	}
	productos := make([]entity.Producto, 0, len(wire))
	for _, w := range wire {
		productos = append(productos, w.aEntidad())
	}
	return productos, nil
}

// ObtenerProducto implementa GET /productos/{id}.
func (c *Client) ObtenerProducto(ctx context.Context, token string, id int) (*entity.Producto, error) {
	var wire productoWire
	if err := c.do(ctx, "GET", fmt.Sprintf("/productos/%d", id), token, nil, &wire); err != nil {
		return nil, err
	}
	p := wire.aEntidad()
	return &p, nil
}

// CrearProducto implementa POST /productos.
func (c *Client) CrearProducto(ctx context.Context, token string, payload dto.ProductoPayload) (*entity.Producto, error) {
	var wire productoWire
	if err := c.do(ctx, "POST", "/productos", token, payload, &wire); err != nil {
		return nil, err
	}
	p := wire.aEntidad()
	return &p, nil
}

// ActualizarProducto implementa PUT /productos/{id} con los campos
// completos del producto, incluida la cantidad calculada.
func (c *Client) ActualizarProducto(ctx context.Context, token string, id int, payload dto.ProductoPayload) (*entity.Producto, error) {
	var wire productoWire
	if err := c.do(ctx, "PUT", fmt.Sprintf("/productos/%d", id), token, payload, &wire); err != nil {
		return nil, err
	}
	p := wire.aEntidad()
	return &p, nil
}

// EliminarProducto implementa DELETE /productos/{id}.
func (c *Client) EliminarProducto(ctx context.Context, token string, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/productos/%d", id), token, nil, nil)
}

// ObtenerAlertas implementa GET /productos/alertas.
func (c *Client) ObtenerAlertas(ctx context.Context, token string) (*dto.AlertasRemotas, error) {
	var wire struct {
		AlertaRoja     []productoWire `json:"alerta_roja"`
		AlertaAmarilla []productoWire `json:"alerta_amarilla"`
	}
	if err := c.do(ctx, "GET", "/productos/alertas", token, nil, &wire); err != nil {
		return nil, err
	}
	out := &dto.AlertasRemotas{
		AlertaRoja:     make([]dto.ProductoDTO, 0, len(wire.AlertaRoja)),
		AlertaAmarilla: make([]dto.ProductoDTO, 0, len(wire.AlertaAmarilla)),
	}
	for _, w := range wire.AlertaRoja {
		out.AlertaRoja = append(out.AlertaRoja, dto.DesdeProducto(w.aEntidad()))
	}
	for _, w := range wire.AlertaAmarilla {
		out.AlertaAmarilla = append(out.AlertaAmarilla, dto.DesdeProducto(w.aEntidad()))
	}
	return out, nil
}
