package restapi

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// movimientoWire forma en el cable de un movimiento, con los nombres
// denormalizados que el backend agrega en el listado.
type movimientoWire struct {
	ID             int    `json:"id_movimiento"`
	ProductoID     int    `json:"id_producto"`
	Tipo           string `json:"tipo"`
	Cantidad       int    `json:"cantidad"`
	UsuarioID      int    `json:"id_usuario"`
	Fecha          string `json:"fecha"`
	NombreProducto string `json:"nombre_producto"`
	NombreUsuario  string `json:"nombre_usuario"`
}

func (w movimientoWire) aEntidad() entity.Movimiento {
	return entity.Movimiento{
		ID:             w.ID,
		ProductoID:     w.ProductoID,
		Tipo:           w.Tipo,
		Cantidad:       w.Cantidad,
		UsuarioID:      w.UsuarioID,
		Fecha:          parseFechaHora(w.Fecha),
		NombreProducto: w.NombreProducto,
		NombreUsuario:  w.NombreUsuario,
	}
}

// parseFechaHora interpreta el timestamp del movimiento; acepta RFC 3339,
// el formato SQL sin zona y la fecha plana. Un valor ilegible queda en
// cero y se ordena al final del historial.
func parseFechaHora(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ListarMovimientos implementa GET /movimientos. El backend envuelve la
// lista en un sobre {"data": [...]}.
func (c *Client) ListarMovimientos(ctx context.Context, token string) ([]entity.Movimiento, error) {
	var wire struct {
		Data []movimientoWire `json:"data"`
	}
	if err := c.do(ctx, "GET", "/movimientos", token, nil, &wire); err != nil {
		return nil, err
	}
	movimientos := make([]entity.Movimiento, 0, len(wire.Data))
	for _, w := range wire.Data {
		movimientos = append(movimientos, w.aEntidad())
	}
	return movimientos, nil
}

// CrearMovimiento implementa POST /movimientos.
func (c *Client) CrearMovimiento(ctx context.Context, token string, payload dto.MovimientoPayload) (*entity.Movimiento, error) {
	var wire movimientoWire
	if err := c.do(ctx, "POST", "/movimientos", token, payload, &wire); err != nil {
		return nil, err
	}
	m := wire.aEntidad()
	return &m, nil
}
