package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario tal como lo expone el
// servicio remoto. Cantidad es la fuente de verdad del stock: nunca se
// deriva sumando movimientos en este cliente.
type Producto struct {
	ID             int
	Nombre         string
	Cantidad       int        // stock actual, siempre >= 0
	FechaCaducidad *time.Time // nil = sin fecha de caducidad
	Ubicacion      string
	PrecioCosto    decimal.Decimal
	PrecioVenta    decimal.Decimal
	FechaIngreso   *time.Time
}

// FechaCaducidadSQL devuelve la fecha de caducidad como YYYY-MM-DD,
// descartando hora y zona horaria. El backend espera una fecha calendario
// plana en los payloads de actualización; nil si no hay fecha.
func (p *Producto) FechaCaducidadSQL() *string {
	if p.FechaCaducidad == nil {
		return nil
	}
	s := p.FechaCaducidad.Format("2006-01-02")
	return &s
}
