package entity

import "time"

// Tipos de movimiento de stock.
const (
	TipoEntrada = "entrada" // suma stock
	TipoSalida  = "salida"  // resta stock
)

// TipoValido indica si el tipo corresponde a un movimiento soportado.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSalida
}

// Movimiento es un hecho histórico de inventario: se crea una sola vez y
// nunca se modifica ni elimina. Incluye los nombres denormalizados que el
// servicio remoto agrega para el listado.
type Movimiento struct {
	ID             int
	ProductoID     int
	Tipo           string // entrada | salida
	Cantidad       int    // siempre positivo; el signo lo da Tipo
	UsuarioID      int
	Fecha          time.Time
	NombreProducto string
	NombreUsuario  string
}
