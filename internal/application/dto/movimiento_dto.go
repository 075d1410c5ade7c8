package dto

// RegistrarMovimientoRequest entrada del formulario de movimiento.
type RegistrarMovimientoRequest struct {
	Tipo       string `json:"tipo"`        // entrada | salida
	Cantidad   int    `json:"cantidad"`    // entero positivo
	ProductoID int    `json:"id_producto"`
}

// MovimientoPayload cuerpo de POST /movimientos hacia el servicio remoto.
type MovimientoPayload struct {
	ProductoID int    `json:"id_producto"`
	Tipo       string `json:"tipo"`
	Cantidad   int    `json:"cantidad"`
	UsuarioID  int    `json:"id_usuario"`
}

// MovimientoDTO representación de un movimiento para la UI, con los
// nombres denormalizados que devuelve el servicio remoto.
type MovimientoDTO struct {
	ID             int    `json:"id_movimiento"`
	ProductoID     int    `json:"id_producto"`
	Tipo           string `json:"tipo"`
	Cantidad       int    `json:"cantidad"`
	UsuarioID      int    `json:"id_usuario"`
	Fecha          string `json:"fecha"` // RFC 3339
	NombreProducto string `json:"nombre_producto,omitempty"`
	NombreUsuario  string `json:"nombre_usuario,omitempty"`
}

// RegistrarMovimientoResponse confirmación del registro con el stock
// resultante, para que la UI lo muestre y refresque sus listas.
type RegistrarMovimientoResponse struct {
	Mensaje      string `json:"mensaje"`
	MovimientoID int    `json:"id_movimiento"`
	NuevoStock   int    `json:"nuevo_stock"`
}
