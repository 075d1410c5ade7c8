package dto

import "github.com/shopspring/decimal"

// ProductoDTO representación de un producto para la UI.
type ProductoDTO struct {
	ID             int             `json:"id_producto"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	FechaCaducidad *string         `json:"fecha_caducidad"` // YYYY-MM-DD o null
	Ubicacion      string          `json:"ubicacion"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	FechaIngreso   *string         `json:"fecha_ingreso,omitempty"`
}

// ProductoPayload campos de producto para crear o actualizar (sin id).
// FechaCaducidad viaja como fecha calendario plana YYYY-MM-DD; null borra
// la fecha.
type ProductoPayload struct {
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	FechaCaducidad *string         `json:"fecha_caducidad"`
	Ubicacion      string          `json:"ubicacion"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
}
