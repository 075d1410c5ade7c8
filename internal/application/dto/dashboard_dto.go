package dto

// AlertaCaducidadDTO producto dentro del panel de caducidad del dashboard.
type AlertaCaducidadDTO struct {
	ProductoID     int    `json:"id_producto"`
	Nombre         string `json:"nombre"`
	Cantidad       int    `json:"cantidad"`
	FechaCaducidad string `json:"fecha_caducidad"` // YYYY-MM-DD
	DiasRestantes  int    `json:"dias_restantes"`  // negativo = días desde que caducó
	Vencido        bool   `json:"vencido"`
	Nivel          string `json:"nivel"` // vencido | rojo | amarillo
}

// StockBajoDTO producto bajo el umbral de reposición.
type StockBajoDTO struct {
	ProductoID int    `json:"id_producto"`
	Nombre     string `json:"nombre"`
	Cantidad   int    `json:"cantidad"`
}

// DashboardDTO resumen completo del inventario. Se recalcula desde cero en
// cada petición; no hay mantenimiento incremental.
type DashboardDTO struct {
	StockTotal         int                  `json:"stock_total"`
	ProductosVencidos  int                  `json:"productos_vencidos"`
	ProductosStockBajo int                  `json:"productos_stock_bajo"`
	TotalMovimientos   int                  `json:"total_movimientos"`
	AlertasCaducidad   []AlertaCaducidadDTO `json:"alertas_caducidad"`
	StockBajo          []StockBajoDTO       `json:"stock_bajo"`
	UltimosMovimientos []MovimientoDTO      `json:"ultimos_movimientos"`
}
