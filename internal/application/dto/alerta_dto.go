package dto

// AlertasRemotas respuesta de GET /productos/alertas del servicio remoto.
type AlertasRemotas struct {
	AlertaRoja     []ProductoDTO `json:"alerta_roja"`
	AlertaAmarilla []ProductoDTO `json:"alerta_amarilla"`
}

// AlertaCampanaDTO notificación de la campana: clasificación visual de dos
// niveles (roja/amarilla) con sub-estado terminal "vencida" dentro de la
// roja. Ordenadas por fecha de caducidad ascendente (la más próxima primero).
type AlertaCampanaDTO struct {
	ProductoID     int    `json:"id_producto"`
	Nombre         string `json:"nombre"`
	FechaCaducidad string `json:"fecha_caducidad"`
	DiasRestantes  int    `json:"dias_restantes"`
	Tipo           string `json:"tipo"` // alerta_roja | alerta_amarilla
	Vencida        bool   `json:"vencida"`
}
