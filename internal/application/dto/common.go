package dto

// ErrorResponse estructura estándar de error de la API del gateway.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta simple con mensaje de confirmación.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
