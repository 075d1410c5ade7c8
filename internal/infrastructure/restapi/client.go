// Package restapi implementa el cliente HTTP del Servicio Remoto de
// Inventario: el backend REST dueño de productos, movimientos y usuarios.
// Todas las peticiones llevan la credencial bearer de la sesión; una
// respuesta 401/403 se traduce a domain.ErrSesionInvalida para que el
// caller limpie el estado local de sesión.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// APIError error devuelto por el servicio remoto (respuesta no-2xx).
// Mensaje sale del cuerpo (`mensaje` o `error`) con un fallback genérico.
type APIError struct {
	Status  int
	Mensaje string
}

func (e *APIError) Error() string { return e.Mensaje }

// Client cliente del servicio remoto. Implementa inventory.ServicioInventario
// y auth.ServicioAuth.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente. baseURL sin barra final,
// ej. http://localhost:8080/api.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do ejecuta una petición JSON contra el servicio remoto. body y out
// pueden ser nil; token vacío omite la cabecera Authorization.
func (c *Client) do(ctx context.Context, metodo, ruta, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restapi: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+ruta, reader)
	if err != nil {
		return fmt.Errorf("restapi: construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.PeticionesRemotas.WithLabelValues(metodo, "error").Inc()
		return fmt.Errorf("restapi: %s %s: %w", metodo, ruta, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		metrics.PeticionesRemotas.WithLabelValues(metodo, "no_autorizado").Inc()
		c.log.Warn().Int("status", resp.StatusCode).Str("ruta", ruta).
			Msg("credencial rechazada por el servicio remoto")
		return fmt.Errorf("el servicio remoto rechazó la credencial: %w", domain.ErrSesionInvalida)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.PeticionesRemotas.WithLabelValues(metodo, "error").Inc()
		return c.errorDesdeRespuesta(resp)
	}
	metrics.PeticionesRemotas.WithLabelValues(metodo, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restapi: decodificar respuesta de %s: %w", ruta, err)
	}
	return nil
}

// errorDesdeRespuesta extrae el mejor mensaje disponible del cuerpo.
func (c *Client) errorDesdeRespuesta(resp *http.Response) error {
	cuerpo, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var parsed struct {
		Mensaje string `json:"mensaje"`
		Error   string `json:"error"`
	}
	mensaje := ""
	if err := json.Unmarshal(cuerpo, &parsed); err == nil {
		if parsed.Mensaje != "" {
			mensaje = parsed.Mensaje
		} else if parsed.Error != "" {
			mensaje = parsed.Error
		}
	}
	if mensaje == "" {
		mensaje = fmt.Sprintf("error %d del servicio de inventario", resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Mensaje: mensaje}
}
