// Package config lee la configuración del gateway vía Viper desde
// variables de entorno y, opcionalmente, un archivo .env.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	API      APIConfig
	Sesiones SesionesConfig
	Alertas  AlertasConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig servidor HTTP del gateway.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig servicio remoto de inventario.
type APIConfig struct {
	BaseURL         string // ej. https://inventario.example.com/api
	TimeoutSegundos int
}

// Timeout devuelve el timeout de red para las llamadas al servicio remoto.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSegundos) * time.Second
}

// SesionesConfig almacenamiento local duradero de sesiones.
type SesionesConfig struct {
	RutaDB        string // archivo SQLite; ":memory:" en tests
	DuracionHoras int    // vigencia por defecto si el token no trae exp
}

// Duracion devuelve la vigencia por defecto de una sesión.
func (c SesionesConfig) Duracion() time.Duration {
	return time.Duration(c.DuracionHoras) * time.Hour
}

// AlertasConfig umbrales del clasificador de alertas.
type AlertasConfig struct {
	UmbralStockBajo         int // cantidad <= umbral marca stock bajo
	VentanaCaducidadDias    int // horizonte del nivel amarillo
	RefrescoCampanaSegundos int // TTL de la caché de la campana
}

// RefrescoCampana devuelve el TTL de la caché de alertas de la campana.
func (c AlertasConfig) RefrescoCampana() time.Duration {
	return time.Duration(c.RefrescoCampanaSegundos) * time.Second
}

// Load lee la configuración. Las env vars tienen prioridad sobre el
// archivo; nombres esperados: APP_ENV, HTTP_PORT, API_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "inventario-web")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 3000)
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("API_TIMEOUT_SECONDS", 15)
	v.SetDefault("SESSION_DB_PATH", "sesiones.db")
	v.SetDefault("SESSION_HOURS", 24)
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("EXPIRATION_WINDOW_DAYS", 30)
	v.SetDefault("BELL_REFRESH_SECONDS", 300)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		API: APIConfig{
			BaseURL:         v.GetString("API_BASE_URL"),
			TimeoutSegundos: v.GetInt("API_TIMEOUT_SECONDS"),
		},
		Sesiones: SesionesConfig{
			RutaDB:        v.GetString("SESSION_DB_PATH"),
			DuracionHoras: v.GetInt("SESSION_HOURS"),
		},
		Alertas: AlertasConfig{
			UmbralStockBajo:         v.GetInt("LOW_STOCK_THRESHOLD"),
			VentanaCaducidadDias:    v.GetInt("EXPIRATION_WINDOW_DAYS"),
			RefrescoCampanaSegundos: v.GetInt("BELL_REFRESH_SECONDS"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL es obligatorio")
	}
	return cfg, nil
}
