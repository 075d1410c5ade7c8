package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/auth"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/application/reports"
	infrareport "github.com/jhoicas/inventario-web/internal/infrastructure/report"
	"github.com/jhoicas/inventario-web/internal/infrastructure/restapi"
	"github.com/jhoicas/inventario-web/internal/infrastructure/sessionstore"
	httpRouter "github.com/jhoicas/inventario-web/internal/interfaces/http"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando gateway")

	sesiones, err := sessionstore.New(cfg.Sesiones.RutaDB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento de sesiones")
	}
	defer sesiones.Close()

	api := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)

	authUC := auth.NewUseCase(api, sesiones, cfg.Sesiones.Duracion(), log)
	productoUC := inventory.NewProductoUseCase(api)
	movimientosUC := inventory.NewMovimientoUseCase(api)
	registrarUC := inventory.NewRegistrarMovimientoUseCase(api, log)
	dashboardUC := analytics.NewDashboardUseCase(api, cfg.Alertas.UmbralStockBajo, cfg.Alertas.VentanaCaducidadDias)
	campanaUC := analytics.NewCampanaUseCase(api, cfg.Alertas.RefrescoCampana())
	reportesUC := reports.NewUseCase(
		dashboardUC, movimientosUC,
		infrareport.NewMarotoAlertas(), infrareport.NewExcelMovimientos(),
	)

	// Tareas de fondo: purga de caché de la campana y de sesiones vencidas.
	// Se detienen al cancelar el contexto durante el apagado.
	fondoCtx, detenerFondo := context.WithCancel(context.Background())
	defer detenerFondo()
	go campanaUC.IniciarJanitor(fondoCtx)
	go purgarSesiones(fondoCtx, authUC, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Web Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductoUC:  productoUC,
		Movimientos: movimientosUC,
		Registrar:   registrarUC,
		DashboardUC: dashboardUC,
		CampanaUC:   campanaUC,
		ReportesUC:  reportesUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	detenerFondo()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("gateway detenido")
}

// purgarSesiones elimina cada hora las sesiones vencidas del almacenamiento.
func purgarSesiones(ctx context.Context, authUC *auth.UseCase, log *logger.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := authUC.PurgarExpiradas(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("purga de sesiones vencidas")
				continue
			}
			if n > 0 {
				log.Info().Int64("eliminadas", n).Msg("sesiones vencidas purgadas")
			}
		}
	}
}
