// Package http expone la API del gateway hacia la interfaz de usuario:
// los mismos recursos que el servicio remoto, con la sesión gestionada
// por cookie en lugar de token en cada petición.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/auth"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductoUC  *inventory.ProductoUseCase
	Movimientos *inventory.MovimientoUseCase
	Registrar   *inventory.RegistrarMovimientoUseCase
	DashboardUC *analytics.DashboardUseCase
	CampanaUC   *analytics.CampanaUseCase
	ReportesUC  *reports.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	resp := NewResponder(deps.AuthUC, deps.CampanaUC)
	api := app.Group("/api")

	// Auth (público salvo me/logout, que necesitan la cookie)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CampanaUC, resp)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren sesión restaurable)
	protected := api.Group("/", SesionMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)

	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, resp)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", RequiereAdmin(), productoHandler.Delete)

	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.Movimientos, deps.Registrar, resp)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Post("/", movimientoHandler.Create)
	movimientos.Put("/:id", movimientoHandler.Reject)
	movimientos.Delete("/:id", movimientoHandler.Reject)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.CampanaUC, resp)
	protected.Get("/dashboard", dashboardHandler.Resumen)
	protected.Get("/alertas", dashboardHandler.Alertas)

	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReportesUC, resp)
	reportes.Get("/alertas.pdf", reporteHandler.AlertasPDF)
	reportes.Get("/movimientos.xlsx", reporteHandler.MovimientosXLSX)

	// Métricas Prometheus (fuera de /api, sin sesión)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
