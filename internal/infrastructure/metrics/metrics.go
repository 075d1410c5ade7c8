// Package metrics expone los contadores Prometheus del gateway. Se
// publican en GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovimientosRegistrados movimientos aplicados con éxito, por tipo.
	MovimientosRegistrados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_movimientos_registrados_total",
		Help: "Movimientos de stock registrados con éxito.",
	}, []string{"tipo"})

	// MovimientosRechazados movimientos rechazados antes o durante el
	// registro, por motivo (validacion, stock_insuficiente, remoto,
	// stock_no_actualizado).
	MovimientosRechazados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_movimientos_rechazados_total",
		Help: "Movimientos de stock rechazados o fallidos.",
	}, []string{"motivo"})

	// RefrescosCampana lecturas del endpoint remoto de alertas hechas por
	// la campana de notificaciones (no cuenta aciertos de caché).
	RefrescosCampana = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_campana_refrescos_total",
		Help: "Refrescos de alertas de caducidad contra el servicio remoto.",
	})

	// PeticionesRemotas llamadas HTTP al servicio remoto de inventario,
	// por método y resultado (ok, error, no_autorizado).
	PeticionesRemotas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_peticiones_remotas_total",
		Help: "Llamadas HTTP al servicio remoto de inventario.",
	}, []string{"metodo", "resultado"})
)
