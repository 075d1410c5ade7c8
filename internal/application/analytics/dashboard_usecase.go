// Package analytics contiene los casos de uso de lectura agregada: el
// resumen del dashboard y la campana de notificaciones de caducidad.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/alerts"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

const ultimosMovimientos = 5 // tamaño del widget de actividad reciente

// DashboardUseCase construye el resumen del inventario: contadores
// agregados, alertas de caducidad, stock bajo y últimos movimientos.
// Es una función pura de (productos, movimientos, umbrales, fecha actual):
// todo se recalcula desde el snapshot en cada pasada.
type DashboardUseCase struct {
	api             inventory.ServicioInventario
	umbralStockBajo int
	ventanaDias     int
	ahora           func() time.Time
}

// NewDashboardUseCase construye el caso de uso con los umbrales
// configurados (por defecto stock bajo 10, ventana 30 días).
func NewDashboardUseCase(api inventory.ServicioInventario, umbralStockBajo, ventanaDias int) *DashboardUseCase {
	return &DashboardUseCase{
		api:             api,
		umbralStockBajo: umbralStockBajo,
		ventanaDias:     ventanaDias,
		ahora:           time.Now,
	}
}

// Resumen carga productos y movimientos (en paralelo, no dependen entre
// sí) y clasifica. Un producto puede aparecer a la vez en el panel de
// caducidad y en el de stock bajo.
func (uc *DashboardUseCase) Resumen(ctx context.Context, sesion *entity.Sesion) (*dto.DashboardDTO, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}

	type productosResult struct {
		productos []entity.Producto
		err       error
	}
	type movimientosResult struct {
		movimientos []entity.Movimiento
		err         error
	}
	prodCh := make(chan productosResult, 1)
	movCh := make(chan movimientosResult, 1)

	go func() {
		ps, err := uc.api.ListarProductos(ctx, sesion.Token)
		prodCh <- productosResult{ps, err}
	}()
	go func() {
		ms, err := uc.api.ListarMovimientos(ctx, sesion.Token)
		movCh <- movimientosResult{ms, err}
	}()

	prod := <-prodCh
	mov := <-movCh
	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prod.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", mov.err)
	}

	hoy := uc.ahora()
	resumen := &dto.DashboardDTO{
		AlertasCaducidad:   []dto.AlertaCaducidadDTO{},
		StockBajo:          []dto.StockBajoDTO{},
		UltimosMovimientos: []dto.MovimientoDTO{},
		TotalMovimientos:   len(mov.movimientos),
	}

	for _, p := range prod.productos {
		resumen.StockTotal += p.Cantidad

		nivel, dias := alerts.Clasificar(p.FechaCaducidad, hoy, uc.ventanaDias)
		switch nivel {
		case alerts.NivelVencido:
			resumen.ProductosVencidos++
			fallthrough
		case alerts.NivelRojo, alerts.NivelAmarillo:
			resumen.AlertasCaducidad = append(resumen.AlertasCaducidad, dto.AlertaCaducidadDTO{
				ProductoID:     p.ID,
				Nombre:         p.Nombre,
				Cantidad:       p.Cantidad,
				FechaCaducidad: p.FechaCaducidad.Format("2006-01-02"),
				DiasRestantes:  dias,
				Vencido:        nivel == alerts.NivelVencido,
				Nivel:          nivel.String(),
			})
		}

		if alerts.StockBajo(p.Cantidad, uc.umbralStockBajo) {
			resumen.ProductosStockBajo++
			resumen.StockBajo = append(resumen.StockBajo, dto.StockBajoDTO{
				ProductoID: p.ID,
				Nombre:     p.Nombre,
				Cantidad:   p.Cantidad,
			})
		}
	}

	// Actividad reciente: más nuevo primero, empates en orden estable.
	sort.SliceStable(mov.movimientos, func(i, j int) bool {
		return mov.movimientos[i].Fecha.After(mov.movimientos[j].Fecha)
	})
	for i, m := range mov.movimientos {
		if i == ultimosMovimientos {
			break
		}
		resumen.UltimosMovimientos = append(resumen.UltimosMovimientos, dto.DesdeMovimiento(m))
	}

	return resumen, nil
}
