// Package reports contiene los casos de uso de exportación: el resumen de
// alertas en PDF y el historial de movimientos en Excel.
package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// GeneradorPDFAlertas puerto de salida para la representación PDF del
// resumen de alertas. La implementación concreta usa Maroto.
type GeneradorPDFAlertas interface {
	Generar(ctx context.Context, resumen *dto.DashboardDTO) ([]byte, error)
}

// ExportadorMovimientos puerto de salida para el export XLSX del historial.
// La implementación concreta usa excelize.
type ExportadorMovimientos interface {
	Exportar(movimientos []dto.MovimientoDTO) ([]byte, error)
}

// UseCase orquesta los exports: reutiliza el dashboard para el estado
// actual de alertas y el listado de movimientos para el historial.
type UseCase struct {
	dashboard   *analytics.DashboardUseCase
	movimientos *inventory.MovimientoUseCase
	pdf         GeneradorPDFAlertas
	excel       ExportadorMovimientos
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	dashboard *analytics.DashboardUseCase,
	movimientos *inventory.MovimientoUseCase,
	pdf GeneradorPDFAlertas,
	excel ExportadorMovimientos,
) *UseCase {
	return &UseCase{dashboard: dashboard, movimientos: movimientos, pdf: pdf, excel: excel}
}

// AlertasPDF genera el informe de alertas del momento en PDF.
func (uc *UseCase) AlertasPDF(ctx context.Context, sesion *entity.Sesion) ([]byte, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	resumen, err := uc.dashboard.Resumen(ctx, sesion)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdf.Generar(ctx, resumen)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de alertas: %w", err)
	}
	return pdf, nil
}

// MovimientosXLSX exporta el historial completo de movimientos a Excel.
func (uc *UseCase) MovimientosXLSX(ctx context.Context, sesion *entity.Sesion) ([]byte, error) {
	if sesion == nil {
		return nil, domain.ErrNoAutenticado
	}
	movimientos, err := uc.movimientos.Listar(ctx, sesion)
	if err != nil {
		return nil, err
	}
	xlsx, err := uc.excel.Exportar(movimientos)
	if err != nil {
		return nil, fmt.Errorf("exportar movimientos a Excel: %w", err)
	}
	return xlsx, nil
}
