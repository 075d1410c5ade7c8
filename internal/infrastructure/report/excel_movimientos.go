package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
)

// ExcelMovimientos implementa reports.ExportadorMovimientos usando
// excelize: una hoja con una fila por movimiento, más reciente primero.
type ExcelMovimientos struct{}

// NewExcelMovimientos construye el exportador.
func NewExcelMovimientos() *ExcelMovimientos { return &ExcelMovimientos{} }

// Exportar genera el libro XLSX y devuelve sus bytes.
func (e *ExcelMovimientos) Exportar(movimientos []dto.MovimientoDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id_movimiento",
		"fecha",
		"tipo",
		"cantidad",
		"id_producto",
		"producto",
		"usuario",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	fila := 2
	for _, m := range movimientos {
		valores := []interface{}{
			m.ID,
			m.Fecha,
			m.Tipo,
			m.Cantidad,
			m.ProductoID,
			m.NombreProducto,
			m.NombreUsuario,
		}
		cell, err := excelize.CoordinatesToCellName(1, fila)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de la fila %d: %w", fila, err)
		}
		if err := f.SetSheetRow(sheet, cell, &valores); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", fila, err)
		}
		fila++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
