// Package report implementa los generadores de exportación: el informe de
// alertas en PDF (Maroto v2) y el historial de movimientos en Excel
// (excelize).
package report

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-web/internal/application/dto"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRojo     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoAlertas implementa reports.GeneradorPDFAlertas usando Maroto v2.
type MarotoAlertas struct{}

// NewMarotoAlertas construye el generador.
func NewMarotoAlertas() *MarotoAlertas { return &MarotoAlertas{} }

// Generar produce el PDF del resumen de alertas y devuelve sus bytes.
func (g *MarotoAlertas) Generar(_ context.Context, resumen *dto.DashboardDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de alertas de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabeceraRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(contadoresRow(resumen))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(seccionRow("ALERTAS DE CADUCIDAD"))
	m.AddRows(caducidadHeaderRow())
	for _, a := range resumen.AlertasCaducidad {
		m.AddRows(caducidadRow(a))
	}
	if len(resumen.AlertasCaducidad) == 0 {
		m.AddRows(vacioRow("Sin alertas de caducidad en la ventana configurada."))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(seccionRow("STOCK BAJO"))
	for _, p := range resumen.StockBajo {
		m.AddRows(stockBajoRow(p))
	}
	if len(resumen.StockBajo) == 0 {
		m.AddRows(vacioRow("Ningún producto bajo el umbral de stock."))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// cabeceraRow: título del informe más la fecha de generación.
func cabeceraRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Informe de alertas de inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGris,
			}),
		),
	)
}

// contadoresRow: los cuatro widgets del dashboard en una línea.
func contadoresRow(resumen *dto.DashboardDTO) core.Row {
	contador := func(etiqueta string, valor int) core.Col {
		return col.New(3).Add(
			text.New(etiqueta, props.Text{Size: 8, Color: colorGris, Top: 1}),
			text.New(fmt.Sprintf("%d", valor), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		contador("Stock total", resumen.StockTotal),
		contador("Stock bajo", resumen.ProductosStockBajo),
		contador("Caducados", resumen.ProductosVencidos),
		contador("Movimientos", resumen.TotalMovimientos),
	)
}

func seccionRow(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimario, Top: 2}),
	))
}

func caducidadHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 5, align.Left),
		h("Cantidad", 2, align.Center),
		h("Caducidad", 2, align.Center),
		h("Estado", 3, align.Right),
	)
}

func caducidadRow(a dto.AlertaCaducidadDTO) core.Row {
	estado := fmt.Sprintf("Caduca en %d días", a.DiasRestantes)
	color := colorGris
	if a.Vencido {
		estado = fmt.Sprintf("EXPIRÓ hace %d días", -a.DiasRestantes)
		color = colorRojo
	}
	return row.New(6).Add(
		col.New(5).Add(text.New(a.Nombre, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", a.Cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(a.FechaCaducidad, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(estado, props.Text{Size: 8, Align: align.Right, Top: 1, Color: color})),
	)
}

func stockBajoRow(p dto.StockBajoDTO) core.Row {
	return row.New(6).Add(
		col.New(9).Add(text.New(p.Nombre, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("Stock: %d uds.", p.Cantidad), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: colorRojo,
		})),
	)
}

func vacioRow(mensaje string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(mensaje, props.Text{Size: 8, Color: colorGris, Top: 1}),
	))
}
