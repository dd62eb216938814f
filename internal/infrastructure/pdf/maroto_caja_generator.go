// Package pdf genera el reporte imprimible del cierre de caja diaria.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cierre de caja  │  Fecha                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingresos / Costo productos / DTF / Gastos / Neta  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VENTAS: Hora | Cliente | Estado | Total | Ganancia   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA GASTOS: Descripción | Monto                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-api/internal/application/reports"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	domledger "github.com/tu-usuario/ventas-api/internal/domain/ledger"
)

var _ reports.CajaPDFGenerator = (*MarotoCajaGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCajaGenerator implementa reports.CajaPDFGenerator usando Maroto v2.
type MarotoCajaGenerator struct{}

// NewMarotoCajaGenerator construye el generador.
func NewMarotoCajaGenerator() *MarotoCajaGenerator { return &MarotoCajaGenerator{} }

// GenerateCajaPDF genera el PDF del cierre de caja y devuelve sus bytes.
func (g *MarotoCajaGenerator) GenerateCajaPDF(
	_ context.Context,
	day time.Time,
	totals domledger.Totals,
	sales []entity.Sale,
	expenses []entity.Expense,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de caja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(day))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(totals)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow(fmt.Sprintf("Ventas del día (%d)", len(sales))))
	m.AddRows(salesHeaderRow())
	for _, s := range sales {
		m.AddRows(saleRow(s))
	}
	if len(sales) == 0 {
		m.AddRows(emptyRow("Sin ventas este día"))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitleRow(fmt.Sprintf("Gastos del día (%d)", len(expenses))))
	for _, e := range expenses {
		m.AddRows(expenseRow(e))
	}
	if len(expenses) == 0 {
		m.AddRows(emptyRow("Sin gastos este día"))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(day time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CIERRE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+day.Format("02/01/2006"), props.Text{
				Size: 10, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// totalsRows: los cinco totales del día, caja neta resaltada.
func totalsRows(t domledger.Totals) []core.Row {
	netColor := colorPrimary
	if t.NetProfit.IsNegative() {
		netColor = colorRed
	}
	return []core.Row{
		totalRow("Ingresos", t.Revenue, colorGray),
		totalRow("Costo de productos", t.CostOfGoods.Neg(), colorGray),
		totalRow("Costo DTF", t.DTFTotal.Neg(), colorGray),
		totalRow("Gastos", t.ExpenseTotal.Neg(), colorGray),
		row.New(9).Add(
			col.New(8).Add(text.New("CAJA NETA", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 1,
			})),
			col.New(4).Add(text.New(money(t.NetProfit), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: netColor,
			})),
		),
	}
}

func totalRow(label string, v decimal.Decimal, color *props.Color) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Color: color})),
		col.New(4).Add(text.New(money(v), props.Text{Size: 9, Align: align.Right, Color: color})),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func salesHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("Hora", header)),
		col.New(4).Add(text.New("Cliente", header)),
		col.New(2).Add(text.New("Estado", header)),
		col.New(2).Add(text.New("Total", headerRight)),
		col.New(2).Add(text.New("Ganancia", headerRight)),
	)
}

func saleRow(s entity.Sale) core.Row {
	profit := domledger.SaleProfit(s)
	profitColor := colorPrimary
	if profit.IsNegative() {
		profitColor = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(s.CreatedAt.Format("15:04"), props.Text{Size: 8})),
		col.New(4).Add(text.New(s.CustomerName, props.Text{Size: 8})),
		col.New(2).Add(text.New(string(s.Status), props.Text{Size: 8, Color: colorGray})),
		col.New(2).Add(text.New(money(s.Total), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(money(profit), props.Text{Size: 8, Align: align.Right, Color: profitColor})),
	)
}

func expenseRow(e entity.Expense) core.Row {
	return row.New(6).Add(
		col.New(9).Add(text.New(e.Description, props.Text{Size: 8})),
		col.New(3).Add(text.New(money(e.Amount.Neg()), props.Text{Size: 8, Align: align.Right, Color: colorRed})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 8, Color: colorGray})),
	)
}

// money formatea un monto en quetzales con dos decimales.
func money(v decimal.Decimal) string {
	return "Q" + v.StringFixed(2)
}
