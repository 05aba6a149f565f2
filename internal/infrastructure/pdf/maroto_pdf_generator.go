// Package pdf genera el reporte financiero en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título               │  Fecha de emisión           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LIBRO: Ingresos / Gastos / Neto / Impuesto / Utilidad       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INGRESOS: Envío | Destino | Tipo | Kg | Precio              │
//	│  GASTOS: Contenedor | Destino | Tipo | Kg usados | Costo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: conteos y gasto de flota                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.FinancialReportRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.FinancialReportRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// RenderFinancialReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderFinancialReport(_ context.Context, report dto.FinancialReport) ([]byte, error) {
	title := nonEmpty(report.Title, "Reporte financiero")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(ledgerRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("INGRESOS (ENVÍOS)"))
	m.AddRows(tableHeaderRow("Envío", "Destino", "Tipo", "Kg", "Precio"))
	for _, s := range report.Shipments {
		m.AddRows(tableRow(s.ShipmentID, s.Destination, s.ContainerType,
			fmt.Sprintf("%.0f", s.WeightKg.Float64()), money(s.Price)))
	}
	if len(report.Shipments) == 0 {
		m.AddRows(emptyRow("Sin envíos registrados"))
	}

	m.AddRows(row.New(3))
	m.AddRows(sectionRow("GASTOS (CONTENEDORES)"))
	m.AddRows(tableHeaderRow("Contenedor", "Destino", "Tipo", "Kg usados", "Costo"))
	for _, c := range report.Containers {
		m.AddRows(tableRow(c.ContainerID, c.Destination, c.ContainerType,
			fmt.Sprintf("%.0f", c.UsedKg), money(c.TransportCost)))
	}
	if len(report.Containers) == 0 {
		m.AddRows(emptyRow("Sin contenedores"))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// ledgerRow: bloque del libro, la utilidad en rojo si es negativa.
func ledgerRow(s dto.FinancialSummaryResponse) core.Row {
	fin := s.Financials
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v decimal.Decimal) core.Component {
		p := props.Text{Size: 9, Align: align.Right, Right: 1}
		if v.IsNegative() {
			p.Color = colorLoss
		}
		return text.New(money(v), p)
	}
	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(
			label("Ingresos:"),
			label("Gastos:"),
			label("Ingreso neto:"),
			label(fmt.Sprintf("Impuesto (%s%%):", fin.TaxRate.Mul(decimal.NewFromInt(100)).StringFixed(0))),
			label("Utilidad después de impuesto:"),
		),
		col.New(4).Add(
			value(fin.Revenue),
			value(fin.Expenses),
			value(fin.NetIncome),
			value(fin.Tax),
			value(fin.ProfitAfterTax),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func tableHeaderRow(labels ...string) core.Row {
	sizes := []int{3, 3, 2, 2, 2}
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Left
		if i >= 3 {
			a = align.Right
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values ...string) core.Row {
	sizes := []int{3, 3, 2, 2, 2}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Left
		if i >= 3 {
			a = align.Right
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(5).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(5).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func footerRow(s dto.FinancialSummaryResponse) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d envíos   |   %d contenedores (%.0f kg)   |   Costo contenedores: %s   |   Gasto de flota: %s",
			s.ShipmentCount, s.ContainerCount, s.UsedKg, money(s.ContainerCost), money(s.FleetExpense),
		), props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formato "$1.234.567" (negativos con signo delante).
func money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(0)
	sign := ""
	if d.Round(0).IsNegative() {
		sign = "-"
	}
	return sign + "$" + formatMoney(s)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	return b.String()
}
