// Package pdf genera el reporte imprimible del resumen global de precios.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Tiendas | Mín | Prom | Máx    │
//	│         | Mejor tienda                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos + leyenda                        │
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

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

var _ pricing.ReportRenderer = (*MarotoPriceReport)(nil)

// MarotoPriceReport implementa pricing.ReportRenderer usando Maroto v2.
type MarotoPriceReport struct {
	appName string
}

// NewMarotoPriceReport construye el generador; appName se usa como autor del documento.
func NewMarotoPriceReport(appName string) *MarotoPriceReport {
	return &MarotoPriceReport{appName: nonEmpty(appName, "Comparador")}
}

// RenderPriceReport genera el PDF y devuelve sus bytes.
func (g *MarotoPriceReport) RenderPriceReport(ctx context.Context, generatedAt time.Time, items []dto.PriceSummaryItem) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen global de precios", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RESUMEN GLOBAL DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Tiendas", 1, align.Center),
		h("Mínimo", 1, align.Right),
		h("Promedio", 1, align.Right),
		h("Máximo", 1, align.Right),
		h("Mejor tienda", 3, align.Left),
	)
}

// tableRows una fila por producto activo; filas alternas con fondo.
func tableRows(items []dto.PriceSummaryItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		best := "—"
		if it.BestShop != nil {
			best = it.BestShop.Name
		}
		r := row.New(7).Add(
			cell(productLabel(it), 3, align.Left),
			cell(nonEmpty(it.Category, "—"), 2, align.Left),
			cell(fmt.Sprint(it.ShopCount), 1, align.Center),
			cell(formatPrice(it.MinPrice), 1, align.Right),
			cell(formatPrice(it.AvgPrice), 1, align.Right),
			cell(formatPrice(it.MaxPrice), 1, align.Right),
			cell(best, 3, align.Left),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("No hay productos activos.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	return rows
}

func footerRow(items []dto.PriceSummaryItem) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Productos: %d", len(items)), props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2,
		}),
		text.New("Precios vigentes de publicaciones disponibles al momento de la generación.", props.Text{
			Size: 6.5, Color: colorGray, Top: 7,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func productLabel(it dto.PriceSummaryItem) string {
	if it.Unit == "" {
		return it.ProductName
	}
	return it.ProductName + " (" + it.Unit + ")"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatPrice "$1.234,50"; "—" si no hay precio.
func formatPrice(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + formatMoney(whole) + "," + frac
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
