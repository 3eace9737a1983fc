// Package pdf genera el reporte diario de ventas con Maroto v2.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Chema Sport — Reporte de ventas      │
//	│          Fecha del día                        │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Hora | Artículo | Talla | Cant |      │
//	│         Precio | Total | Jugador/Equipo       │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL DEL DÍA                                │
//	└───────────────────────────────────────────────┘
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

	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa sales.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDailyReport genera el PDF del día y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDailyReport(
	_ context.Context,
	date time.Time,
	ventas []*entity.Sale,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(date, len(ventas)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, v := range ventas {
		m.AddRows(saleRow(v))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha + número de ventas (der).
func headerRow(date time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Chema Sport", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas del día", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("%d ventas", count), props.Text{
				Size: 9, Top: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(1).Add(text.New("Hora", header)),
		col.New(4).Add(text.New("Artículo", header)),
		col.New(1).Add(text.New("Talla", header)),
		col.New(1).Add(text.New("Cant.", headerRight)),
		col.New(1).Add(text.New("Precio", headerRight)),
		col.New(2).Add(text.New("Total", headerRight)),
		col.New(2).Add(text.New("Jugador/Equipo", header)),
	)
}

func saleRow(v *entity.Sale) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	jugador := v.Jugador
	if v.Equipo != "" {
		if jugador != "" {
			jugador += " / "
		}
		jugador += v.Equipo
	}
	return row.New(6).Add(
		col.New(1).Add(text.New(v.Fecha.Format("15:04"), cell)),
		col.New(4).Add(text.New(v.Item, cell)),
		col.New(1).Add(text.New(v.Talla, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", v.Cantidad), cellRight)),
		col.New(1).Add(text.New(v.Precio.StringFixed(0), cellRight)),
		col.New(2).Add(text.New(v.Total.StringFixed(0), cellRight)),
		col.New(2).Add(text.New(jugador, cell)),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL DEL DÍA", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(4).Add(text.New("$ "+total.StringFixed(0), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}
