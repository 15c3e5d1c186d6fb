// Package pdf genera el reporte descargable de la sección Reports.
//
// Layout de la página Letter:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título               │  fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SESIÓN: rol + usuario (o "Anonymous")                       │
//	│  KPI: Win Probability: n%                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id del reporte + leyenda                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/bharat-chakra/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 255, Green: 103, Blue: 31} // azafrán
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoReportGenerator implementa report.Generator.
var _ report.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(ctx context.Context, c report.Content) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(c.Title, true).
		WithAuthor("Bharat Chakra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sessionRow(c))
	m.AddRows(kpiRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(c))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(c report.Content) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(c.Title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+c.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

func sessionRow(c report.Content) core.Row {
	who := "Anonymous"
	if c.RoleLabel != "" {
		who = c.RoleLabel
		if c.Username != "" {
			who = fmt.Sprintf("%s (%s)", c.Username, c.RoleLabel)
		}
	}
	return row.New(10).Add(col.New(12).Add(
		text.New("Prepared for: "+who, props.Text{Size: 9, Top: 3, Color: colorGray}),
	))
}

func kpiRow(c report.Content) core.Row {
	return row.New(20).Add(col.New(12).Add(
		text.New("Win Probability: "+c.WinProbability, props.Text{
			Style: fontstyle.Bold, Size: 14, Top: 5,
		}),
	))
}

func footerRow(c report.Content) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(c.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Report ID: "+c.ID, props.Text{Size: 7, Top: 4, Left: 3, Color: colorGray}),
			text.New("Simulated figures for campaign planning. Not an official forecast.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}
