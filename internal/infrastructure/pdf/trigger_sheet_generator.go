// Package pdf genera la hoja imprimible de códigos de disparo del escáner.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  TÍTULO + fecha de generación               │
//	│  ─────────────────────────────────────────  │
//	│  Etiqueta            │  Code128             │
//	│  Descripción         │  valor               │
//	│  ... (uno por código configurado)           │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// TriggerSheetGenerator implementa ports.TriggerSheetGenerator usando Maroto v2.
type TriggerSheetGenerator struct {
	now func() time.Time
}

var _ ports.TriggerSheetGenerator = (*TriggerSheetGenerator)(nil)

// NewTriggerSheetGenerator construye el generador.
func NewTriggerSheetGenerator() *TriggerSheetGenerator {
	return &TriggerSheetGenerator{now: time.Now}
}

// GenerateTriggerSheet genera el PDF y devuelve sus bytes.
func (g *TriggerSheetGenerator) GenerateTriggerSheet(_ context.Context, triggers []entity.TriggerBarcode) ([]byte, error) {
	if len(triggers) == 0 {
		return nil, domain.ErrNoTriggerBarcodes
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Códigos de disparo del escáner", true).
		WithAuthor("SurgiShop", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	for _, t := range triggers {
		m.AddRows(line.NewRow(6))
		m.AddRows(triggerRow(t))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de disparo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(at time.Time) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CÓDIGOS DE DISPARO DEL ESCÁNER", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
	)
}

// triggerRow: etiqueta y descripción (izq), Code128 con su valor (der).
func triggerRow(t entity.TriggerBarcode) core.Row {
	return row.New(30).Add(
		col.New(5).Add(
			text.New(t.Label, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 4,
			}),
			text.New(t.Description, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(7).Add(
			code.NewBar(t.Value, props.Barcode{
				Percent: 70, Center: true,
			}),
			text.New(t.Value, props.Text{
				Size: 8, Align: align.Center, Top: 25,
			}),
		),
	)
}
