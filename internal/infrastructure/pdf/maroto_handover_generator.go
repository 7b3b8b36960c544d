// Package pdf implementa el documento de entrega de activos (handover):
// constancia en PDF de que la empresa entregó un equipo a un empleado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  N° de solicitud + Fecha de aprobación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPLEADO: Nombre + Email                                    │
//	│  ACTIVO: Nombre + Tipo (returnable / non-returnable)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de responsabilidad + firmas                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/smart-asset/smart-asset-api/internal/application/billing"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.HandoverPDFGenerator = (*MarotoHandoverGenerator)(nil)

// MarotoHandoverGenerator implementa billing.HandoverPDFGenerator usando
// Maroto v2.
type MarotoHandoverGenerator struct{}

// NewMarotoHandoverGenerator construye el generador.
func NewMarotoHandoverGenerator() *MarotoHandoverGenerator { return &MarotoHandoverGenerator{} }

// GenerateHandoverPDF genera el PDF y devuelve sus bytes.
func (g *MarotoHandoverGenerator) GenerateHandoverPDF(_ context.Context, data billing.HandoverData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de entrega de activo", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(data))
	m.AddRows(assetRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y solicitud + fecha de aprobación (der).
func headerRow(data billing.HandoverData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Acta de entrega de activo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SOLICITUD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.RequestID, props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Aprobada: "+data.ApprovalDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// employeeRow: datos del empleado receptor.
func employeeRow(data billing.HandoverData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPLEADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.RequestorName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+data.RequestorEmail, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// assetRow: activo entregado y su tipo.
func assetRow(data billing.HandoverData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ACTIVO ENTREGADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.AssetName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Solicitado: %s",
				data.AssetType, data.RequestDate.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// footerRows: leyenda de responsabilidad y líneas de firma.
func footerRows() []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New(
					"El empleado declara haber recibido el activo descrito en buen estado y se "+
						"compromete a devolverlo al finalizar su uso si el tipo es retornable.",
					props.Text{Size: 8, Color: colorGray, Top: 2},
				),
			),
		),
		row.New(20).Add(
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
				text.New("Firma del empleado", props.Text{Size: 8, Align: align.Center, Top: 16, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
				text.New("Firma de Recursos Humanos", props.Text{Size: 8, Align: align.Center, Top: 16, Color: colorGray}),
			),
		),
	}
}
