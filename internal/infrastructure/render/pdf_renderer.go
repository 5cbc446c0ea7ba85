package render

import (
	"context"
	"fmt"
	"log"

	"kaenpro_os/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFInvoiceRenderer produces the printable A4 note for a finalized order.
type PDFInvoiceRenderer struct{}

func NewPDFInvoiceRenderer() *PDFInvoiceRenderer {
	return &PDFInvoiceRenderer{}
}

func (r *PDFInvoiceRenderer) Render(ctx context.Context, doc entities.InvoiceDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		col.New(7).Add(
			text.New("KAEN PRO", props.Text{Size: 18, Style: fontstyle.Bold}),
			text.New("Centro de Manutenção Automotiva", props.Text{Size: 8, Top: 9}),
		),
		col.New(5).Add(
			text.New("ORDEM DE SERVIÇO", props.Text{Size: 8, Align: align.Right}),
			text.New(fmt.Sprintf("#%s", doc.OSNumber), props.Text{Size: 14, Style: fontstyle.Bold, Top: 4, Align: align.Right}),
			text.New(doc.IssuedAt, props.Text{Size: 8, Top: 11, Align: align.Right}),
		),
	)

	m.AddRow(22,
		col.New(6).Add(
			text.New("Proprietário", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New(doc.ClientName, props.Text{Size: 11, Top: 5}),
		),
		col.New(6).Add(
			text.New("Identificação Veicular", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New(fmt.Sprintf("%s • %s", doc.VehiclePlate, doc.VehicleModel), props.Text{Size: 11, Top: 5}),
			text.New(fmt.Sprintf("%s KM RODADOS", doc.VehicleKm), props.Text{Size: 8, Top: 12}),
		),
	)

	m.AddRow(18,
		col.New(12).Add(
			text.New("Discriminação Técnica", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New(fmt.Sprintf("\"%s\"", doc.Narrative), props.Text{Size: 9, Top: 5}),
		),
	)

	m.AddRow(8,
		text.NewCol(8, "Descrição do Item", props.Text{Size: 8, Style: fontstyle.Bold}),
		text.NewCol(2, "Qtd", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Valor Parcial", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	)

	for _, row := range doc.Rows {
		style := fontstyle.Normal
		if row.Labor {
			style = fontstyle.Bold
		}
		m.AddRow(8,
			text.NewCol(8, row.Description, props.Text{Size: 9, Style: style}),
			text.NewCol(2, formatQuantity(row.Quantity), props.Text{Size: 9, Style: style, Align: align.Center}),
			text.NewCol(2, formatBRL(row.Amount), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	m.AddRow(16,
		col.New(6),
		col.New(6).Add(
			text.New("VALOR TOTAL DO INVESTIMENTO", props.Text{Size: 8, Align: align.Right, Top: 4}),
			text.New(formatBRL(doc.TotalValue), props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Right, Top: 8}),
		),
	)

	generated, err := m.Generate()
	if err != nil {
		log.Printf("[invoice][renderer] pdf generate failed os_number=%s err=%v", doc.OSNumber, err)
		return nil, err
	}
	return generated.GetBytes(), nil
}
