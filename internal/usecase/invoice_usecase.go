package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotAvailable   = errors.New("invoice available only for finalized orders")
	ErrExportInFlight        = errors.New("invoice export already in progress")
	ErrRendererNotConfigured = errors.New("invoice renderer not configured")
	ErrUnknownExportFormat   = errors.New("unknown export format")
)

// ExportFormat selects the renderer for an invoice export.

type ExportFormat string

const (
	ExportFormatPNG ExportFormat = "png"
	ExportFormatPDF ExportFormat = "pdf"
)

// Narrative printed when the operator left the problem description blank.
const fallbackNarrative = "Serviços de manutenção preventiva e corretiva realizados conforme padrões técnicos."

const laborRowDescription = "MÃO DE OBRA ESPECIALIZADA"

// IInvoiceUseCase builds the read-only invoice view of a finalized order and
// drives the external renderers on demand.

type IInvoiceUseCase interface {
	Document(order entities.ServiceOrder) (entities.InvoiceDocument, error)
	Export(ctx context.Context, order entities.ServiceOrder, format ExportFormat) ([]byte, string, error)
}

type InvoiceUseCase struct {
	image    interfaces.IInvoiceRenderer
	document interfaces.IInvoiceRenderer

	// Export is awaited by the caller with a loading indicator; repeat
	// triggers are rejected until the in-flight one resolves.
	exporting atomic.Bool
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(image, document interfaces.IInvoiceRenderer) *InvoiceUseCase {
	return &InvoiceUseCase{image: image, document: document}
}

func (u *InvoiceUseCase) Document(order entities.ServiceOrder) (entities.InvoiceDocument, error) {
	if order.Status != entities.OSStatusFinalizado {
		return entities.InvoiceDocument{}, ErrInvoiceNotAvailable
	}
	return BuildInvoiceDocument(order), nil
}

func (u *InvoiceUseCase) Export(ctx context.Context, order entities.ServiceOrder, format ExportFormat) ([]byte, string, error) {
	doc, err := u.Document(order)
	if err != nil {
		return nil, "", err
	}

	var renderer interfaces.IInvoiceRenderer
	switch format {
	case ExportFormatPNG:
		renderer = u.image
	case ExportFormatPDF:
		renderer = u.document
	default:
		return nil, "", ErrUnknownExportFormat
	}
	if renderer == nil {
		return nil, "", ErrRendererNotConfigured
	}

	if !u.exporting.CompareAndSwap(false, true) {
		return nil, "", ErrExportInFlight
	}
	defer u.exporting.Store(false)

	fileName := fmt.Sprintf("Nota_%s.%s", order.OSNumber, format)
	log.Printf("[invoice][usecase] export start os_number=%s format=%s", order.OSNumber, format)
	data, err := renderer.Render(ctx, doc)
	if err != nil {
		log.Printf("[invoice][usecase] export failed os_number=%s err=%v", order.OSNumber, err)
		return nil, "", err
	}
	log.Printf("[invoice][usecase] export success os_number=%s bytes=%d", order.OSNumber, len(data))
	return data, fileName, nil
}

// BuildInvoiceDocument is the pure view over a finalized order: header,
// parties, narrative (with the fixed fallback when the problem text is
// blank), one row per item, labor as a distinguished trailing row only when
// positive, and the stamped total.
func BuildInvoiceDocument(order entities.ServiceOrder) entities.InvoiceDocument {
	narrative := order.Problem
	if narrative == "" {
		narrative = fallbackNarrative
	}

	rows := make([]entities.InvoiceRow, 0, len(order.Items)+1)
	for _, it := range order.Items {
		rows = append(rows, entities.InvoiceRow{
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Quantity * it.UnitPrice,
		})
	}
	if order.LaborValue > 0 {
		rows = append(rows, entities.InvoiceRow{
			Description: laborRowDescription,
			Quantity:    1,
			Amount:      order.LaborValue,
			Labor:       true,
		})
	}

	return entities.InvoiceDocument{
		OSNumber:     order.OSNumber,
		IssuedAt:     order.CreatedAt.Format("02/01/2006"),
		ClientName:   order.ClientName,
		VehiclePlate: order.VehiclePlate,
		VehicleModel: order.VehicleModel,
		VehicleKm:    order.VehicleKm,
		Narrative:    narrative,
		Rows:         rows,
		TotalValue:   order.TotalValue,
		FileName:     fmt.Sprintf("Nota_%s.png", order.OSNumber),
	}
}
