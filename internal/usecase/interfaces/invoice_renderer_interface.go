package interfaces

import (
	"context"
	"kaenpro_os/internal/domain/entities"
)

// IInvoiceRenderer abstracts the external renderer that turns an invoice
// document into downloadable bytes (image or PDF, depending on the
// implementation).

type IInvoiceRenderer interface {
	Render(ctx context.Context, doc entities.InvoiceDocument) ([]byte, error)
}
