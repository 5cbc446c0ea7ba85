package interfaces

import (
	"context"
	"kaenpro_os/internal/domain/entities"
)

// ICatalogRepository abstracts persistence of the operator's clients and
// vehicles. The catalog is read-only for this service; registration screens
// own the write path.

type ICatalogRepository interface {
	LoadCatalog(ctx context.Context, owner string) (entities.Catalog, error)
}
