package interfaces

import (
	"context"
	"kaenpro_os/internal/domain/entities"
)

// IOrderRepository abstracts persistence of the per-operator orders
// collection.
//
// The store has no partial-append primitive: finalize reads the full
// collection, appends, and syncs the whole thing back (append-by-rewrite).
// There is no optimistic-lock check; concurrent rewrites for the same owner
// can race and one append can be lost. Accepted limitation.

type IOrderRepository interface {
	LoadOrders(ctx context.Context, owner string) ([]entities.ServiceOrder, error)
	SyncOrders(ctx context.Context, owner string, orders []entities.ServiceOrder) error
}
