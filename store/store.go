package store

import (
	"context"

	"github.com/yeremiapane/orders-admin/models"
)

// OrderStore is the remote document store holding orders. The admin panel
// only ever reads full snapshots and issues point mutations against it.
type OrderStore interface {
	// Fetch returns every order with its line items resolved, in the
	// store's own order.
	Fetch(ctx context.Context) ([]models.Order, error)
	// PatchStatus sets the status field of a single order.
	PatchStatus(ctx context.Context, id string, status models.Status) error
	// Delete removes a single order.
	Delete(ctx context.Context, id string) error
}
