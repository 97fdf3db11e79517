package order

import "context"

type Repository interface {
	// Create prepends a new order to the ledger.
	Create(ctx context.Context, o Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// Remove deletes the order with the given id.
	Remove(ctx context.Context, id string) error
	// List returns a snapshot of the ledger, newest first.
	List(ctx context.Context) ([]Order, error)
}
