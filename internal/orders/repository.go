package orders

import "context"

// Repository persists order documents per collection.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, collection, id string) (*Order, error)
	List(ctx context.Context, collection string) ([]*Order, error)
	Update(ctx context.Context, order *Order) error
	DeleteAll(ctx context.Context, collection string) (int64, error)

	// ListUnprinted feeds the auto-print worker.
	ListUnprinted(ctx context.Context, collection string) ([]*Order, error)
}
