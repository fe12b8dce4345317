package menu

import "context"

// Repository persists the option catalog.
type Repository interface {
	ListByCategory(ctx context.Context, category string) ([]Option, error)
	Upsert(ctx context.Context, option *Option) error
	Deactivate(ctx context.Context, id string) error
}
