package menu

import (
	"context"
	"errors"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

var validCategories = map[string]bool{
	CategorySoups:          true,
	CategoryPrinciples:     true,
	CategoryProteins:       true,
	CategoryDrinks:         true,
	CategorySides:          true,
	CategoryTimes:          true,
	CategoryAdditions:      true,
	CategoryBreakfastTypes: true,
	CategoryBroths:         true,
	CategoryEggs:           true,
	CategoryRiceBread:      true,
	CategoryPayments:       true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// List a category
// --------------------------------------------------
func (s *Service) List(ctx context.Context, category string) ([]Option, error) {
	if !validCategories[category] {
		return nil, errors.New("unknown category")
	}
	return s.repo.ListByCategory(ctx, category)
}

// --------------------------------------------------
// Add or reprice an option
// --------------------------------------------------
func (s *Service) Save(ctx context.Context, category, name string, price core.Money) (*Option, error) {
	if !validCategories[category] {
		return nil, errors.New("unknown category")
	}
	if name == "" {
		return nil, errors.New("missing option name")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}

	option := &Option{Category: category, Name: name, Price: price}
	if err := s.repo.Upsert(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// --------------------------------------------------
// Remove an option from the menu
// --------------------------------------------------
func (s *Service) Remove(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing option id")
	}
	return s.repo.Deactivate(ctx, id)
}

// --------------------------------------------------
// Receipt integration
// --------------------------------------------------

// ListSides returns the side catalog as order-line references; it
// feeds the excluded-sides line on receipts.
func (s *Service) ListSides(ctx context.Context) ([]core.OptionRef, error) {
	options, err := s.repo.ListByCategory(ctx, CategorySides)
	if err != nil {
		return nil, err
	}
	refs := make([]core.OptionRef, len(options))
	for i, o := range options {
		refs[i] = o.Ref()
	}
	return refs, nil
}
