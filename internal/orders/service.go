package orders

import (
	"context"
	"errors"
	"time"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusDelivered: true,
}

var validCollections = map[string]bool{
	CollectionOrders:      true,
	CollectionTableOrders: true,
	CollectionBreakfast:   true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create order
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, order *Order) (*Order, error) {
	if order == nil {
		return nil, errors.New("missing order")
	}
	if !validCollections[order.Collection] {
		return nil, errors.New("unknown collection")
	}
	if len(order.Meals) == 0 && len(order.Breakfasts) == 0 {
		return nil, errors.New("order has no lines")
	}
	if len(order.Meals) > 0 && len(order.Breakfasts) > 0 {
		return nil, errors.New("order mixes meals and breakfasts")
	}

	if len(order.Breakfasts) > 0 {
		order.Type = "breakfast"
	}
	if order.Status == "" {
		order.Status = StatusPending
	}
	order.Total = ComputeTotal(order)

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, collection, id string) (*Order, error) {
	return s.repo.Get(ctx, collection, id)
}

func (s *Service) List(ctx context.Context, collection string) ([]*Order, error) {
	if !validCollections[collection] {
		return nil, errors.New("unknown collection")
	}
	return s.repo.List(ctx, collection)
}

// --------------------------------------------------
// Status transitions
// --------------------------------------------------
func (s *Service) UpdateStatus(ctx context.Context, collection, id, status string) (*Order, error) {
	if !validStatuses[status] {
		return nil, errors.New("unknown status")
	}

	order, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if order.Status == StatusCancelled && status != StatusCancelled {
		return nil, errors.New("cancelled orders cannot change status")
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Payment split edit
// --------------------------------------------------
func (s *Service) EditSplit(ctx context.Context, collection, id string, lines []PaymentLine) (*Order, error) {
	for _, line := range lines {
		if line.Amount < 0 {
			return nil, errors.New("split amounts must not be negative")
		}
	}

	order, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	// paymentLines is the canonical field; the legacy payments field is
	// left untouched so old readers keep seeing what they wrote.
	order.PaymentLines = lines
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Delivery person assignment
// --------------------------------------------------
func (s *Service) AssignDeliveryPerson(ctx context.Context, collection, id, name string) (*Order, error) {
	order, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = DefaultDeliveryPerson
	}
	order.DeliveryPerson = name
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Settlement
// --------------------------------------------------

// Settle marks the whole order as reconciled at the register.
func (s *Service) Settle(ctx context.Context, collection, id string) (*Order, error) {
	order, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order.Settled = true
	order.SettledAt = &now
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// SettleMethod marks a single payment method of the order as turned in,
// leaving the rest pending with the courier.
func (s *Service) SettleMethod(ctx context.Context, collection, id, methodKey string) (*Order, error) {
	order, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	if order.PaymentSettled == nil {
		order.PaymentSettled = map[string]bool{}
	}
	order.PaymentSettled[methodKey] = true
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Print tracking
// --------------------------------------------------
func (s *Service) MarkPrinted(ctx context.Context, order *Order) error {
	now := time.Now().UTC()
	order.PrintedAt = &now
	return s.repo.Update(ctx, order)
}

// --------------------------------------------------
// Admin bulk delete (irreversible)
// --------------------------------------------------
func (s *Service) DeleteCollection(ctx context.Context, collection string) (int64, error) {
	if !validCollections[collection] {
		return 0, errors.New("unknown collection")
	}
	return s.repo.DeleteAll(ctx, collection)
}

// --------------------------------------------------
// Worker queue
// --------------------------------------------------
func (s *Service) ListUnprinted(ctx context.Context, collection string) ([]*Order, error) {
	return s.repo.ListUnprinted(ctx, collection)
}
