package orders

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	docs   map[string]*Order // key collection/id
	nextID int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{docs: make(map[string]*Order), nextID: 1}
}

func key(collection, id string) string { return collection + "/" + id }

func (m *MockRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = strconv.Itoa(m.nextID)
		m.nextID++
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	cp := *order
	m.docs[key(order.Collection, order.ID)] = &cp
	return nil
}

func (m *MockRepository) Get(ctx context.Context, collection, id string) (*Order, error) {
	order, ok := m.docs[key(collection, id)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *MockRepository) List(ctx context.Context, collection string) ([]*Order, error) {
	var list []*Order
	for _, o := range m.docs {
		if o.Collection == collection {
			cp := *o
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *MockRepository) Update(ctx context.Context, order *Order) error {
	if _, ok := m.docs[key(order.Collection, order.ID)]; !ok {
		return ErrNotFound
	}
	cp := *order
	m.docs[key(order.Collection, order.ID)] = &cp
	return nil
}

func (m *MockRepository) DeleteAll(ctx context.Context, collection string) (int64, error) {
	var n int64
	for k, o := range m.docs {
		if o.Collection == collection {
			delete(m.docs, k)
			n++
		}
	}
	return n, nil
}

func (m *MockRepository) ListUnprinted(ctx context.Context, collection string) ([]*Order, error) {
	var list []*Order
	for _, o := range m.docs {
		if o.Collection == collection && o.PrintedAt == nil && o.Status != StatusCancelled {
			cp := *o
			list = append(list, &cp)
		}
	}
	return list, nil
}

func ref(name string) *core.OptionRef { return &core.OptionRef{Name: name} }

func breakfastLine(typ, orderType string, addr *core.Address) breakfasts.Breakfast {
	return breakfasts.Breakfast{
		Type:      ref(typ),
		OrderType: orderType,
		Address:   addr,
	}
}

// --------------------------------------------------
// CorrectTotal
// --------------------------------------------------

func TestCorrectTotalOverridesStoredOrderType(t *testing.T) {
	// Both lines stored as table, but one carries a delivery address,
	// so the whole order reprices as takeaway.
	order := &Order{
		Type: "breakfast",
		Breakfasts: []breakfasts.Breakfast{
			breakfastLine("Solo huevos", "table", nil),
			breakfastLine("Solo huevos", "table", &core.Address{Address: "Calle 1 #2-3"}),
		},
		Total: 99999, // stale, must be ignored
	}

	if got := CorrectTotal(order); got != 16000 {
		t.Fatalf("CorrectTotal = %d, want 16000 (2 x takeaway 8000)", got)
	}
}

func TestCorrectTotalTablePricingWithoutAddress(t *testing.T) {
	order := &Order{
		Type: "breakfast",
		Breakfasts: []breakfasts.Breakfast{
			breakfastLine("Solo huevos", "takeaway", nil), // stored type overridden
			breakfastLine("Moñona", "", nil),
		},
	}
	if got := CorrectTotal(order); got != 7000+13000 {
		t.Fatalf("CorrectTotal = %d, want 20000", got)
	}
}

func TestCorrectTotalPhoneNumberCountsAsDelivery(t *testing.T) {
	order := &Order{
		Type: "breakfast",
		Breakfasts: []breakfasts.Breakfast{
			breakfastLine("Moñona", "table", &core.Address{PhoneNumber: "3001234567"}),
		},
	}
	if got := CorrectTotal(order); got != 14000 {
		t.Fatalf("CorrectTotal = %d, want takeaway 14000", got)
	}
}

func TestCorrectTotalLunchOrdersKeepStoredTotal(t *testing.T) {
	order := &Order{Total: 25000}
	if got := CorrectTotal(order); got != 25000 {
		t.Fatalf("CorrectTotal = %d, want stored 25000", got)
	}
	if CorrectTotal(nil) != 0 {
		t.Fatal("nil order must total 0")
	}
}

func TestCorrectTotalDoesNotMutateLines(t *testing.T) {
	order := &Order{
		Type: "breakfast",
		Breakfasts: []breakfasts.Breakfast{
			breakfastLine("Solo huevos", "table", &core.Address{Address: "x"}),
		},
	}
	CorrectTotal(order)
	if order.Breakfasts[0].OrderType != "table" {
		t.Fatal("stored line orderType must stay untouched")
	}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func TestCreateComputesTotalAndDefaults(t *testing.T) {
	svc := NewService(NewMockRepository())

	order, err := svc.Create(context.Background(), &Order{
		Collection: CollectionTableOrders,
		Meals: []meals.Meal{
			{Protein: ref("Pollo"), OrderType: "table"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Status != StatusPending {
		t.Errorf("status = %q, want %q", order.Status, StatusPending)
	}
	if order.Total != 12000 {
		t.Errorf("total = %d, want 12000", order.Total)
	}
	if order.ID == "" {
		t.Error("created order must get an id")
	}
}

func TestCreateBreakfastSetsTypeAndRecomputedTotal(t *testing.T) {
	svc := NewService(NewMockRepository())

	order, err := svc.Create(context.Background(), &Order{
		Collection: CollectionBreakfast,
		Breakfasts: []breakfasts.Breakfast{
			breakfastLine("Desayuno completo", "", nil),
		},
		Total: 5, // caller totals are never trusted
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Type != "breakfast" {
		t.Errorf("type = %q, want breakfast", order.Type)
	}
	if order.Total != 11000 {
		t.Errorf("total = %d, want table 11000", order.Total)
	}
}

func TestCreateRejectsBadOrders(t *testing.T) {
	svc := NewService(NewMockRepository())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &Order{Collection: "nope", Meals: []meals.Meal{{}}}); err == nil {
		t.Error("unknown collection must be rejected")
	}
	if _, err := svc.Create(ctx, &Order{Collection: CollectionOrders}); err == nil {
		t.Error("empty order must be rejected")
	}
	if _, err := svc.Create(ctx, &Order{
		Collection: CollectionOrders,
		Meals:      []meals.Meal{{}},
		Breakfasts: []breakfasts.Breakfast{{}},
	}); err == nil {
		t.Error("mixed order must be rejected")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc := NewService(NewMockRepository())
	ctx := context.Background()

	order, err := svc.Create(ctx, &Order{
		Collection: CollectionOrders,
		Meals:      []meals.Meal{{Protein: ref("Pollo")}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, order.Collection, order.ID, StatusCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusCancelled {
		t.Fatalf("status = %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, order.Collection, order.ID, StatusPreparing); err == nil {
		t.Error("cancelled orders must not change status")
	}
	if _, err := svc.UpdateStatus(ctx, order.Collection, order.ID, "Volando"); err == nil {
		t.Error("unknown status must be rejected")
	}
}

func TestEditSplitWritesCanonicalField(t *testing.T) {
	svc := NewService(NewMockRepository())
	ctx := context.Background()

	order, _ := svc.Create(ctx, &Order{
		Collection: CollectionOrders,
		Meals:      []meals.Meal{{Protein: ref("Pollo")}},
	})

	lines := []PaymentLine{
		{Method: ref("Efectivo"), Amount: 5000},
		{Method: ref("Nequi"), Amount: 8000},
	}
	updated, err := svc.EditSplit(ctx, order.Collection, order.ID, lines)
	if err != nil {
		t.Fatalf("EditSplit: %v", err)
	}
	if len(updated.PaymentLines) != 2 {
		t.Fatalf("paymentLines = %d rows", len(updated.PaymentLines))
	}

	if _, err := svc.EditSplit(ctx, order.Collection, order.ID, []PaymentLine{{Amount: -1}}); err == nil {
		t.Error("negative amounts must be rejected")
	}
}

func TestSettleMethodKeepsOthersPending(t *testing.T) {
	svc := NewService(NewMockRepository())
	ctx := context.Background()

	order, _ := svc.Create(ctx, &Order{
		Collection: CollectionOrders,
		Meals:      []meals.Meal{{Protein: ref("Pollo")}},
	})

	updated, err := svc.SettleMethod(ctx, order.Collection, order.ID, "cash")
	if err != nil {
		t.Fatalf("SettleMethod: %v", err)
	}
	if !updated.PaymentSettled["cash"] {
		t.Error("cash must be marked settled")
	}
	if updated.Settled {
		t.Error("whole order must stay unsettled")
	}

	whole, err := svc.Settle(ctx, order.Collection, order.ID)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !whole.Settled || whole.SettledAt == nil {
		t.Error("Settle must set settled and settledAt")
	}
}

func TestCourierDefaults(t *testing.T) {
	o := &Order{}
	if o.Courier() != DefaultDeliveryPerson {
		t.Fatalf("Courier() = %q", o.Courier())
	}
	o.DeliveryPerson = "MARIA"
	if o.Courier() != "MARIA" {
		t.Fatalf("Courier() = %q", o.Courier())
	}
}

func TestSplitLinesPrecedence(t *testing.T) {
	o := &Order{
		Payments:     []PaymentLine{{Amount: 1}},
		PaymentLines: []PaymentLine{{Amount: 2}, {Amount: 3}},
	}
	if got := o.SplitLines(); len(got) != 2 {
		t.Fatalf("paymentLines must win, got %d rows", len(got))
	}
	o.PaymentLines = nil
	if got := o.SplitLines(); len(got) != 1 {
		t.Fatalf("payments is the fallback, got %d rows", len(got))
	}
}
