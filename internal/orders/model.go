package orders

import (
	"encoding/json"
	"time"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
)

// Collections orders are stored under. The collection doubles as the
// sales channel marker: anything containing "table" was taken by a
// waiter in the dining room.
const (
	CollectionOrders          = "orders"
	CollectionTableOrders     = "tableOrders"
	CollectionBreakfast       = "breakfastOrders"
	CollectionDeliveryPersons = "deliveryPersons"
)

// Order statuses.
const (
	StatusPending   = "Pendiente"
	StatusPreparing = "Preparando"
	StatusCompleted = "Completada"
	StatusCancelled = "Cancelada"
	StatusDelivered = "Entregado"
)

// DefaultDeliveryPerson is assigned when a delivery order carries no
// courier name. Settlement grouping needs every order attributed.
const DefaultDeliveryPerson = "JUAN"

// PaymentLine is one row of an explicit payment split as entered by
// the cashier. Method tolerates both the string and {name} shapes.
type PaymentLine struct {
	Method *core.OptionRef `json:"method,omitempty"`
	Amount core.Money      `json:"amount"`
}

// Settlement is the nested marker some historical documents carry
// instead of the flat settled flag.
type Settlement struct {
	Status string `json:"status,omitempty"`
}

// Order is one persisted order document. Either Meals or Breakfasts is
// populated, never both. Field shapes tolerate every historical writer:
// totals may be stale for breakfast orders, payments may live under
// payments or paymentLines, and settlement state is spread over five
// different markers.
type Order struct {
	ID         string `json:"id,omitempty"`
	Collection string `json:"-"`
	Type       string `json:"type,omitempty"`      // "breakfast" marks breakfast orders
	OrderType  string `json:"orderType,omitempty"` // order-level channel tag on some documents

	Meals      []meals.Meal           `json:"meals,omitempty"`
	Breakfasts []breakfasts.Breakfast `json:"breakfasts,omitempty"`

	Total         core.Money      `json:"total,omitempty"`
	Payments      []PaymentLine   `json:"payments,omitempty"`
	PaymentLines  []PaymentLine   `json:"paymentLines,omitempty"`
	PaymentMethod *core.OptionRef `json:"paymentMethod,omitempty"`
	Payment       *core.OptionRef `json:"payment,omitempty"`

	Status         string `json:"status,omitempty"`
	DeliveryPerson string `json:"deliveryPerson,omitempty"`

	Settled        bool            `json:"settled,omitempty"`
	PaymentSettled map[string]bool `json:"paymentSettled,omitempty"`
	Settlement     *Settlement     `json:"settlement,omitempty"`
	Liquidated     bool            `json:"liquidated,omitempty"`
	CashSettled    bool            `json:"cashSettled,omitempty"`
	SettledAt      *time.Time      `json:"settledAt,omitempty"`

	PrintedAt *time.Time `json:"printedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

// IsBreakfast reports whether the order prices as a breakfast. Both
// the explicit type marker and the presence of breakfast lines count,
// since old documents only have one or the other.
func (o *Order) IsBreakfast() bool {
	return o.Type == "breakfast" || len(o.Breakfasts) > 0
}

// HasDeliveryAddress reports whether any line carries delivery data.
func (o *Order) HasDeliveryAddress() bool {
	for i := range o.Meals {
		if o.Meals[i].Address.HasDeliveryData() {
			return true
		}
	}
	for i := range o.Breakfasts {
		if o.Breakfasts[i].Address.HasDeliveryData() {
			return true
		}
	}
	return false
}

// SplitLines returns the explicit payment split, preferring the
// canonical paymentLines field over the legacy payments field.
func (o *Order) SplitLines() []PaymentLine {
	if len(o.PaymentLines) > 0 {
		return o.PaymentLines
	}
	return o.Payments
}

// Courier returns the assigned delivery person, defaulted.
func (o *Order) Courier() string {
	if o.DeliveryPerson != "" {
		return o.DeliveryPerson
	}
	return DefaultDeliveryPerson
}

// Document serializes the order to its stored JSONB form.
func (o *Order) Document() ([]byte, error) {
	return json.Marshal(o)
}
