package payments

import (
	"strings"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

// orderTypeTag finds the channel tag wherever a document stored it.
func orderTypeTag(o *orders.Order) string {
	if o.OrderType != "" {
		return o.OrderType
	}
	if len(o.Meals) > 0 {
		return o.Meals[0].OrderType
	}
	if len(o.Breakfasts) > 0 {
		return o.Breakfasts[0].OrderType
	}
	return ""
}

// IsDeliveryOrder reports whether the order went out with a courier.
func IsDeliveryOrder(o *orders.Order) bool {
	if strings.Contains(strings.ToLower(o.Collection), "delivery") {
		return true
	}
	t := core.FoldName(orderTypeTag(o))
	return strings.Contains(t, "delivery") || strings.Contains(t, "domicil")
}

// IsTableOrder reports whether the order was eaten at a table.
func IsTableOrder(o *orders.Order) bool {
	if strings.Contains(strings.ToLower(o.Collection), "table") {
		return true
	}
	if len(o.Meals) > 0 && o.Meals[0].TableNumber != "" {
		return true
	}
	return len(o.Breakfasts) > 0 && o.Breakfasts[0].TableNumber != ""
}

// IsSalonOrder reports whether the order was taken by waiter staff in
// the dining room. Anything from a table collection counts, and so do
// breakfasts entered as table or takeaway (the waiter rings those up
// directly, there is no courier in between).
func IsSalonOrder(o *orders.Order) bool {
	if strings.Contains(strings.ToLower(o.Collection), "table") {
		return true
	}
	if len(o.Breakfasts) == 0 {
		return false
	}
	t := core.FoldName(o.OrderType)
	if t == "" && len(o.Breakfasts) > 0 {
		t = core.FoldName(o.Breakfasts[0].OrderType)
	}
	return strings.Contains(t, "table") ||
		strings.Contains(t, "takeaway") ||
		strings.Contains(t, "llevar")
}

// IsCashSettled checks the assorted markers historical documents use to
// say a courier already turned the cash in.
func IsCashSettled(o *orders.Order) bool {
	if o.Settlement != nil && core.FoldName(o.Settlement.Status) == "liquidated" {
		return true
	}
	if o.Liquidated || o.CashSettled {
		return true
	}
	if o.SettledAt != nil {
		return true
	}
	return o.Settled
}
