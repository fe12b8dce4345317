package orders

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
)

// CorrectTotal is the single authoritative amount for an order.
//
// Breakfast totals stored on old documents are unreliable: the app that
// wrote them priced against a stale orderType. So for breakfast orders
// the order type is re-inferred from whether any line carries delivery
// address data, that inference overrides every line's stored orderType,
// and the total is recomputed from the price table. Everything that
// splits or reconciles money must call this instead of reading
// order.Total directly.
func CorrectTotal(o *Order) core.Money {
	if o == nil {
		return 0
	}
	if !o.IsBreakfast() {
		return o.Total
	}

	orderType := "table"
	for i := range o.Breakfasts {
		if o.Breakfasts[i].Address.HasDeliveryData() {
			orderType = "takeaway"
			break
		}
	}

	var total core.Money
	for i := range o.Breakfasts {
		line := o.Breakfasts[i]
		line.OrderType = orderType
		total += breakfasts.Price(&line)
	}
	return total
}

// ComputeTotal prices a new order from its lines. Breakfast orders go
// through CorrectTotal so creation and reconciliation can never drift.
func ComputeTotal(o *Order) core.Money {
	if o.IsBreakfast() {
		return CorrectTotal(o)
	}
	return meals.TotalPrice(o.Meals)
}
