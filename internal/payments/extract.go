package payments

import (
	"strings"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

// Row is one derived payment row for an order: ephemeral, recomputed on
// every reconciliation pass, never persisted in this shape.
type Row struct {
	MethodKey string     `json:"methodKey"`
	Amount    core.Money `json:"amount"`
	RawLabel  string     `json:"rawLabel"`
}

// ExtractOrderPayments derives the payment rows for an order.
//
// The authoritative amount is orders.CorrectTotal, never the stored
// total. When the order carries an explicit split, each line maps to a
// row; for breakfast orders whose split was recorded against a stale
// total, every amount is rescaled by authoritative/original and floored
// per row. The floors are independent, so the rows may undershoot the
// total by up to rows-1 pesos. That slack is accepted; no row is
// adjusted to compensate.
//
// Without a split, a single legacy method field claims the entire
// total, probed in a fixed order: first meal line's paymentMethod then
// payment, first breakfast line's payment then paymentMethod, then the
// order-level fields. If nothing is found the whole total lands in the
// "other" bucket.
func ExtractOrderPayments(o *orders.Order) []Row {
	total := orders.CorrectTotal(o)

	if lines := o.SplitLines(); len(lines) > 0 {
		ratio := 1.0
		if o.IsBreakfast() {
			var original core.Money
			for _, l := range lines {
				original += l.Amount
			}
			if original > 0 && original != total {
				ratio = float64(total) / float64(original)
			}
		}

		rows := make([]Row, 0, len(lines))
		for _, l := range lines {
			amount := l.Amount
			if ratio != 1.0 {
				amount = core.Money(float64(l.Amount) * ratio)
			}
			rows = append(rows, Row{
				MethodKey: NormalizeMethod(l.Method),
				Amount:    amount,
				RawLabel:  MethodLabel(l.Method),
			})
		}
		return rows
	}

	for _, ref := range legacyMethodSources(o) {
		if core.NameOf(ref) == "" {
			continue
		}
		return []Row{{
			MethodKey: NormalizeMethod(ref),
			Amount:    total,
			RawLabel:  MethodLabel(ref),
		}}
	}

	return []Row{{MethodKey: KeyOther, Amount: total, RawLabel: LabelOther}}
}

func legacyMethodSources(o *orders.Order) []*core.OptionRef {
	var sources []*core.OptionRef
	if len(o.Meals) > 0 {
		sources = append(sources, o.Meals[0].PaymentMethod, o.Meals[0].Payment)
	}
	if len(o.Breakfasts) > 0 {
		sources = append(sources, o.Breakfasts[0].Payment, o.Breakfasts[0].PaymentMethod)
	}
	return append(sources, o.PaymentMethod, o.Payment)
}

// SplitMatchesTotal reports whether an explicit split adds up to the
// authoritative total. Lunch splits are never rescaled, so drift is
// surfaced to the dashboard instead of silently corrected.
func SplitMatchesTotal(o *orders.Order) bool {
	lines := o.SplitLines()
	if len(lines) == 0 {
		return true
	}
	var sum core.Money
	for _, l := range lines {
		sum += l.Amount
	}
	return sum == orders.CorrectTotal(o)
}

// MethodSums are quick per-method totals for dashboard tiles.
type MethodSums struct {
	Cash      core.Money `json:"cash"`
	Nequi     core.Money `json:"nequi"`
	Daviplata core.Money `json:"daviplata"`
	Other     core.Money `json:"other"`
	Total     core.Money `json:"total"`
}

// SumPaymentsByMethod flattens ExtractOrderPayments across orders.
func SumPaymentsByMethod(list []*orders.Order) MethodSums {
	var out MethodSums
	for _, o := range list {
		for _, r := range ExtractOrderPayments(o) {
			switch r.MethodKey {
			case KeyCash:
				out.Cash += r.Amount
			case KeyNequi:
				out.Nequi += r.Amount
			case KeyDaviplata:
				out.Daviplata += r.Amount
			default:
				out.Other += r.Amount
			}
			out.Total += r.Amount
		}
	}
	return out
}

// SummarizePayments renders rows as compact receipt text, for example
// "Efectivo $6.000 + Nequi $6.000". The other bucket only shows when
// no named method has money, and no rows at all reads "Sin pago".
func SummarizePayments(rows []Row) string {
	if len(rows) == 0 {
		return "Sin pago"
	}

	agg := map[string]core.Money{}
	for _, r := range rows {
		agg[r.MethodKey] += r.Amount
	}

	var parts []string
	if agg[KeyCash] != 0 {
		parts = append(parts, LabelCash+" "+core.FormatCOP(agg[KeyCash]))
	}
	if agg[KeyNequi] != 0 {
		parts = append(parts, LabelNequi+" "+core.FormatCOP(agg[KeyNequi]))
	}
	if agg[KeyDaviplata] != 0 {
		parts = append(parts, LabelDaviplata+" "+core.FormatCOP(agg[KeyDaviplata]))
	}
	if agg[KeyOther] != 0 && len(parts) == 0 {
		parts = append(parts, LabelOther+" "+core.FormatCOP(agg[KeyOther]))
	}
	if len(parts) == 0 {
		return "Sin pago"
	}
	return strings.Join(parts, " + ")
}
