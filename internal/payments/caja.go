package payments

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

// MethodTotals is the register reconciliation sheet: per-method money
// split by settlement state, plus the channel grand totals the cashier
// checks at end of day.
type MethodTotals struct {
	NequiTotal          core.Money `json:"nequiTotal"`
	DaviplataTotal      core.Money `json:"daviplataTotal"`
	NequiPendiente      core.Money `json:"nequiPendiente"`
	DaviplataPendiente  core.Money `json:"daviplatasPendiente"`
	CashSalon           core.Money `json:"cashSalon"`
	CashClientesSettled core.Money `json:"cashClientesSettled"`
	CashClientesPending core.Money `json:"cashClientesPendiente"`
	TotalLiquidado      core.Money `json:"totalLiquidado"`
	TotalPendiente      core.Money `json:"totalPendiente"`
	TotalDomicilios     core.Money `json:"totalDomicilios"`
	TotalSalon          core.Money `json:"totalSalon"`

	// CashCaja is the cash physically reconcilable at the register:
	// everything the salon took plus delivery cash already turned in.
	CashCaja core.Money `json:"cashCaja"`
}

func methodSettled(o *orders.Order, key string) bool {
	return o.Settled || o.PaymentSettled[key]
}

// CalcMethodTotalsAll crosses every order by channel and settlement
// state. Salon money is liquidated the moment it is taken, since the
// waiter hands it straight to the register; delivery money stays
// pending per method until its settlement flag is raised, because until
// then the cash rides with the courier.
func CalcMethodTotalsAll(genericOrders, tableOrders, breakfastOrders []*orders.Order) MethodTotals {
	var acc MethodTotals

	accumulate := func(list []*orders.Order) {
		for _, o := range list {
			rows := ExtractOrderPayments(o)
			salon := IsSalonOrder(o)

			for _, r := range rows {
				amt := r.Amount
				if amt <= 0 {
					continue
				}

				if salon {
					acc.TotalSalon += amt
					switch r.MethodKey {
					case KeyCash:
						acc.CashSalon += amt
					case KeyNequi:
						acc.NequiTotal += amt
					case KeyDaviplata:
						acc.DaviplataTotal += amt
					}
					acc.TotalLiquidado += amt
					continue
				}

				acc.TotalDomicilios += amt
				switch r.MethodKey {
				case KeyCash:
					if methodSettled(o, KeyCash) {
						acc.CashClientesSettled += amt
						acc.TotalLiquidado += amt
					} else {
						acc.CashClientesPending += amt
						acc.TotalPendiente += amt
					}
				case KeyNequi:
					if methodSettled(o, KeyNequi) {
						acc.NequiTotal += amt
						acc.TotalLiquidado += amt
					} else {
						acc.NequiPendiente += amt
						acc.TotalPendiente += amt
					}
				case KeyDaviplata:
					if methodSettled(o, KeyDaviplata) {
						acc.DaviplataTotal += amt
						acc.TotalLiquidado += amt
					} else {
						acc.DaviplataPendiente += amt
						acc.TotalPendiente += amt
					}
				}
			}
		}
	}

	accumulate(genericOrders)
	accumulate(tableOrders)
	accumulate(breakfastOrders)

	acc.CashCaja = acc.CashSalon + acc.CashClientesSettled
	return acc
}
