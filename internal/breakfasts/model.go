package breakfasts

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Breakfast is one breakfast portion inside an order document.
type Breakfast struct {
	Type          *core.OptionRef `json:"type,omitempty"`
	Broth         *core.OptionRef `json:"broth,omitempty"`
	Eggs          *core.OptionRef `json:"eggs,omitempty"`
	RiceBread     *core.OptionRef `json:"riceBread,omitempty"`
	Drink         *core.OptionRef `json:"drink,omitempty"`
	Protein       *core.OptionRef `json:"protein,omitempty"`
	Additions     []core.Addition `json:"additions,omitempty"`
	Cutlery       bool            `json:"cutlery"`
	Notes         string          `json:"notes,omitempty"`
	Time          *core.OptionRef `json:"time,omitempty"`
	TableNumber   string          `json:"tableNumber,omitempty"`
	OrderType     string          `json:"orderType,omitempty"` // table|takeaway
	Payment       *core.OptionRef `json:"payment,omitempty"`
	PaymentMethod *core.OptionRef `json:"paymentMethod,omitempty"`
	Address       *core.Address   `json:"address,omitempty"`
}

// PaymentName reads the payment label from either historical field name
// (client flows wrote payment, waiter flows wrote paymentMethod).
func (b *Breakfast) PaymentName() string {
	if name := core.NameOf(b.Payment); name != "" {
		return name
	}
	return core.NameOf(b.PaymentMethod)
}
