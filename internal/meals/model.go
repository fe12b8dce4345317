package meals

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Meal is one lunch portion inside an order document.
//
// Field shapes are tolerant of historical data: every option may be absent,
// principle may hold several items ("mixed"), and payment lives under either
// payment or paymentMethod depending on the flow that wrote the document.
type Meal struct {
	Soup                 *core.OptionRef  `json:"soup,omitempty"`
	SoupReplacement      *core.OptionRef  `json:"soupReplacement,omitempty"`
	Principle            []core.OptionRef `json:"principle,omitempty"`
	PrincipleReplacement *core.OptionRef  `json:"principleReplacement,omitempty"`
	Protein              *core.OptionRef  `json:"protein,omitempty"`
	Drink                *core.OptionRef  `json:"drink,omitempty"`
	Sides                []core.OptionRef `json:"sides,omitempty"`
	Additions            []core.Addition  `json:"additions,omitempty"`
	Cutlery              bool             `json:"cutlery"`
	Notes                string           `json:"notes,omitempty"`
	Time                 *core.OptionRef  `json:"time,omitempty"`
	TableNumber          string           `json:"tableNumber,omitempty"`
	OrderType            string           `json:"orderType,omitempty"` // table|takeaway plus legacy synonyms
	Payment              *core.OptionRef  `json:"payment,omitempty"`
	PaymentMethod        *core.OptionRef  `json:"paymentMethod,omitempty"`
	Address              *core.Address    `json:"address,omitempty"`
}

// PaymentName returns the line's payment label from whichever of the two
// historical fields is set.
func (m *Meal) PaymentName() string {
	if name := core.NameOf(m.Payment); name != "" {
		return name
	}
	return core.NameOf(m.PaymentMethod)
}

// specialRiceOptions bundle the protein into the rice; protein is neither
// priced nor displayed separately for these.
var specialRiceOptions = map[string]bool{
	"Arroz con pollo":   true,
	"Arroz paisa":       true,
	"Arroz tres carnes": true,
}

// HasSpecialRice reports whether the principle contains a special rice.
func (m *Meal) HasSpecialRice() bool {
	for _, p := range m.Principle {
		if specialRiceOptions[p.Name] {
			return true
		}
	}
	return false
}
