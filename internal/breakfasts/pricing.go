package breakfasts

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// tierPrice is one price table row: dine-in ("mesa") vs takeaway ("llevar").
type tierPrice struct {
	Mesa   core.Money
	Llevar core.Money
}

const defaultBroth = ""

// priceTable holds the breakfast base prices (COP) keyed by folded type
// name, then folded broth name. The "" broth entry is the default row for
// types whose price does not depend on the broth or whose broth is unknown.
var priceTable = map[string]map[string]tierPrice{
	"solo huevos": {
		defaultBroth: {Mesa: 7000, Llevar: 8000},
	},
	"solo caldo": {
		"caldo de costilla":  {Mesa: 7000, Llevar: 8000},
		"caldo de pescado":   {Mesa: 7000, Llevar: 8000},
		"caldo de pata":      {Mesa: 8000, Llevar: 9000},
		"caldo de pajarilla": {Mesa: 9000, Llevar: 10000},
		defaultBroth:         {Mesa: 7000, Llevar: 8000},
	},
	"desayuno completo": {
		"caldo de costilla":  {Mesa: 11000, Llevar: 12000},
		"caldo de pescado":   {Mesa: 11000, Llevar: 12000},
		"caldo de pata":      {Mesa: 12000, Llevar: 13000},
		"caldo de pajarilla": {Mesa: 13000, Llevar: 14000},
		defaultBroth:         {Mesa: 11000, Llevar: 12000},
	},
	"moñona": {
		defaultBroth: {Mesa: 13000, Llevar: 14000},
	},
}

// Price for breakfasts whose type the table does not know.
var fallbackPrice = tierPrice{Mesa: 7000, Llevar: 8000}

// Price computes the full price of one breakfast line: base from the price
// table (orderType defaults to takeaway when unset) plus additions. Unknown
// types and broths fall back to the cheapest row rather than failing.
func Price(b *Breakfast) core.Money {
	if b == nil || core.NameOf(b.Type) == "" {
		return 0
	}

	typeName := core.FoldName(b.Type.Name)
	brothName := core.FoldName(core.NameOf(b.Broth))

	base := fallbackPrice
	if byBroth, ok := priceTable[typeName]; ok {
		row, ok := byBroth[brothName]
		if !ok {
			row = byBroth[defaultBroth]
		}
		base = row
	}

	var basePrice core.Money
	if b.OrderType == "table" {
		basePrice = base.Mesa
	} else {
		basePrice = base.Llevar
	}

	var additions core.Money
	for _, a := range b.Additions {
		additions += a.Price * core.Money(a.Qty())
	}
	return basePrice + additions
}

// TotalPrice sums Price over all lines. An empty list totals zero.
func TotalPrice(lines []Breakfast) core.Money {
	var sum core.Money
	for i := range lines {
		sum += Price(&lines[i])
	}
	return sum
}
