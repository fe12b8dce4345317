package meals

import (
	"strings"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Lunch prices by order type (COP):
//   Normal:       mesa 12.000 / llevar 13.000
//   Solo bandeja: mesa 11.000 / llevar 12.000
//   Mojarra:      16.000 flat, regardless of order type
// Additions always add price × quantity on top.
var priceMap = map[string]map[string]core.Money{
	"table":    {"normal": 12000, "bandeja": 11000},
	"takeaway": {"normal": 13000, "bandeja": 12000},
}

const mojarraBase = core.Money(16000)

// NormalizeOrderType maps the stored order-type value (plus its legacy
// synonyms) to "table" or "takeaway". A line with a delivery address and no
// table number counts as takeaway; everything else defaults to table.
func NormalizeOrderType(raw string, m *Meal) string {
	switch core.FoldName(raw) {
	case "table", "mesa", "para mesa", "en mesa":
		return "table"
	case "takeaway", "para llevar", "llevar", "take away", "take-away",
		"delivery", "deliveri", "deli", "domicilio", "domicilios", "a domicilio":
		return "takeaway"
	}

	if m != nil && m.Address.HasDeliveryData() && strings.TrimSpace(m.TableNumber) == "" {
		return "takeaway"
	}
	return "table"
}

// isSoloBandeja reports whether the customer chose the tray-only lunch,
// either directly as the soup choice or via a soup replacement.
func isSoloBandeja(m *Meal) bool {
	if core.FoldName(core.NameOf(m.Soup)) == "solo bandeja" {
		return true
	}
	if m.SoupReplacement == nil {
		return false
	}
	replName := core.FoldName(m.SoupReplacement.Name)
	hasReplaceWord := strings.Contains(replName, "remplazo") || strings.Contains(replName, "reemplazo")
	return hasReplaceWord && core.FoldName(m.SoupReplacement.Replacement) == "solo bandeja"
}

func additionsTotal(adds []core.Addition) core.Money {
	var sum core.Money
	for _, a := range adds {
		sum += a.Price * core.Money(a.Qty())
	}
	return sum
}

// Price computes the full price of one lunch line. Missing options
// contribute nothing; the result is always non-negative and deterministic.
func Price(m *Meal) core.Money {
	if m == nil {
		return 0
	}

	if strings.Contains(core.FoldName(core.NameOf(m.Protein)), "mojarra") {
		return mojarraBase + additionsTotal(m.Additions)
	}

	orderType := NormalizeOrderType(m.OrderType, m)
	kind := "normal"
	if isSoloBandeja(m) {
		kind = "bandeja"
	}
	return priceMap[orderType][kind] + additionsTotal(m.Additions)
}

// TotalPrice sums Price over all lines. An empty list totals zero.
func TotalPrice(lines []Meal) core.Money {
	var sum core.Money
	for i := range lines {
		sum += Price(&lines[i])
	}
	return sum
}
