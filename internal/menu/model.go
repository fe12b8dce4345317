package menu

import (
	"time"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Catalog categories. Each order line field selects from one of these.
const (
	CategorySoups          = "soups"
	CategoryPrinciples     = "principles"
	CategoryProteins       = "proteins"
	CategoryDrinks         = "drinks"
	CategorySides          = "sides"
	CategoryTimes          = "times"
	CategoryAdditions      = "additions"
	CategoryBreakfastTypes = "breakfastTypes"
	CategoryBroths         = "broths"
	CategoryEggs           = "eggs"
	CategoryRiceBread      = "riceBread"
	CategoryPayments       = "paymentMethods"
)

// Option is one selectable catalog entry.
type Option struct {
	ID        string     `json:"id"`
	Category  string     `json:"category"`
	Name      string     `json:"name"`
	Price     core.Money `json:"price,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Ref converts a catalog option to the reference shape order lines use.
func (o Option) Ref() core.OptionRef {
	return core.OptionRef{Name: o.Name}
}
