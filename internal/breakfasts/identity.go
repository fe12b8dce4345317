package breakfasts

import (
	"sort"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Identical reports whether two breakfast lines are the same dish. Options
// are compared by name (the OptionRef decoder already normalizes the
// string-vs-object shapes historical documents carry); additions are
// compared as sorted (name, quantity) pairs.
func Identical(a, b *Breakfast) bool {
	if a == nil || b == nil {
		return a == b
	}
	if core.NameOf(a.Type) != core.NameOf(b.Type) {
		return false
	}
	if core.NameOf(a.Broth) != core.NameOf(b.Broth) {
		return false
	}
	if core.NameOf(a.Eggs) != core.NameOf(b.Eggs) {
		return false
	}
	if core.NameOf(a.RiceBread) != core.NameOf(b.RiceBread) {
		return false
	}
	if core.NameOf(a.Protein) != core.NameOf(b.Protein) {
		return false
	}
	if core.NameOf(a.Drink) != core.NameOf(b.Drink) {
		return false
	}
	if a.Notes != b.Notes {
		return false
	}
	return sameAdditions(a.Additions, b.Additions)
}

func sameAdditions(a, b []core.Addition) bool {
	if len(a) != len(b) {
		return false
	}
	as := sortedByName(a)
	bs := sortedByName(b)
	for i := range as {
		if as[i].Name != bs[i].Name || as[i].Qty() != bs[i].Qty() {
			return false
		}
	}
	return true
}

func sortedByName(adds []core.Addition) []core.Addition {
	out := make([]core.Addition, len(adds))
	copy(out, adds)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
