package meals

import (
	"sort"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Identical reports whether two lunch lines are structurally the same dish.
// Option order never matters: principle, sides and additions are compared as
// sorted name-sets, so a line picked in a different order still groups.
func Identical(a, b *Meal) bool {
	if a == nil || b == nil {
		return a == b
	}
	if core.NameOf(a.Soup) != core.NameOf(b.Soup) {
		return false
	}
	if core.NameOf(a.SoupReplacement) != core.NameOf(b.SoupReplacement) {
		return false
	}
	if core.NameOf(a.PrincipleReplacement) != core.NameOf(b.PrincipleReplacement) {
		return false
	}
	if core.NameOf(a.Protein) != core.NameOf(b.Protein) {
		return false
	}
	if core.NameOf(a.Drink) != core.NameOf(b.Drink) {
		return false
	}
	if a.Cutlery != b.Cutlery || a.Notes != b.Notes {
		return false
	}
	if !sameNameSet(a.Principle, b.Principle) {
		return false
	}
	if !sameNameSet(a.Sides, b.Sides) {
		return false
	}
	return sameAdditions(a.Additions, b.Additions)
}

func sameNameSet(a, b []core.OptionRef) bool {
	if len(a) != len(b) {
		return false
	}
	an := sortedNames(a)
	bn := sortedNames(b)
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

func sortedNames(refs []core.OptionRef) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	sort.Strings(names)
	return names
}

// sameAdditions compares additions as (name, protein, quantity) triplets
// after sorting by name.
func sameAdditions(a, b []core.Addition) bool {
	if len(a) != len(b) {
		return false
	}
	as := sortedAdditions(a)
	bs := sortedAdditions(b)
	for i := range as {
		if as[i].Name != bs[i].Name || as[i].Protein != bs[i].Protein || as[i].Qty() != bs[i].Qty() {
			return false
		}
	}
	return true
}

func sortedAdditions(adds []core.Addition) []core.Addition {
	out := make([]core.Addition, len(adds))
	copy(out, adds)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
