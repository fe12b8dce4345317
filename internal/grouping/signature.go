package grouping

import (
	"sort"
	"strconv"
	"strings"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
)

// Display field labels, in the order they appear on receipts.
const (
	FieldSoup      = "Sopa"
	FieldPrinciple = "Principio"
	FieldProtein   = "Proteína"
	FieldDrink     = "Bebida"
	FieldCutlery   = "Cubiertos"
	FieldSides     = "Acompañamientos"
	FieldTime      = "Hora"
	FieldAddress   = "Dirección"
	FieldPayment   = "Pago"
	FieldAdditions = "Adiciones"
	FieldTable     = "Mesa"

	FieldType      = "Tipo"
	FieldBroth     = "Caldo"
	FieldEggs      = "Huevos"
	FieldRiceBread = "Arroz/Pan"
)

// MealFields are the attributes compared when clustering lunches.
var MealFields = []string{
	FieldSoup, FieldPrinciple, FieldProtein, FieldDrink, FieldCutlery,
	FieldSides, FieldTime, FieldAddress, FieldPayment, FieldAdditions,
	FieldTable,
}

// BreakfastFields are the attributes compared when clustering breakfasts.
var BreakfastFields = []string{
	FieldType, FieldBroth, FieldEggs, FieldRiceBread, FieldDrink,
	FieldProtein, FieldCutlery, FieldAdditions, FieldTable, FieldAddress,
}

// Signature is a line reduced to one canonical string per display field.
// Two lines are comparable attribute by attribute through their
// signatures, so the clustering code never touches domain structs.
type Signature struct {
	Fields []string
	values map[string]string
}

// Value returns the canonical value for a field, "" when untracked.
func (s Signature) Value(field string) string {
	return s.values[field]
}

// Key concatenates every field value. Equal keys mean identical lines
// under the display comparison.
func (s Signature) Key() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = s.values[f]
	}
	return strings.Join(parts, "|")
}

// differences counts fields whose canonical values diverge.
func (s Signature) differences(o Signature) int {
	n := 0
	for _, f := range s.Fields {
		if s.values[f] != o.values[f] {
			n++
		}
	}
	return n
}

func cleanName(ref *core.OptionRef) string {
	return core.CleanText(core.NameOf(ref))
}

func sortedCleanNames(refs []core.OptionRef) []string {
	names := make([]string, 0, len(refs))
	for i := range refs {
		names = append(names, core.CleanText(refs[i].Name))
	}
	sort.Strings(names)
	return names
}

func additionsValue(adds []core.Addition, withProtein bool) string {
	if len(adds) == 0 {
		return ""
	}
	parts := make([]string, 0, len(adds))
	for _, a := range adds {
		p := core.CleanText(a.Name)
		if withProtein {
			p += "/" + a.Protein
		}
		p += "/x" + strconv.Itoa(a.Qty())
		parts = append(parts, p)
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

func addressValue(a *core.Address, fields ...func(*core.Address) string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if a == nil {
			parts = append(parts, "")
		} else {
			parts = append(parts, f(a))
		}
	}
	return strings.Join(parts, "|")
}

// MealSignature canonicalizes one lunch line for clustering and
// common-field extraction.
func MealSignature(m *meals.Meal) Signature {
	v := make(map[string]string, len(MealFields))

	switch {
	case core.NameOf(m.Soup) == "Solo bandeja":
		v[FieldSoup] = "solo bandeja"
	case core.NameOf(m.SoupReplacement) != "":
		v[FieldSoup] = cleanName(m.SoupReplacement) + " (por sopa)"
	case core.NameOf(m.Soup) != "" && core.NameOf(m.Soup) != "Sin sopa":
		v[FieldSoup] = cleanName(m.Soup)
	default:
		v[FieldSoup] = "Sin sopa"
	}

	v[FieldPrinciple] = strings.Join(sortedCleanNames(m.Principle), ",") +
		"|" + cleanName(m.PrincipleReplacement)

	if name := cleanName(m.Protein); name != "" {
		v[FieldProtein] = name
	} else {
		v[FieldProtein] = "Sin proteína"
	}
	if name := cleanName(m.Drink); name != "" {
		v[FieldDrink] = name
	} else {
		v[FieldDrink] = "Sin bebida"
	}
	if m.Cutlery {
		v[FieldCutlery] = "Sí"
	} else {
		v[FieldCutlery] = "No"
	}
	v[FieldSides] = strings.Join(sortedCleanNames(m.Sides), ",")
	if name := core.NameOf(m.Time); name != "" {
		v[FieldTime] = name
	} else {
		v[FieldTime] = "No especificada"
	}
	v[FieldAddress] = addressValue(m.Address,
		func(a *core.Address) string { return a.Address },
		func(a *core.Address) string { return a.Neighborhood },
		func(a *core.Address) string { return a.PhoneNumber },
		func(a *core.Address) string { return a.Details },
	)
	if name := m.PaymentName(); name != "" {
		v[FieldPayment] = name
	} else {
		v[FieldPayment] = "No especificado"
	}
	v[FieldAdditions] = additionsValue(m.Additions, true)
	if m.TableNumber != "" {
		v[FieldTable] = m.TableNumber
	} else {
		v[FieldTable] = "No especificada"
	}

	return Signature{Fields: MealFields, values: v}
}

// BreakfastSignature canonicalizes one breakfast line.
func BreakfastSignature(b *breakfasts.Breakfast) Signature {
	v := make(map[string]string, len(BreakfastFields))

	fallback := func(field string, ref *core.OptionRef, empty string) {
		if name := cleanName(ref); name != "" {
			v[field] = name
		} else {
			v[field] = empty
		}
	}
	fallback(FieldType, b.Type, "Sin tipo")
	fallback(FieldBroth, b.Broth, "Sin caldo")
	fallback(FieldEggs, b.Eggs, "Sin huevos")
	fallback(FieldRiceBread, b.RiceBread, "Sin arroz/pan")
	fallback(FieldDrink, b.Drink, "Sin bebida")
	fallback(FieldProtein, b.Protein, "Sin proteína")

	if b.Cutlery {
		v[FieldCutlery] = "Sí"
	} else {
		v[FieldCutlery] = "No"
	}
	v[FieldAdditions] = additionsValue(b.Additions, false)
	if b.TableNumber != "" {
		v[FieldTable] = b.TableNumber
	} else {
		v[FieldTable] = "No especificada"
	}
	v[FieldAddress] = addressValue(b.Address,
		func(a *core.Address) string { return a.Address },
		func(a *core.Address) string { return a.AddressType },
		func(a *core.Address) string { return a.RecipientName },
		func(a *core.Address) string { return a.PhoneNumber },
		func(a *core.Address) string { return a.Neighborhood },
		func(a *core.Address) string { return a.Details },
		func(a *core.Address) string { return a.UnitDetails },
		func(a *core.Address) string { return a.LocalName },
	)

	return Signature{Fields: BreakfastFields, values: v}
}
