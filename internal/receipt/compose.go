package receipt

import (
	"strconv"
	"strings"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/grouping"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/payments"
)

// Options tune the composition.
type Options struct {
	// SideCatalog is the full list of side options; when present,
	// excluded sides render as a "No Incluir" line.
	SideCatalog []core.OptionRef
}

// Compose turns an order into renderer-agnostic blocks: for each
// similarity cluster a header with count, subtotal and payment labels,
// the common fields once, then a Diferencias sub-block per run of
// identical lines listing only the deviating fields. One composer
// feeds the text, HTML and printer renderers.
func Compose(o *orders.Order, opts Options) []Block {
	var blocks []Block

	if o.IsBreakfast() {
		blocks = composeBreakfasts(o.Breakfasts, opts)
	} else {
		blocks = composeMeals(o.Meals, opts)
	}

	blocks = append(blocks, separator())
	blocks = append(blocks, header("Total: "+core.FormatCOP(orders.CorrectTotal(o))))
	blocks = append(blocks, field("Pago: "+payments.SummarizePayments(payments.ExtractOrderPayments(o))))
	return blocks
}

func composeMeals(list []meals.Meal, opts Options) []Block {
	var blocks []Block
	groups := grouping.ClusterMeals(list)

	for gi, g := range groups {
		if gi > 0 {
			blocks = append(blocks, separator())
		}

		members := make([]meals.Meal, len(g.Indices))
		for i, idx := range g.Indices {
			members[i] = list[idx]
		}

		blocks = append(blocks, header(groupHeader(
			len(members), "Almuerzo", "Almuerzos iguales",
			meals.TotalPrice(members), mealPaymentNames(members))))

		rep := &list[g.Indices[0]]
		for _, f := range grouping.MealFields {
			if !g.Common[f] {
				continue
			}
			for _, line := range mealFieldLines(rep, f, opts) {
				blocks = append(blocks, field(line))
			}
		}
		if len(members) == 1 && members[0].Notes != "" {
			blocks = append(blocks, field("Notas: "+members[0].Notes))
		}

		blocks = append(blocks, mealDifferences(list, g, opts)...)
	}
	return blocks
}

func mealDifferences(list []meals.Meal, g grouping.Group, opts Options) []Block {
	if len(g.Subgroups) < 2 {
		return nil
	}

	blocks := []Block{field("Diferencias:")}
	for _, sub := range g.Subgroups {
		if n := len(sub); n > 1 {
			blocks = append(blocks, field("* "+strconv.Itoa(n)+" almuerzos iguales"))
		}
		rep := &list[sub[0]]
		for _, f := range grouping.MealFields {
			if g.Common[f] {
				continue
			}
			for _, line := range mealFieldLines(rep, f, opts) {
				blocks = append(blocks, field(line))
			}
		}
	}
	return blocks
}

func composeBreakfasts(list []breakfasts.Breakfast, opts Options) []Block {
	var blocks []Block
	groups := grouping.ClusterBreakfasts(list)

	for gi, g := range groups {
		if gi > 0 {
			blocks = append(blocks, separator())
		}

		members := make([]breakfasts.Breakfast, len(g.Indices))
		for i, idx := range g.Indices {
			members[i] = list[idx]
		}

		names := paymentNames(len(members), func(i int) string { return members[i].PaymentName() })
		blocks = append(blocks, header(groupHeader(
			len(members), "Desayuno", "Desayunos iguales",
			breakfasts.TotalPrice(members), names)))

		rep := &list[g.Indices[0]]
		for _, f := range grouping.BreakfastFields {
			if !g.Common[f] {
				continue
			}
			for _, line := range breakfastFieldLines(rep, f) {
				blocks = append(blocks, field(line))
			}
		}
		if len(members) == 1 && members[0].Notes != "" {
			blocks = append(blocks, field("Notas: "+members[0].Notes))
		}

		if len(g.Subgroups) > 1 {
			blocks = append(blocks, field("Diferencias:"))
			for _, sub := range g.Subgroups {
				if n := len(sub); n > 1 {
					blocks = append(blocks, field("* "+strconv.Itoa(n)+" desayunos iguales"))
				}
				rep := &list[sub[0]]
				for _, f := range grouping.BreakfastFields {
					if g.Common[f] {
						continue
					}
					for _, line := range breakfastFieldLines(rep, f) {
						blocks = append(blocks, field(line))
					}
				}
			}
		}
	}
	return blocks
}

func groupHeader(count int, singular, plural string, total core.Money, names []string) string {
	label := strconv.Itoa(count) + " " + singular
	if count > 1 {
		label = strconv.Itoa(count) + " " + plural
	}
	return label + " – " + core.FormatCOP(total) + " (" + strings.Join(names, " y ") + ")"
}

func mealPaymentNames(members []meals.Meal) []string {
	return paymentNames(len(members), func(i int) string { return members[i].PaymentName() })
}

// paymentNames collects the distinct payment labels of a group, first
// seen first, defaulting to "No especificado".
func paymentNames(n int, name func(int) string) []string {
	var names []string
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		label := name(i)
		if label == "" || label == "No especificado" || seen[label] {
			continue
		}
		seen[label] = true
		names = append(names, label)
	}
	if len(names) == 0 {
		names = []string{"No especificado"}
	}
	return names
}

// mealFieldLines renders one display field of a lunch line.
func mealFieldLines(m *meals.Meal, f string, opts Options) []string {
	switch f {
	case grouping.FieldSoup:
		switch {
		case core.NameOf(m.Soup) == "Solo bandeja":
			return []string{"solo bandeja"}
		case core.NameOf(m.SoupReplacement) != "":
			return []string{core.CleanText(m.SoupReplacement.Name) + " (por sopa)"}
		case core.NameOf(m.Soup) != "" && core.NameOf(m.Soup) != "Sin sopa":
			return []string{core.CleanText(m.Soup.Name)}
		default:
			return []string{"Sin sopa"}
		}
	case grouping.FieldPrinciple:
		if core.NameOf(m.PrincipleReplacement) != "" {
			return []string{core.CleanText(m.PrincipleReplacement.Name) + " (por principio)"}
		}
		if len(m.Principle) == 0 {
			return []string{"Sin principio"}
		}
		names := make([]string, len(m.Principle))
		for i, p := range m.Principle {
			names[i] = core.CleanText(p.Name)
		}
		line := strings.Join(names, ", ")
		if len(names) > 1 {
			line += " (mixto)"
		}
		return []string{line}
	case grouping.FieldProtein:
		if m.HasSpecialRice() {
			return []string{"Proteína: Ya incluida en el arroz"}
		}
		if name := core.NameOf(m.Protein); name != "" {
			return []string{core.CleanText(name)}
		}
		return []string{"Sin proteína"}
	case grouping.FieldDrink:
		name := core.NameOf(m.Drink)
		if name == "" {
			return []string{"Sin bebida"}
		}
		if name == "Juego de mango" { // long-standing typo in the catalog
			return []string{"Jugo de mango"}
		}
		return []string{core.CleanText(name)}
	case grouping.FieldCutlery:
		if m.Cutlery {
			return []string{"Cubiertos: Sí"}
		}
		return []string{"Cubiertos: No"}
	case grouping.FieldSides:
		var lines []string
		if m.HasSpecialRice() {
			return []string{"Acompañamientos: Ya incluidos"}
		}
		if len(m.Sides) == 0 {
			return []string{"Acompañamientos: Ninguno"}
		}
		names := make([]string, len(m.Sides))
		for i, s := range m.Sides {
			names[i] = core.CleanText(s.Name)
		}
		lines = append(lines, "Acompañamientos: "+strings.Join(names, ", "))
		if excluded := meals.ExcludedSides(m, opts.SideCatalog); len(excluded) > 0 {
			lines = append(lines, "No Incluir: "+strings.Join(excluded, ", "))
		}
		return lines
	case grouping.FieldTime:
		if name := core.NameOf(m.Time); name != "" {
			return []string{"Hora: " + core.CleanText(name)}
		}
		return nil
	case grouping.FieldAddress:
		return addressLines(m.Address)
	case grouping.FieldPayment:
		if name := m.PaymentName(); name != "" {
			return []string{"Pago: " + name}
		}
		return nil
	case grouping.FieldAdditions:
		return additionLines(m.Additions, true)
	case grouping.FieldTable:
		if m.TableNumber != "" {
			return []string{"Mesa: " + m.TableNumber}
		}
		return nil
	}
	return nil
}

// breakfastFieldLines renders one display field of a breakfast line.
func breakfastFieldLines(b *breakfasts.Breakfast, f string) []string {
	named := func(ref *core.OptionRef) []string {
		if name := core.NameOf(ref); name != "" {
			return []string{core.CleanText(name)}
		}
		return nil
	}

	switch f {
	case grouping.FieldType:
		return named(b.Type)
	case grouping.FieldBroth:
		return named(b.Broth)
	case grouping.FieldEggs:
		return named(b.Eggs)
	case grouping.FieldRiceBread:
		return named(b.RiceBread)
	case grouping.FieldDrink:
		return named(b.Drink)
	case grouping.FieldProtein:
		return named(b.Protein)
	case grouping.FieldCutlery:
		if b.Cutlery {
			return []string{"Cubiertos: Sí"}
		}
		return []string{"Cubiertos: No"}
	case grouping.FieldAdditions:
		return additionLines(b.Additions, false)
	case grouping.FieldTable:
		if b.TableNumber != "" {
			return []string{"Mesa: " + b.TableNumber}
		}
		return nil
	case grouping.FieldAddress:
		return addressLines(b.Address)
	}
	return nil
}

func additionLines(adds []core.Addition, withProtein bool) []string {
	var lines []string
	for _, a := range adds {
		line := "- " + core.CleanText(a.Name)
		if withProtein {
			if extra := a.Protein; extra != "" {
				line += " (" + extra + ")"
			} else if a.Replacement != "" {
				line += " (" + a.Replacement + ")"
			}
		}
		line += " (" + strconv.Itoa(a.Qty()) + ")"
		lines = append(lines, line)
	}
	return lines
}

func addressLines(a *core.Address) []string {
	if a == nil {
		return nil
	}
	var lines []string
	if a.Address != "" {
		lines = append(lines, "Dirección: "+a.Address)
	}
	if a.PhoneNumber != "" {
		lines = append(lines, "Teléfono: "+a.PhoneNumber)
	}
	if a.Neighborhood != "" {
		lines = append(lines, "Barrio: "+a.Neighborhood)
	}
	if a.Details != "" {
		lines = append(lines, "Detalles: "+a.Details)
	}
	if a.RecipientName != "" {
		lines = append(lines, "Recibe: "+a.RecipientName)
	}
	return lines
}
