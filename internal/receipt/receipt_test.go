package receipt

import (
	"strings"
	"testing"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/orders"
)

func ref(name string) *core.OptionRef { return &core.OptionRef{Name: name} }

func lunch(protein string) meals.Meal {
	return meals.Meal{
		Soup:      ref("Sopa de pasta"),
		Principle: []core.OptionRef{{Name: "Arroz"}},
		Protein:   ref(protein),
		OrderType: "table",
	}
}

func texts(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Text
	}
	return out
}

func containsField(blocks []Block, text string) bool {
	for _, b := range blocks {
		if b.Kind == KindField && b.Text == text {
			return true
		}
	}
	return false
}

func TestComposeGroupsAndDifferences(t *testing.T) {
	// Two identical lunches plus one that differs only in protein: one
	// cluster, soup and principle shown once, protein listed under
	// Diferencias for each identical run.
	order := &orders.Order{
		Collection: orders.CollectionTableOrders,
		Meals:      []meals.Meal{lunch("Pollo"), lunch("Pollo"), lunch("Carne")},
		Total:      36000,
	}

	blocks := Compose(order, Options{})

	if blocks[0].Kind != KindHeader {
		t.Fatalf("first block = %+v, want header", blocks[0])
	}
	if !strings.Contains(blocks[0].Text, "3 Almuerzos iguales") {
		t.Errorf("header = %q", blocks[0].Text)
	}
	if !strings.Contains(blocks[0].Text, "$36.000") {
		t.Errorf("header missing subtotal: %q", blocks[0].Text)
	}

	all := strings.Join(texts(blocks), "\n")
	if strings.Count(all, "Sopa de pasta") != 1 {
		t.Errorf("common soup must render exactly once:\n%s", all)
	}
	if !containsField(blocks, "Diferencias:") {
		t.Fatalf("missing differences block:\n%s", all)
	}
	if !containsField(blocks, "* 2 almuerzos iguales") {
		t.Errorf("missing identical-run marker:\n%s", all)
	}
	if !containsField(blocks, "Carne") || !containsField(blocks, "Pollo") {
		t.Errorf("differences must list both proteins:\n%s", all)
	}
}

func TestComposeSingleLineShowsEverything(t *testing.T) {
	m := lunch("Pollo")
	m.Drink = ref("Juego de mango")
	m.Cutlery = true
	m.Notes = "sin cebolla"
	m.TableNumber = "4"

	order := &orders.Order{
		Collection: orders.CollectionTableOrders,
		Meals:      []meals.Meal{m},
		Total:      12000,
	}
	blocks := Compose(order, Options{})

	for _, want := range []string{
		"Sopa de pasta", "Arroz", "Pollo", "Jugo de mango",
		"Cubiertos: Sí", "Mesa: 4", "Notas: sin cebolla",
	} {
		if !containsField(blocks, want) {
			t.Errorf("missing %q in:\n%s", want, strings.Join(texts(blocks), "\n"))
		}
	}
}

func TestComposeExcludedSides(t *testing.T) {
	m := lunch("Pollo")
	m.Sides = []core.OptionRef{{Name: "Arroz"}}
	catalog := []core.OptionRef{
		{Name: "Arroz"}, {Name: "Papa"}, {Name: "Ensalada"}, {Name: "Ninguno"},
	}

	order := &orders.Order{Collection: orders.CollectionTableOrders, Meals: []meals.Meal{m}, Total: 12000}
	blocks := Compose(order, Options{SideCatalog: catalog})

	if !containsField(blocks, "No Incluir: Papa, Ensalada") {
		t.Errorf("missing exclusion line in:\n%s", strings.Join(texts(blocks), "\n"))
	}
}

func TestComposeSpecialRice(t *testing.T) {
	m := meals.Meal{
		Principle: []core.OptionRef{{Name: "Arroz con pollo"}},
		Protein:   ref("Pollo"),
		Sides:     []core.OptionRef{{Name: "Papa"}},
		OrderType: "table",
	}
	order := &orders.Order{Collection: orders.CollectionTableOrders, Meals: []meals.Meal{m}, Total: 12000}
	blocks := Compose(order, Options{})

	if !containsField(blocks, "Proteína: Ya incluida en el arroz") {
		t.Error("special rice must hide the separate protein")
	}
	if !containsField(blocks, "Acompañamientos: Ya incluidos") {
		t.Error("special rice must mark sides as included")
	}
}

func TestComposeFooterUsesAuthoritativeTotal(t *testing.T) {
	// Stored total is stale; the footer reprices the breakfast lines.
	order := &orders.Order{
		Collection: orders.CollectionBreakfast,
		Type:       "breakfast",
		Breakfasts: []breakfasts.Breakfast{
			{Type: ref("Desayuno completo"), Payment: ref("Nequi")},
		},
		Total: 99999,
	}
	blocks := Compose(order, Options{})

	var footer string
	for _, b := range blocks {
		if b.Kind == KindHeader && strings.HasPrefix(b.Text, "Total:") {
			footer = b.Text
		}
	}
	if footer != "Total: $11.000" {
		t.Errorf("footer = %q, want repriced table total", footer)
	}
	if !strings.Contains(blocks[0].Text, "1 Desayuno") {
		t.Errorf("header = %q", blocks[0].Text)
	}
	if !strings.Contains(blocks[0].Text, "(Nequi)") {
		t.Errorf("header must carry the payment label: %q", blocks[0].Text)
	}
}

func TestRenderText(t *testing.T) {
	blocks := []Block{
		header("2 Almuerzos iguales – $24.000 (Efectivo)"),
		field("Sopa de pasta"),
		separator(),
		header("Total: $24.000"),
	}
	got := RenderText(blocks)
	want := "2 Almuerzos iguales – $24.000 (Efectivo)\nSopa de pasta\n--------------------------------\nTotal: $24.000\n"
	if got != want {
		t.Errorf("RenderText:\n%q\nwant\n%q", got, want)
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	blocks := []Block{header("1 Almuerzo"), field("Notas: <cuidado>"), separator()}
	got := RenderHTML(blocks)
	if !strings.Contains(got, "<p><strong>1 Almuerzo</strong></p>") {
		t.Errorf("header markup missing: %s", got)
	}
	if !strings.Contains(got, "&lt;cuidado&gt;") {
		t.Errorf("field must be escaped: %s", got)
	}
	if !strings.Contains(got, "<hr>") {
		t.Errorf("separator markup missing: %s", got)
	}
}
