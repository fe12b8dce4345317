package breakfasts

import (
	"testing"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

func ref(name string) *core.OptionRef {
	return &core.OptionRef{Name: name}
}

func TestPriceTableExactness(t *testing.T) {
	cases := []struct {
		typ       string
		broth     string
		orderType string
		want      core.Money
	}{
		{"Solo huevos", "", "table", 7000},
		{"Solo huevos", "", "takeaway", 8000},
		{"Solo caldo", "Caldo de costilla", "table", 7000},
		{"Solo caldo", "Caldo de pescado", "takeaway", 8000},
		{"Solo caldo", "Caldo de pata", "table", 8000},
		{"Solo caldo", "Caldo de pata", "takeaway", 9000},
		{"Solo caldo", "Caldo de pajarilla", "table", 9000},
		{"Solo caldo", "Caldo de pajarilla", "takeaway", 10000},
		{"Solo caldo", "Caldo misterioso", "table", 7000}, // unknown broth -> default row
		{"Desayuno completo", "Caldo de costilla", "table", 11000},
		{"Desayuno completo", "Caldo de pescado", "takeaway", 12000},
		{"Desayuno completo", "Caldo de pata", "table", 12000},
		{"Desayuno completo", "Caldo de pata", "takeaway", 13000},
		{"Desayuno completo", "Caldo de pajarilla", "table", 13000},
		{"Desayuno completo", "Caldo de pajarilla", "takeaway", 14000},
		{"Moñona", "", "table", 13000},
		{"Moñona", "Caldo de pata", "takeaway", 14000}, // moñona ignores broth
		{"Algo raro", "", "table", 7000},               // unknown type
		{"Algo raro", "", "takeaway", 8000},
	}

	for _, tc := range cases {
		b := Breakfast{Type: ref(tc.typ), OrderType: tc.orderType}
		if tc.broth != "" {
			b.Broth = ref(tc.broth)
		}
		if got := Price(&b); got != tc.want {
			t.Errorf("Price(%s/%s/%s) = %d, want %d",
				tc.typ, tc.broth, tc.orderType, got, tc.want)
		}
	}
}

func TestPriceDefaultsToTakeaway(t *testing.T) {
	b := Breakfast{Type: ref("Solo huevos")}
	if got := Price(&b); got != 8000 {
		t.Fatalf("missing orderType must price as takeaway, got %d", got)
	}
}

func TestPriceMatchingIsCaseInsensitive(t *testing.T) {
	b := Breakfast{
		Type:      ref("  DESAYUNO COMPLETO "),
		Broth:     ref("caldo de PATA"),
		OrderType: "table",
	}
	if got := Price(&b); got != 12000 {
		t.Fatalf("folded lookup failed, got %d", got)
	}
}

func TestPriceAdditionsAndIdempotence(t *testing.T) {
	b := Breakfast{
		Type:      ref("Moñona"),
		OrderType: "table",
		Additions: []core.Addition{
			{Name: "Chocolate", Price: 2000, Quantity: 2},
			{Name: "Pan", Price: 1000},
		},
	}
	want := core.Money(13000 + 4000 + 1000)
	first := Price(&b)
	second := Price(&b)
	if first != want || second != want {
		t.Fatalf("Price = %d then %d, want %d both times", first, second, want)
	}
}

func TestTotalPriceAdditivity(t *testing.T) {
	lines := []Breakfast{
		{Type: ref("Solo huevos"), OrderType: "table"},
		{Type: ref("Moñona"), OrderType: "takeaway"},
	}
	if got := TotalPrice(lines); got != 7000+14000 {
		t.Fatalf("TotalPrice = %d, want %d", got, 21000)
	}
	if TotalPrice(nil) != 0 {
		t.Fatal("empty list must total 0")
	}
}

func TestNilAndTypelessLines(t *testing.T) {
	if Price(nil) != 0 {
		t.Fatal("nil line must price to 0")
	}
	if Price(&Breakfast{}) != 0 {
		t.Fatal("line without type must price to 0")
	}
}

func TestIdentical(t *testing.T) {
	a := Breakfast{
		Type:  ref("Desayuno completo"),
		Broth: ref("Caldo de costilla"),
		Drink: ref("Chocolate"),
		Additions: []core.Addition{
			{Name: "Pan", Quantity: 1},
			{Name: "Huevo", Quantity: 2},
		},
	}
	b := Breakfast{
		Type:  ref("Desayuno completo"),
		Broth: ref("Caldo de costilla"),
		Drink: ref("Chocolate"),
		Additions: []core.Addition{
			{Name: "Huevo", Quantity: 2},
			{Name: "Pan", Quantity: 1},
		},
	}

	if !Identical(&a, &b) {
		t.Fatal("reordered additions must still be identical")
	}
	if Identical(&a, &b) != Identical(&b, &a) {
		t.Fatal("Identical must be symmetric")
	}

	c := b
	c.Drink = ref("Café")
	if Identical(&a, &c) {
		t.Fatal("different drink must not be identical")
	}
}
