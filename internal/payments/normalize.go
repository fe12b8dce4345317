package payments

import (
	"strings"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"
)

// Canonical method keys every payment label collapses into.
const (
	KeyCash      = "cash"
	KeyNequi     = "nequi"
	KeyDaviplata = "daviplata"
	KeyOther     = "other"
)

// Display labels per key.
const (
	LabelCash      = "Efectivo"
	LabelNequi     = "Nequi"
	LabelDaviplata = "Daviplata"
	LabelOther     = "Otro"
)

// NormalizeMethodKey collapses a free-form payment label into one of
// the four canonical keys. Matching is substring-based because the data
// holds every spelling imaginable ("efectivo", "Efectivo 💵", "EFECT",
// "pago en cash").
func NormalizeMethodKey(label string) string {
	t := core.FoldName(label)
	switch {
	case strings.Contains(t, "efect") || strings.Contains(t, "cash"):
		return KeyCash
	case strings.Contains(t, "nequi"):
		return KeyNequi
	case strings.Contains(t, "davi"):
		return KeyDaviplata
	default:
		return KeyOther
	}
}

// NormalizeMethod is NormalizeMethodKey over a reference.
func NormalizeMethod(ref *core.OptionRef) string {
	return NormalizeMethodKey(core.NameOf(ref))
}

// MethodLabel returns the raw display label of a method reference,
// "Otro" when nothing usable was stored.
func MethodLabel(ref *core.OptionRef) string {
	if name := core.NameOf(ref); name != "" {
		return name
	}
	return LabelOther
}
