package meals

import "github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/core"

// Catch-all side markers that never count as real exclusions.
var sideMarkers = map[string]bool{
	"Ninguno":       true,
	"Todo incluído": true,
	"Todo incluido": true,
}

// ExcludedSides lists the catalog sides the customer left out, for the
// "No Incluir: ..." receipt line. An empty selection (or an explicit
// "Ninguno") expresses no preference and excludes nothing.
func ExcludedSides(m *Meal, catalog []core.OptionRef) []string {
	if m == nil || len(m.Sides) == 0 || len(catalog) == 0 {
		return nil
	}

	selected := make(map[string]bool, len(m.Sides))
	for _, s := range m.Sides {
		if s.Name == "Ninguno" {
			return nil
		}
		selected[core.CleanText(s.Name)] = true
	}

	var excluded []string
	seen := make(map[string]bool, len(catalog))
	for _, s := range catalog {
		name := core.CleanText(s.Name)
		if name == "" || sideMarkers[name] || seen[name] {
			continue
		}
		seen[name] = true
		if !selected[name] {
			excluded = append(excluded, name)
		}
	}
	return excluded
}
