package grouping

import (
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/breakfasts"
	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/meals"
)

// maxClusterDifferences is the largest number of diverging fields two
// lines may have and still share a summary cluster.
const maxClusterDifferences = 3

// Group is a cluster of similar lines. Indices point into the input
// slice, in input order. Common holds the fields whose canonical value
// is shared by every member; the receipt renders those once and lists
// the rest per subgroup. Subgroups partitions the cluster into runs of
// fully identical lines.
type Group struct {
	Indices   []int
	Common    map[string]bool
	Subgroups [][]int
}

// Cluster assigns each signature to the first existing group whose
// first member differs in at most three tracked fields, in input
// order, or opens a new group. Single pass, no backtracking: moving an
// early line can reshuffle every later assignment, and receipt text
// downstream depends on that stable order.
func Cluster(sigs []Signature) []Group {
	type cluster struct {
		indices []int
	}
	var clusters []*cluster

	for i, sig := range sigs {
		assigned := false
		for _, c := range clusters {
			if sig.differences(sigs[c.indices[0]]) <= maxClusterDifferences {
				c.indices = append(c.indices, i)
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, &cluster{indices: []int{i}})
		}
	}

	groups := make([]Group, 0, len(clusters))
	for _, c := range clusters {
		groups = append(groups, Group{
			Indices:   c.indices,
			Common:    commonFields(sigs, c.indices),
			Subgroups: identicalSubgroups(sigs, c.indices),
		})
	}
	return groups
}

// CommonFields reports the fields whose canonical value is identical
// across all signatures. Empty input yields an empty set.
func CommonFields(sigs []Signature) map[string]bool {
	if len(sigs) == 0 {
		return map[string]bool{}
	}
	indices := make([]int, len(sigs))
	for i := range sigs {
		indices[i] = i
	}
	return commonFields(sigs, indices)
}

func commonFields(sigs []Signature, indices []int) map[string]bool {
	common := map[string]bool{}
	first := sigs[indices[0]]
	for _, f := range first.Fields {
		shared := true
		for _, idx := range indices[1:] {
			if sigs[idx].Value(f) != first.Value(f) {
				shared = false
				break
			}
		}
		if shared {
			common[f] = true
		}
	}
	return common
}

// identicalSubgroups splits a cluster into runs with equal full keys,
// preserving first-seen order.
func identicalSubgroups(sigs []Signature, indices []int) [][]int {
	byKey := map[string]int{}
	var subgroups [][]int
	for _, idx := range indices {
		key := sigs[idx].Key()
		if pos, ok := byKey[key]; ok {
			subgroups[pos] = append(subgroups[pos], idx)
			continue
		}
		byKey[key] = len(subgroups)
		subgroups = append(subgroups, []int{idx})
	}
	return subgroups
}

// ClusterMeals runs the summary clustering over lunch lines.
func ClusterMeals(list []meals.Meal) []Group {
	sigs := make([]Signature, len(list))
	for i := range list {
		sigs[i] = MealSignature(&list[i])
	}
	return Cluster(sigs)
}

// ClusterBreakfasts runs the summary clustering over breakfast lines.
func ClusterBreakfasts(list []breakfasts.Breakfast) []Group {
	sigs := make([]Signature, len(list))
	for i := range list {
		sigs[i] = BreakfastSignature(&list[i])
	}
	return Cluster(sigs)
}

// IdenticalGroup is a run of structurally identical lines under the
// strict deep comparison, used for receipt compression headers.
type IdenticalGroup struct {
	Indices []int
}

// Count returns the number of lines in the group.
func (g IdenticalGroup) Count() int { return len(g.Indices) }

// GroupIdenticalMeals partitions lunches into groups of deep-equal
// lines. First-fit against each group's first member, so three
// pairwise identical lines always land in one group of three.
func GroupIdenticalMeals(list []meals.Meal) []IdenticalGroup {
	return groupIdentical(len(list), func(i, j int) bool {
		return meals.Identical(&list[i], &list[j])
	})
}

// GroupIdenticalBreakfasts is the breakfast counterpart.
func GroupIdenticalBreakfasts(list []breakfasts.Breakfast) []IdenticalGroup {
	return groupIdentical(len(list), func(i, j int) bool {
		return breakfasts.Identical(&list[i], &list[j])
	})
}

func groupIdentical(n int, same func(i, j int) bool) []IdenticalGroup {
	var groups []IdenticalGroup
	for i := 0; i < n; i++ {
		assigned := false
		for g := range groups {
			if same(i, groups[g].Indices[0]) {
				groups[g].Indices = append(groups[g].Indices, i)
				assigned = true
				break
			}
		}
		if !assigned {
			groups = append(groups, IdenticalGroup{Indices: []int{i}})
		}
	}
	return groups
}
