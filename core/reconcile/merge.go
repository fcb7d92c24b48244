package reconcile

import "slices"

// Merge returns existing followed by the ids of imported not already present.
// The result holds no duplicates.
func Merge(existing, imported []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(imported))
	out := make([]string, 0, len(existing)+len(imported))
	for _, ids := range [][]string{existing, imported} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Overwrite returns exactly imported, whatever existing holds.
func Overwrite(existing, imported []string) []string {
	out := slices.Clone(imported)
	if out == nil {
		out = []string{}
	}
	return out
}

// Diff splits imported into ids already in existing and ids that are new,
// both in import order.
func Diff(existing, imported []string) (already, added []string) {
	marked := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		marked[id] = struct{}{}
	}
	already, added = make([]string, 0), make([]string, 0)
	for _, id := range imported {
		if _, ok := marked[id]; ok {
			already = append(already, id)
		} else {
			added = append(added, id)
		}
	}
	return already, added
}

// Combine applies strategy to existing and imported.
func Combine(strategy Strategy, existing, imported []string) []string {
	if strategy == StrategyOverwrite {
		return Overwrite(existing, imported)
	}
	return Merge(existing, imported)
}
