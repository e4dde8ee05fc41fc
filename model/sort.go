package model

import (
	"sort"
	"strings"

	"github.com/erraggy/tspgen/tsperrors"
)

// SortModelTypes orders models for emission: every parent precedes its
// children, ties broken alphabetically by lowercase name. Two distinct
// nodes resolving to the same name is a fatal schema error — duplicates are
// never silently renamed.
//
// The DFS is guarded by two visited-sets, names and node handles, so it
// terminates even if upstream input violates the DAG contract; a cycle
// degrades to a stable order instead of a hang.
func SortModelTypes(models []*ModelType) ([]*ModelType, error) {
	byName := make(map[string]NodeHandle, len(models))
	for _, m := range models {
		if prev, ok := byName[m.Name]; ok && prev != m.Handle() {
			return nil, &tsperrors.SchemaError{
				Path:    "types." + m.Name,
				Message: "duplicate model name " + m.Name,
			}
		}
		byName[m.Name] = m.Handle()
	}

	ordered := make([]*ModelType, len(models))
	copy(ordered, models)
	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.ToLower(ordered[i].Name) < strings.ToLower(ordered[j].Name)
	})

	var (
		out         []*ModelType
		seenNames   = make(map[string]bool, len(models))
		seenHandles = make(map[NodeHandle]bool, len(models))
		visit       func(m *ModelType)
	)
	visit = func(m *ModelType) {
		if seenHandles[m.Handle()] || seenNames[m.Name] {
			return
		}
		seenHandles[m.Handle()] = true
		seenNames[m.Name] = true
		for _, parent := range m.Parents {
			visit(parent)
		}
		out = append(out, m)
	}
	for _, m := range ordered {
		visit(m)
	}
	return out, nil
}
