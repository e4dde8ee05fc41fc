package model

import "github.com/erraggy/tspgen/internal/maputil"

// ImportKind classifies an import for grouping in generated files. The enum
// order is the textual order of import blocks in the output.
type ImportKind int

const (
	// ImportKindStdlib is a Go standard library import.
	ImportKindStdlib ImportKind = iota
	// ImportKindThirdParty is an external module import.
	ImportKindThirdParty
	// ImportKindSDKCore is the generated SDK's core runtime module.
	ImportKindSDKCore
	// ImportKindLocal is an import of another package within the generated
	// module.
	ImportKindLocal
	// ImportKindConditional is an import only referenced from generated
	// build-tagged files.
	ImportKindConditional
)

// importKinds lists every kind in block order.
var importKinds = []ImportKind{
	ImportKindStdlib,
	ImportKindThirdParty,
	ImportKindSDKCore,
	ImportKindLocal,
	ImportKindConditional,
}

// FileImport is the per-render side table of imports a code fragment needs.
// Nodes return a fresh FileImport from Imports(); serializers merge them
// across every sub-node touched and flatten the result into import blocks.
//
// Entries are keyed (kind, module) with a set of referenced symbols, so
// merging is idempotent and the flattened output is deterministic.
type FileImport struct {
	entries map[ImportKind]map[string]map[string]struct{}
}

// NewFileImport returns an empty import table.
func NewFileImport() *FileImport {
	return &FileImport{entries: make(map[ImportKind]map[string]map[string]struct{})}
}

// Add records that module (of the given kind) is needed for the listed
// symbols. Symbols may be empty when only the import itself matters.
func (f *FileImport) Add(kind ImportKind, module string, symbols ...string) *FileImport {
	mods, ok := f.entries[kind]
	if !ok {
		mods = make(map[string]map[string]struct{})
		f.entries[kind] = mods
	}
	syms, ok := mods[module]
	if !ok {
		syms = make(map[string]struct{})
		mods[module] = syms
	}
	for _, s := range symbols {
		syms[s] = struct{}{}
	}
	return f
}

// Merge folds other into f.
func (f *FileImport) Merge(other *FileImport) {
	if other == nil {
		return
	}
	for kind, mods := range other.entries {
		for module, syms := range mods {
			f.Add(kind, module)
			for s := range syms {
				f.Add(kind, module, s)
			}
		}
	}
}

// Empty reports whether the table holds no imports.
func (f *FileImport) Empty() bool {
	for _, mods := range f.entries {
		if len(mods) > 0 {
			return false
		}
	}
	return true
}

// ImportGroup is one flattened block of imports of a single kind.
type ImportGroup struct {
	Kind    ImportKind
	Modules []string
}

// Groups flattens the table into blocks ordered by kind, each with its
// modules sorted. The result is identical across repeated renders of the
// same graph.
func (f *FileImport) Groups() []ImportGroup {
	var groups []ImportGroup
	for _, kind := range importKinds {
		mods := f.entries[kind]
		if len(mods) == 0 {
			continue
		}
		groups = append(groups, ImportGroup{Kind: kind, Modules: maputil.SortedKeys(mods)})
	}
	return groups
}

// Symbols returns the sorted symbols recorded for (kind, module).
func (f *FileImport) Symbols(kind ImportKind, module string) []string {
	return maputil.SortedKeys(f.entries[kind][module])
}
