package model

import (
	"strings"
)

// NamespaceEntry collects everything assigned to one client namespace.
// Entries exist for every ancestor of a populated namespace, so file-layout
// code can always walk a dotted path one segment at a time.
type NamespaceEntry struct {
	// Namespace is the dotted namespace string.
	Namespace string
	// Clients assigned to this namespace.
	Clients []*Client
	// Models assigned to this namespace.
	Models []*ModelType
	// Enums assigned to this namespace.
	Enums []*EnumType
	// Groups assigned to this namespace.
	Groups []*OperationGroup
}

// Empty reports whether the entry is a synthetic placeholder.
func (e *NamespaceEntry) Empty() bool {
	return len(e.Clients) == 0 && len(e.Models) == 0 && len(e.Enums) == 0 && len(e.Groups) == 0
}

// NamespacePartition assigns clients, models, enums, and operation groups
// to their client namespaces, backfilling synthetic empty entries for every
// gap in the hierarchy: if only a.b.c is populated, a and a.b get
// placeholder entries too. Computed once and memoized.
func (cm *CodeModel) NamespacePartition() map[string]*NamespaceEntry {
	if cm.partition != nil {
		return cm.partition
	}

	partition := make(map[string]*NamespaceEntry)
	entry := func(ns string) *NamespaceEntry {
		if ns == "" {
			ns = cm.Namespace
		}
		e, ok := partition[ns]
		if !ok {
			e = &NamespaceEntry{Namespace: ns}
			partition[ns] = e
		}
		return e
	}

	for _, c := range cm.Clients {
		e := entry(c.Namespace)
		e.Clients = append(e.Clients, c)
		for _, g := range c.Groups {
			e.Groups = append(e.Groups, g)
		}
	}
	for _, m := range cm.ModelTypes() {
		e := entry(m.Namespace)
		e.Models = append(e.Models, m)
	}
	for _, en := range cm.EnumTypes() {
		e := entry(en.Namespace)
		e.Enums = append(e.Enums, en)
	}

	// Backfill ancestors so the namespace tree has no gaps.
	for ns := range partition {
		segments := strings.Split(ns, ".")
		for i := 1; i < len(segments); i++ {
			ancestor := strings.Join(segments[:i], ".")
			if _, ok := partition[ancestor]; !ok {
				partition[ancestor] = &NamespaceEntry{Namespace: ancestor}
			}
		}
	}

	cm.partition = partition
	return partition
}

// namespaceToPath converts a dotted namespace to a directory path.
func namespaceToPath(ns string) string {
	return strings.ReplaceAll(ns, ".", "/")
}

// PackageDir maps a namespace onto its output directory relative to the
// module root, "" for the root namespace. The root namespace prefix is
// trimmed, so contoso.widgets.sub under root contoso.widgets lives at "sub".
// Import paths and the on-disk layout both derive from this.
func (cm *CodeModel) PackageDir(ns string) string {
	if ns == cm.Namespace || ns == "" {
		return ""
	}
	return namespaceToPath(strings.TrimPrefix(ns, cm.Namespace+"."))
}
