package model

import (
	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/ir"
)

// CodeModel is the root aggregate consulted by every serializer. It is
// built once per invocation, after preprocessing, and is read-only from
// then on.
type CodeModel struct {
	// Doc is the preprocessed code-model document.
	Doc ir.Document
	// Options are the resolved generator options.
	Options *Options
	// Logger receives build diagnostics.
	Logger ir.Logger
	// Registry is the identity-memoized type arena.
	Registry *TypeRegistry
	// Namespace is the root package namespace.
	Namespace string
	// CrossLanguagePackageID keys the apiview manifest, or "".
	CrossLanguagePackageID string
	// Clients are the generated clients in declaration order.
	Clients []*Client

	issueList    []issues.Issue
	partition    map[string]*NamespaceEntry
	sortedModels []*ModelType
}

// New builds the complete object graph from a preprocessed document.
// Every type reachable from a client or the top-level type list lands in
// the registry exactly once, keyed by node identity.
func New(doc ir.Document, opts *Options, logger ir.Logger) (*CodeModel, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = ir.NopLogger{}
	}
	cm := &CodeModel{
		Doc:                    doc,
		Options:                opts,
		Logger:                 logger,
		Registry:               NewTypeRegistry(),
		Namespace:              doc.Namespace(),
		CrossLanguagePackageID: doc.CrossLanguagePackageID(),
	}

	for _, typeNode := range doc.Types() {
		if _, err := BuildType(cm, typeNode); err != nil {
			return nil, err
		}
	}

	for _, clientNode := range doc.Clients() {
		client, err := newClient(cm, clientNode)
		if err != nil {
			return nil, err
		}
		cm.Clients = append(cm.Clients, client)
	}

	logger.Debug("built code model",
		"clients", len(cm.Clients),
		"types", cm.Registry.Len())
	return cm, nil
}

// AddIssue records a build or generation issue.
func (cm *CodeModel) AddIssue(i issues.Issue) {
	cm.issueList = append(cm.issueList, i)
}

// Issues returns the issues recorded so far.
func (cm *CodeModel) Issues() []issues.Issue {
	return cm.issueList
}

// ModelTypes returns every model type in registry insertion order.
func (cm *CodeModel) ModelTypes() []*ModelType {
	var out []*ModelType
	for _, t := range cm.Registry.All() {
		if m, ok := t.(*ModelType); ok {
			out = append(out, m)
		}
	}
	return out
}

// EnumTypes returns every enum type in registry insertion order.
func (cm *CodeModel) EnumTypes() []*EnumType {
	var out []*EnumType
	for _, t := range cm.Registry.All() {
		if e, ok := t.(*EnumType); ok {
			out = append(out, e)
		}
	}
	return out
}

// SortedModelTypes returns the model types in emission order: parents
// before children, ties alphabetical. Computed once and memoized; duplicate
// model names fail here.
func (cm *CodeModel) SortedModelTypes() ([]*ModelType, error) {
	if cm.sortedModels != nil {
		return cm.sortedModels, nil
	}
	sorted, err := SortModelTypes(cm.ModelTypes())
	if err != nil {
		return nil, err
	}
	cm.sortedModels = sorted
	return sorted, nil
}

// OperationCount returns the number of operations across every client,
// excluding overloads.
func (cm *CodeModel) OperationCount() int {
	n := 0
	for _, c := range cm.Clients {
		for _, g := range c.Groups {
			n += len(g.Operations)
		}
	}
	return n
}
