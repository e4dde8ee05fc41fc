package preprocess

import (
	"fmt"

	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
)

// Options configures a preprocessing run.
type Options struct {
	// PadSuffix is appended to identifiers colliding with a reserved word
	// or starting with a digit. Defaults to "Param".
	PadSuffix string
	// AzureArm selects ARM defaults for injected LRO metadata.
	AzureArm bool
	// Logger receives pass diagnostics. Defaults to ir.NopLogger.
	Logger ir.Logger
}

// Result reports what the pass did.
type Result struct {
	// Issues are the informational notes recorded by the rewrites.
	Issues []issues.Issue
	// SynthesizedOverloads counts overload operations added.
	SynthesizedOverloads int
	// SynthesizedParameters counts parameters added (etag siblings).
	SynthesizedParameters int
}

// normalizer carries the run state through the passes.
type normalizer struct {
	opts   Options
	result *Result
	// seenTypes guards the type-node walk by node identity: the loader
	// decodes aliases to shared map instances, so a self-referential model
	// revisits its own node.
	seenTypes map[uintptr]bool
}

// Run rewrites doc in place. The order matters: names are normalized first
// so every later pass sees final identifiers, and overload synthesis runs
// before kind tagging so synthesized overloads get stamped too.
func Run(doc ir.Document, opts Options) (*Result, error) {
	if opts.PadSuffix == "" {
		opts.PadSuffix = "Param"
	}
	if opts.Logger == nil {
		opts.Logger = ir.NopLogger{}
	}
	n := &normalizer{opts: opts, result: &Result{}, seenTypes: make(map[uintptr]bool)}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	n.normalizeTypeNames(doc)

	for _, client := range doc.Clients() {
		n.normalizeClientNames(client)
		for _, group := range ir.Maps(client, "operationGroups") {
			ops := ir.Maps(group, "operations")
			for _, op := range ops {
				if err := n.normalizeOperation(client, group, op); err != nil {
					return nil, err
				}
			}
		}
	}

	opts.Logger.Debug("preprocessing complete",
		"issues", len(n.result.Issues),
		"overloads", n.result.SynthesizedOverloads,
		"parameters", n.result.SynthesizedParameters)
	return n.result, nil
}

// normalizeOperation applies the per-operation rewrites in order.
func (n *normalizer) normalizeOperation(client, group, op map[string]any) error {
	if ir.String(op, "name") == "" {
		return tsperrors.MissingKey(n.operationPath(client, group, op), "name")
	}
	n.normalizeOperationNames(op)
	for _, overload := range ir.Maps(op, "overloads") {
		n.normalizeOperationNames(overload)
	}
	n.ensureEtagPair(op)
	if err := n.synthesizeOverloads(op); err != nil {
		return err
	}
	n.tagOperationKind(op)
	for _, overload := range ir.Maps(op, "overloads") {
		n.tagOperationKind(overload)
	}
	return nil
}

func (n *normalizer) operationPath(client, group, op map[string]any) string {
	return fmt.Sprintf("clients.%s.operationGroups.%s.operations.%s",
		ir.String(client, "name"), ir.String(group, "propertyName"), ir.String(op, "name"))
}

func (n *normalizer) addIssue(i issues.Issue) {
	n.result.Issues = append(n.result.Issues, i)
}
