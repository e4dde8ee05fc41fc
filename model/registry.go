package model

import (
	"reflect"

	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
)

// NodeHandle is the identity of a descriptor node. The alias-sharing loader
// guarantees that fragments shared in the source document decode to one map,
// so the map's pointer is a stable handle for "same node".
type NodeHandle uintptr

// HandleOf returns the identity handle for a descriptor node.
func HandleOf(node map[string]any) NodeHandle {
	if node == nil {
		return 0
	}
	return NodeHandle(reflect.ValueOf(node).Pointer())
}

// TypeRegistry memoizes type construction: an arena of built types plus an
// index from node handle to arena slot. Build once, reference many times —
// repeated BuildType calls on the same node return the same instance, and
// the arena preserves insertion order for deterministic iteration.
type TypeRegistry struct {
	arena []BaseType
	index map[NodeHandle]int
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{index: make(map[NodeHandle]int)}
}

// Lookup returns the type built for handle, if any.
func (r *TypeRegistry) Lookup(h NodeHandle) (BaseType, bool) {
	i, ok := r.index[h]
	if !ok {
		return nil, false
	}
	return r.arena[i], true
}

// register stores t under h. Registering the same handle twice keeps the
// first entry: model and enum shells register before filling, and the fill
// must not displace them.
func (r *TypeRegistry) register(h NodeHandle, t BaseType) {
	if _, ok := r.index[h]; ok {
		return
	}
	r.index[h] = len(r.arena)
	r.arena = append(r.arena, t)
}

// All returns every registered type in insertion order.
func (r *TypeRegistry) All() []BaseType {
	return r.arena
}

// Len returns the number of registered types.
func (r *TypeRegistry) Len() int { return len(r.arena) }

// BuildType resolves a descriptor node to its type instance, memoized by
// node identity in cm's registry. Calling it twice with the same node
// returns the same instance; structurally identical but separately parsed
// nodes yield distinct instances.
//
// Model and enum nodes register a shell before resolving their member
// types, so self-referential models terminate; the shell is completed in
// the same call via fill.
//
// An unrecognized type tag degrades to a string primitive with a warning
// unless Options.StrictTypes is set, in which case it is a fatal schema
// error.
func BuildType(cm *CodeModel, node map[string]any) (BaseType, error) {
	if node == nil {
		return nil, &tsperrors.SchemaError{Message: "type descriptor is missing"}
	}
	h := HandleOf(node)
	if t, ok := cm.Registry.Lookup(h); ok {
		return t, nil
	}

	kind := ir.String(node, "type")
	switch kind {
	case "":
		return nil, tsperrors.MissingKey("types."+ir.String(node, "name"), "type")

	case "model":
		t := newModelType(cm, node)
		cm.Registry.register(h, t)
		if err := t.fill(node); err != nil {
			return nil, err
		}
		return t, nil

	case "enum":
		t := newEnumType(cm, node)
		cm.Registry.register(h, t)
		if err := t.fill(node); err != nil {
			return nil, err
		}
		return t, nil

	case "list":
		t, err := newListType(cm, node)
		if err != nil {
			return nil, err
		}
		cm.Registry.register(h, t)
		return t, nil

	case "dict":
		t, err := newDictionaryType(cm, node)
		if err != nil {
			return nil, err
		}
		cm.Registry.register(h, t)
		return t, nil

	case "combined":
		t, err := newCombinedType(cm, node)
		if err != nil {
			return nil, err
		}
		cm.Registry.register(h, t)
		return t, nil

	case "constant":
		t, err := newConstantType(cm, node)
		if err != nil {
			return nil, err
		}
		cm.Registry.register(h, t)
		return t, nil

	case "credential":
		t := newCredentialType(cm, node)
		cm.Registry.register(h, t)
		return t, nil
	}

	if spec, ok := primitiveKinds[kind]; ok {
		t := newPrimitiveType(cm, node, kind, spec)
		cm.Registry.register(h, t)
		return t, nil
	}

	if cm.Options.StrictTypes {
		return nil, &tsperrors.SchemaError{
			Path:    "types." + ir.String(node, "name"),
			Message: "unknown type tag " + kind,
		}
	}

	cm.Logger.Warn("unknown type tag, treating as string", "tag", kind)
	cm.AddIssue(issues.Issue{
		Path:     "types." + ir.String(node, "name"),
		Message:  "unknown type tag " + kind + ", treating as string",
		Severity: severity.SeverityWarning,
		Field:    "type",
		Value:    kind,
	})
	t := newPrimitiveType(cm, node, kind, primitiveKinds["string"])
	cm.Registry.register(h, t)
	return t, nil
}
