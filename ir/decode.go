package ir

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// decoder converts a yaml.Node tree into map[string]any / []any / scalar
// values while preserving alias identity: every alias of an anchored mapping
// resolves to the same map instance that the anchor decoded to.
type decoder struct {
	// anchors maps an anchored (or any mapping) node to its decoded value.
	// Mapping nodes are registered before their children are decoded so that
	// a recursive alias (&a referencing *a inside itself) terminates.
	anchors map[*yaml.Node]any
}

func newDecoder() *decoder {
	return &decoder{anchors: make(map[*yaml.Node]any)}
}

// value decodes a single yaml.Node.
func (d *decoder) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])

	case yaml.AliasNode:
		if v, ok := d.anchors[n.Alias]; ok {
			return v, nil
		}
		// Anchor not decoded yet; decode it now and share the result.
		return d.value(n.Alias)

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		d.anchors[n] = m
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: non-string mapping key: %w", keyNode.Line, err)
			}
			v, err := d.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return m, nil

	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		d.anchors[n] = s
		return s, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: invalid scalar: %w", n.Line, err)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

// decodeBytes unmarshals raw YAML into an alias-sharing document tree.
func decodeBytes(data []byte) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, fmt.Errorf("empty document")
	}
	v, err := newDecoder().value(&root)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %T, expected a mapping", v)
	}
	return m, nil
}
