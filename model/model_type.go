package model

import (
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
)

// Property is one field of a ModelType.
type Property struct {
	yaml map[string]any
	// ClientName is the Go field name.
	ClientName string
	// WireName is the serialized name.
	WireName string
	// Type is the property type.
	Type BaseType
	// Optional marks a property that may be absent on the wire.
	Optional bool
	// ReadOnly marks a server-populated property.
	ReadOnly bool
	// Description is the doc comment text, if any.
	Description string
	// IsDiscriminator marks the polymorphic discriminator property.
	IsDiscriminator bool
}

// GoType returns the field's Go type, pointer-wrapped when optional.
// Slices, maps, and any are already nilable and are never wrapped.
func (p *Property) GoType() string {
	t := p.Type.GoType()
	if p.Optional && !nilable(t) {
		return "*" + t
	}
	return t
}

// DocType returns the field's documentation type with no optional wrapping.
func (p *Property) DocType() string { return p.Type.DocType() }

func nilable(goType string) bool {
	switch {
	case goType == "any":
		return true
	case len(goType) >= 2 && goType[:2] == "[]":
		return true
	case len(goType) >= 4 && goType[:4] == "map[":
		return true
	}
	return false
}

// ModelType is a structured type with named properties. Models form a DAG
// via Parents; acyclicity is an upstream compiler contract and is not
// checked here.
type ModelType struct {
	cm   *CodeModel
	yaml map[string]any
	// Name is the Go type name.
	Name string
	// Namespace is the client namespace the model belongs to.
	Namespace string
	// Description is the doc comment text, if any.
	Description string
	// Properties are the model's own fields, excluding inherited ones.
	Properties []*Property
	// Parents are the base models this model extends.
	Parents []*ModelType
	// DiscriminatorValue is the wire value identifying this subtype in a
	// polymorphic hierarchy, or "" for non-polymorphic models.
	DiscriminatorValue string

	filled bool
}

// newModelType creates the shell instance that is registered in the arena
// before member types resolve; fill completes it.
func newModelType(cm *CodeModel, node map[string]any) *ModelType {
	return &ModelType{
		cm:        cm,
		yaml:      node,
		Name:      ir.String(node, "name"),
		Namespace: ir.String(node, "namespace"),
	}
}

// fill resolves parents and properties. Called exactly once, after the
// shell is registered, so a property typed as this model (directly or via
// list/dict nesting) resolves to the registered shell instead of recursing.
func (t *ModelType) fill(node map[string]any) error {
	if t.filled {
		return nil
	}
	t.filled = true
	t.Description = ir.String(node, "doc")
	t.DiscriminatorValue = ir.String(node, "discriminatorValue")

	for _, parentNode := range ir.Maps(node, "parents") {
		parent, err := BuildType(t.cm, parentNode)
		if err != nil {
			return err
		}
		parentModel, ok := parent.(*ModelType)
		if !ok {
			return &tsperrors.SchemaError{
				Path:    "types." + t.Name,
				Message: "parent of a model must itself be a model, got " + parent.TypeName(),
			}
		}
		t.Parents = append(t.Parents, parentModel)
	}

	for _, propNode := range ir.Maps(node, "properties") {
		propType, err := BuildType(t.cm, ir.Map(propNode, "type"))
		if err != nil {
			return err
		}
		t.Properties = append(t.Properties, &Property{
			yaml:            propNode,
			ClientName:      ir.String(propNode, "name"),
			WireName:        ir.String(propNode, "wireName"),
			Type:            propType,
			Optional:        ir.Bool(propNode, "optional"),
			ReadOnly:        ir.Bool(propNode, "readonly"),
			Description:     ir.String(propNode, "doc"),
			IsDiscriminator: ir.Bool(propNode, "isDiscriminator"),
		})
	}
	return nil
}

// TypeName implements BaseType.
func (t *ModelType) TypeName() string { return t.Name }

// GoType implements BaseType.
func (t *ModelType) GoType() string { return t.Name }

// DocType implements BaseType.
func (t *ModelType) DocType() string { return t.Name }

// Imports implements BaseType. Referencing a model needs no import within
// the generated package; cross-namespace references import the sibling
// package.
func (t *ModelType) Imports() *FileImport {
	fi := NewFileImport()
	if dir := t.cm.PackageDir(t.Namespace); dir != "" {
		fi.Add(ImportKindLocal, t.cm.Options.ModuleName+"/"+dir, t.Name)
	}
	return fi
}

// YAML implements BaseType.
func (t *ModelType) YAML() map[string]any { return t.yaml }

// Handle returns the identity handle of the originating descriptor node.
func (t *ModelType) Handle() NodeHandle { return HandleOf(t.yaml) }

// AllProperties returns inherited properties (depth-first through parents,
// in declaration order) followed by the model's own.
func (t *ModelType) AllProperties() []*Property {
	var all []*Property
	seen := make(map[string]bool)
	var walk func(m *ModelType)
	walk = func(m *ModelType) {
		for _, p := range m.Parents {
			walk(p)
		}
		for _, prop := range m.Properties {
			if !seen[prop.ClientName] {
				seen[prop.ClientName] = true
				all = append(all, prop)
			}
		}
	}
	walk(t)
	return all
}
