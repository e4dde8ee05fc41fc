package model

import "github.com/erraggy/tspgen/ir"

// EnumValue is one member of an EnumType.
type EnumValue struct {
	yaml map[string]any
	// Name is the Go constant name.
	Name string
	// Value is the wire value.
	Value any
	// Description is the doc comment text, if any.
	Description string
}

// EnumType is a named closed or extensible set of values.
type EnumType struct {
	cm   *CodeModel
	yaml map[string]any
	// Name is the Go type name.
	Name string
	// Namespace is the client namespace the enum belongs to.
	Namespace string
	// Description is the doc comment text, if any.
	Description string
	// ValueType is the underlying wire type of the values.
	ValueType BaseType
	// Values are the members in declaration order.
	Values []*EnumValue
	// Fixed is false for extensible enums that pass unknown values through.
	Fixed bool

	filled bool
}

func newEnumType(cm *CodeModel, node map[string]any) *EnumType {
	return &EnumType{
		cm:        cm,
		yaml:      node,
		Name:      ir.String(node, "name"),
		Namespace: ir.String(node, "namespace"),
		Fixed:     ir.Bool(node, "fixed"),
	}
}

// fill resolves the value type and members after the shell is registered.
func (t *EnumType) fill(node map[string]any) error {
	if t.filled {
		return nil
	}
	t.filled = true
	t.Description = ir.String(node, "doc")

	valueType, err := BuildType(t.cm, ir.Map(node, "valueType"))
	if err != nil {
		return err
	}
	t.ValueType = valueType

	for _, valueNode := range ir.Maps(node, "values") {
		t.Values = append(t.Values, &EnumValue{
			yaml:        valueNode,
			Name:        ir.String(valueNode, "name"),
			Value:       valueNode["value"],
			Description: ir.String(valueNode, "doc"),
		})
	}
	return nil
}

// TypeName implements BaseType.
func (t *EnumType) TypeName() string { return t.Name }

// GoType implements BaseType.
func (t *EnumType) GoType() string { return t.Name }

// DocType implements BaseType.
func (t *EnumType) DocType() string { return t.Name }

// Imports implements BaseType.
func (t *EnumType) Imports() *FileImport {
	fi := NewFileImport()
	if dir := t.cm.PackageDir(t.Namespace); dir != "" {
		fi.Add(ImportKindLocal, t.cm.Options.ModuleName+"/"+dir, t.Name)
	}
	return fi
}

// YAML implements BaseType.
func (t *EnumType) YAML() map[string]any { return t.yaml }
