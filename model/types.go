package model

import (
	"fmt"
	"strings"

	"github.com/erraggy/tspgen/ir"
)

// SDKCoreModule is the runtime module every generated SDK depends on for
// credentials, pagers, and pollers.
const SDKCoreModule = "github.com/erraggy/sdkcore"

// BaseType is one node in the type graph. Every implementation carries its
// originating descriptor node and a reference to the owning CodeModel for
// option lookups.
type BaseType interface {
	// TypeName returns the declared or derived name, used in messages,
	// docs, and sorting.
	TypeName() string
	// GoType returns the Go type expression rendered into generated code.
	GoType() string
	// DocType returns the documentation type string for this type with no
	// optionality wrapping.
	DocType() string
	// Imports returns a fresh FileImport covering every symbol GoType
	// references.
	Imports() *FileImport
	// YAML returns the originating descriptor node.
	YAML() map[string]any
}

// primitiveSpec describes how one primitive kind renders.
type primitiveSpec struct {
	goType       string
	stdlibImport string
}

// primitiveKinds maps code-model primitive tags onto Go types.
// decimal maps to float64: the generated SDKs have no arbitrary-precision
// wire format, matching how integers wider than int64 are rejected upstream.
var primitiveKinds = map[string]primitiveSpec{
	"string":         {goType: "string"},
	"int32":          {goType: "int32"},
	"int64":          {goType: "int64"},
	"integer":        {goType: "int64"},
	"safeint":        {goType: "int64"},
	"float32":        {goType: "float32"},
	"float64":        {goType: "float64"},
	"float":          {goType: "float64"},
	"decimal":        {goType: "float64"},
	"boolean":        {goType: "bool"},
	"plainDate":      {goType: "time.Time", stdlibImport: "time"},
	"plainTime":      {goType: "time.Time", stdlibImport: "time"},
	"utcDateTime":    {goType: "time.Time", stdlibImport: "time"},
	"offsetDateTime": {goType: "time.Time", stdlibImport: "time"},
	"duration":       {goType: "time.Duration", stdlibImport: "time"},
	"bytes":          {goType: "[]byte"},
	"binary":         {goType: "[]byte"},
	"any":            {goType: "any"},
	"anyObject":      {goType: "map[string]any"},
	"uuid":           {goType: "string"},
	"url":            {goType: "string"},
	"etag":           {goType: "string"},
}

// PrimitiveType is a scalar leaf of the type graph.
type PrimitiveType struct {
	cm   *CodeModel
	yaml map[string]any
	// Kind is the code-model tag (e.g. "string", "utcDateTime").
	Kind string
	spec primitiveSpec
}

func newPrimitiveType(cm *CodeModel, node map[string]any, kind string, spec primitiveSpec) *PrimitiveType {
	return &PrimitiveType{cm: cm, yaml: node, Kind: kind, spec: spec}
}

// TypeName implements BaseType.
func (t *PrimitiveType) TypeName() string { return t.Kind }

// GoType implements BaseType.
func (t *PrimitiveType) GoType() string { return t.spec.goType }

// DocType implements BaseType.
func (t *PrimitiveType) DocType() string { return t.spec.goType }

// Imports implements BaseType.
func (t *PrimitiveType) Imports() *FileImport {
	fi := NewFileImport()
	if t.spec.stdlibImport != "" {
		fi.Add(ImportKindStdlib, t.spec.stdlibImport)
	}
	return fi
}

// YAML implements BaseType.
func (t *PrimitiveType) YAML() map[string]any { return t.yaml }

// ConstantType wraps a value type with a fixed value, such as a pinned
// api-version or content type.
type ConstantType struct {
	cm   *CodeModel
	yaml map[string]any
	// ValueType is the underlying type of the constant.
	ValueType BaseType
	// Value is the constant value.
	Value any
}

func newConstantType(cm *CodeModel, node map[string]any) (*ConstantType, error) {
	valueType, err := BuildType(cm, ir.Map(node, "valueType"))
	if err != nil {
		return nil, err
	}
	return &ConstantType{cm: cm, yaml: node, ValueType: valueType, Value: node["value"]}, nil
}

// TypeName implements BaseType.
func (t *ConstantType) TypeName() string { return fmt.Sprintf("constant(%v)", t.Value) }

// GoType implements BaseType.
func (t *ConstantType) GoType() string { return t.ValueType.GoType() }

// DocType implements BaseType.
func (t *ConstantType) DocType() string { return t.ValueType.DocType() }

// Imports implements BaseType.
func (t *ConstantType) Imports() *FileImport { return t.ValueType.Imports() }

// YAML implements BaseType.
func (t *ConstantType) YAML() map[string]any { return t.yaml }

// Literal renders the constant value as a Go literal.
func (t *ConstantType) Literal() string {
	if s, ok := t.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", t.Value)
}

// ListType is a homogeneous sequence.
type ListType struct {
	cm   *CodeModel
	yaml map[string]any
	// Element is the element type.
	Element BaseType
}

func newListType(cm *CodeModel, node map[string]any) (*ListType, error) {
	elem, err := BuildType(cm, ir.Map(node, "elementType"))
	if err != nil {
		return nil, err
	}
	return &ListType{cm: cm, yaml: node, Element: elem}, nil
}

// TypeName implements BaseType.
func (t *ListType) TypeName() string { return "list of " + t.Element.TypeName() }

// GoType implements BaseType.
func (t *ListType) GoType() string { return "[]" + t.Element.GoType() }

// DocType implements BaseType.
func (t *ListType) DocType() string { return "[]" + t.Element.DocType() }

// Imports implements BaseType.
func (t *ListType) Imports() *FileImport { return t.Element.Imports() }

// YAML implements BaseType.
func (t *ListType) YAML() map[string]any { return t.yaml }

// DictionaryType is a string-keyed mapping.
type DictionaryType struct {
	cm   *CodeModel
	yaml map[string]any
	// Element is the value type.
	Element BaseType
}

func newDictionaryType(cm *CodeModel, node map[string]any) (*DictionaryType, error) {
	elem, err := BuildType(cm, ir.Map(node, "elementType"))
	if err != nil {
		return nil, err
	}
	return &DictionaryType{cm: cm, yaml: node, Element: elem}, nil
}

// TypeName implements BaseType.
func (t *DictionaryType) TypeName() string { return "dict of " + t.Element.TypeName() }

// GoType implements BaseType.
func (t *DictionaryType) GoType() string { return "map[string]" + t.Element.GoType() }

// DocType implements BaseType.
func (t *DictionaryType) DocType() string { return "map[string]" + t.Element.DocType() }

// Imports implements BaseType.
func (t *DictionaryType) Imports() *FileImport { return t.Element.Imports() }

// YAML implements BaseType.
func (t *DictionaryType) YAML() map[string]any { return t.yaml }

// CombinedType is a union of member types, typically synthesized by
// preprocessing for ambiguous operation bodies. Generated code widens it to
// any; each member still produces its own operation overload.
type CombinedType struct {
	cm   *CodeModel
	yaml map[string]any
	// Name is an optional declared name for the union.
	Name string
	// Variants are the member types, in declaration order.
	Variants []BaseType
}

func newCombinedType(cm *CodeModel, node map[string]any) (*CombinedType, error) {
	t := &CombinedType{cm: cm, yaml: node, Name: ir.String(node, "name")}
	for _, member := range ir.Maps(node, "types") {
		v, err := BuildType(cm, member)
		if err != nil {
			return nil, err
		}
		t.Variants = append(t.Variants, v)
	}
	return t, nil
}

// TypeName implements BaseType.
func (t *CombinedType) TypeName() string {
	if t.Name != "" {
		return t.Name
	}
	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.TypeName()
	}
	return strings.Join(names, " or ")
}

// GoType implements BaseType.
func (t *CombinedType) GoType() string { return "any" }

// DocType implements BaseType.
func (t *CombinedType) DocType() string {
	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.DocType()
	}
	return strings.Join(names, " or ")
}

// Imports implements BaseType.
func (t *CombinedType) Imports() *FileImport {
	fi := NewFileImport()
	for _, v := range t.Variants {
		fi.Merge(v.Imports())
	}
	return fi
}

// YAML implements BaseType.
func (t *CombinedType) YAML() map[string]any { return t.yaml }

// CredentialFlavor distinguishes credential schemes.
type CredentialFlavor string

const (
	// CredentialFlavorToken is an OAuth2 bearer token credential.
	CredentialFlavorToken CredentialFlavor = "token"
	// CredentialFlavorKey is a shared-key credential sent in a header.
	CredentialFlavorKey CredentialFlavor = "key"
)

// CredentialType is a client-level credential parameter type.
type CredentialType struct {
	cm   *CodeModel
	yaml map[string]any
	// Flavor selects the credential scheme.
	Flavor CredentialFlavor
	// Scopes are the token scopes (token flavor only).
	Scopes []string
	// HeaderName is the header the key is sent in (key flavor only).
	HeaderName string
}

func newCredentialType(cm *CodeModel, node map[string]any) *CredentialType {
	t := &CredentialType{cm: cm, yaml: node, Flavor: CredentialFlavorToken}
	if ir.String(node, "scheme") == "key" {
		t.Flavor = CredentialFlavorKey
		t.HeaderName = ir.String(node, "headerName")
	}
	for _, s := range ir.Slice(node, "scopes") {
		if scope, ok := s.(string); ok {
			t.Scopes = append(t.Scopes, scope)
		}
	}
	return t
}

// TypeName implements BaseType.
func (t *CredentialType) TypeName() string { return string(t.Flavor) + " credential" }

// GoType implements BaseType.
func (t *CredentialType) GoType() string {
	if t.Flavor == CredentialFlavorKey {
		return "sdkcore.KeyCredential"
	}
	return "sdkcore.TokenCredential"
}

// DocType implements BaseType.
func (t *CredentialType) DocType() string { return t.GoType() }

// Imports implements BaseType.
func (t *CredentialType) Imports() *FileImport {
	fi := NewFileImport()
	if t.Flavor == CredentialFlavorKey {
		fi.Add(ImportKindSDKCore, SDKCoreModule, "KeyCredential")
	} else {
		fi.Add(ImportKindSDKCore, SDKCoreModule, "TokenCredential")
	}
	return fi
}

// YAML implements BaseType.
func (t *CredentialType) YAML() map[string]any { return t.yaml }
