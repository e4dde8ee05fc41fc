package model

import (
	"errors"
	"testing"

	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDoc(t *testing.T, src string) ir.Document {
	t.Helper()
	result, err := ir.LoadWithOptions(ir.WithBytes([]byte(src)))
	require.NoError(t, err)
	return result.Document
}

func newTestModel(t *testing.T, src string) *CodeModel {
	t.Helper()
	cm, err := New(loadDoc(t, src), DefaultOptions(), nil)
	require.NoError(t, err)
	return cm
}

func TestBuildType_IdentityMemoization(t *testing.T) {
	cm := newTestModel(t, `
namespace: widgets
clients: []
types: []
`)
	node := map[string]any{"type": "model", "name": "Widget"}

	first, err := BuildType(cm, node)
	require.NoError(t, err)
	second, err := BuildType(cm, node)
	require.NoError(t, err)

	assert.Same(t, first, second, "same node identity must return the same instance")
	assert.Equal(t, 1, cm.Registry.Len())
}

func TestBuildType_StructurallyEqualNodesStayDistinct(t *testing.T) {
	cm := newTestModel(t, `
namespace: widgets
clients: []
types: []
`)
	a := map[string]any{"type": "model", "name": "Widget"}
	b := map[string]any{"type": "model", "name": "Widget"}

	ta, err := BuildType(cm, a)
	require.NoError(t, err)
	tb, err := BuildType(cm, b)
	require.NoError(t, err)

	assert.NotSame(t, ta, tb, "no structural deduplication")
	assert.Equal(t, 2, cm.Registry.Len())
}

func TestBuildType_SharedFragmentViaAlias(t *testing.T) {
	cm := newTestModel(t, `
namespace: widgets
clients: []
types:
  - &widget
    type: model
    name: Widget
  - type: model
    name: WidgetPage
    properties:
      - name: Items
        wireName: items
        type: {type: list, elementType: *widget}
`)
	models := cm.ModelTypes()
	require.Len(t, models, 2, "the alias must not create a second Widget node")

	page := models[1]
	require.Len(t, page.Properties, 1)
	list, ok := page.Properties[0].Type.(*ListType)
	require.True(t, ok)
	assert.Same(t, models[0], list.Element)
}

func TestBuildType_SelfReferentialModel(t *testing.T) {
	// A model whose property is a list of itself must build without
	// overflowing and must produce exactly one node for the name.
	cm := newTestModel(t, `
namespace: widgets
clients: []
types:
  - &node
    type: model
    name: TreeNode
    properties:
      - name: Children
        wireName: children
        type: {type: list, elementType: *node}
`)
	models := cm.ModelTypes()
	require.Len(t, models, 1)

	tree := models[0]
	require.Len(t, tree.Properties, 1)
	list, ok := tree.Properties[0].Type.(*ListType)
	require.True(t, ok)
	assert.Same(t, tree, list.Element, "the inner reference resolves to the registered shell")
}

func TestBuildType_UnknownTagFallsBackToString(t *testing.T) {
	cm := newTestModel(t, `
namespace: widgets
clients: []
types: []
`)
	node := map[string]any{"type": "vector", "name": "embedding"}

	built, err := BuildType(cm, node)
	require.NoError(t, err)
	assert.Equal(t, "string", built.GoType())

	require.Len(t, cm.Issues(), 1)
	assert.Contains(t, cm.Issues()[0].Message, "unknown type tag")
}

func TestBuildType_UnknownTagStrictMode(t *testing.T) {
	opts := DefaultOptions()
	opts.StrictTypes = true
	cm, err := New(loadDoc(t, "namespace: w\nclients: []\n"), opts, nil)
	require.NoError(t, err)

	_, err = BuildType(cm, map[string]any{"type": "vector"})
	assert.True(t, errors.Is(err, tsperrors.ErrSchema))
}

func TestBuildType_MissingDescriptor(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")

	_, err := BuildType(cm, nil)
	assert.True(t, errors.Is(err, tsperrors.ErrSchema))

	_, err = BuildType(cm, map[string]any{"name": "untyped"})
	assert.True(t, errors.Is(err, tsperrors.ErrSchema))
}

func TestBuildType_Primitives(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")

	tests := []struct {
		tag    string
		goType string
	}{
		{"string", "string"},
		{"int32", "int32"},
		{"int64", "int64"},
		{"float64", "float64"},
		{"boolean", "bool"},
		{"utcDateTime", "time.Time"},
		{"duration", "time.Duration"},
		{"bytes", "[]byte"},
		{"any", "any"},
		{"anyObject", "map[string]any"},
		{"uuid", "string"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			built, err := BuildType(cm, map[string]any{"type": tt.tag})
			require.NoError(t, err)
			assert.Equal(t, tt.goType, built.GoType())
		})
	}
}

func TestBuildType_TimeImport(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")
	built, err := BuildType(cm, map[string]any{"type": "utcDateTime"})
	require.NoError(t, err)

	groups := built.Imports().Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, ImportKindStdlib, groups[0].Kind)
	assert.Equal(t, []string{"time"}, groups[0].Modules)
}

func TestBuildType_Constant(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")
	built, err := BuildType(cm, map[string]any{
		"type":      "constant",
		"valueType": map[string]any{"type": "string"},
		"value":     "application/json",
	})
	require.NoError(t, err)

	constant, ok := built.(*ConstantType)
	require.True(t, ok)
	assert.Equal(t, "string", constant.GoType())
	assert.Equal(t, `"application/json"`, constant.Literal())
}

func TestBuildType_Enum(t *testing.T) {
	cm := newTestModel(t, `
namespace: widgets
clients: []
types:
  - type: enum
    name: WidgetColor
    fixed: true
    valueType: {type: string}
    values:
      - {name: Red, value: red}
      - {name: Blue, value: blue}
`)
	enums := cm.EnumTypes()
	require.Len(t, enums, 1)
	assert.Equal(t, "WidgetColor", enums[0].Name)
	assert.True(t, enums[0].Fixed)
	require.Len(t, enums[0].Values, 2)
	assert.Equal(t, "red", enums[0].Values[0].Value)
	assert.Equal(t, "string", enums[0].ValueType.GoType())
}

func TestBuildType_Credential(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")

	token, err := BuildType(cm, map[string]any{
		"type":   "credential",
		"scopes": []any{"https://widgets.example/.default"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sdkcore.TokenCredential", token.GoType())

	key, err := BuildType(cm, map[string]any{
		"type":       "credential",
		"scheme":     "key",
		"headerName": "x-api-key",
	})
	require.NoError(t, err)
	assert.Equal(t, "sdkcore.KeyCredential", key.GoType())
	assert.Equal(t, "x-api-key", key.(*CredentialType).HeaderName)
}
