package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytes_AliasIdentity(t *testing.T) {
	src := []byte(`
namespace: widgets
clients: []
types:
  - &widget
    type: model
    name: Widget
  - type: list
    elementType: *widget
`)
	tree, err := decodeBytes(src)
	require.NoError(t, err)

	doc := Document(tree)
	types := doc.Types()
	require.Len(t, types, 2)

	anchor := types[0]
	element, ok := types[1]["elementType"].(map[string]any)
	require.True(t, ok, "elementType should decode to a mapping")

	// The alias must resolve to the same map instance, not a copy.
	assert.Equal(t, "Widget", String(element, "name"))
	element["name"] = "Renamed"
	assert.Equal(t, "Renamed", String(anchor, "name"),
		"mutating through the alias must be visible through the anchor")
}

func TestDecodeBytes_SeparateNodesStayDistinct(t *testing.T) {
	src := []byte(`
a: {type: model, name: Widget}
b: {type: model, name: Widget}
`)
	tree, err := decodeBytes(src)
	require.NoError(t, err)

	a := Map(tree, "a")
	b := Map(tree, "b")
	require.NotNil(t, a)
	require.NotNil(t, b)

	a["name"] = "Changed"
	assert.Equal(t, "Widget", String(b, "name"),
		"structurally equal nodes parsed separately must remain distinct")
}

func TestDecodeBytes_Scalars(t *testing.T) {
	src := []byte(`
s: hello
i: 42
f: 2.5
b: true
n: null
seq: [1, 2]
`)
	tree, err := decodeBytes(src)
	require.NoError(t, err)
	assert.Equal(t, "hello", tree["s"])
	assert.EqualValues(t, 42, tree["i"])
	assert.Equal(t, 2.5, tree["f"])
	assert.Equal(t, true, tree["b"])
	assert.Nil(t, tree["n"])
	assert.Len(t, Slice(tree, "seq"), 2)
}

func TestDecodeBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty document", ""},
		{"top-level sequence", "- a\n- b\n"},
		{"malformed yaml", "a: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeBytes([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}
