package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildParam(t *testing.T, cm *CodeModel, node map[string]any) *Parameter {
	t.Helper()
	p, err := newParameter(cm, node)
	require.NoError(t, err)
	return p
}

func TestParameterConvention(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")
	cmMinimized := newTestModel(t, "namespace: w\nclients: []\n")
	cmMinimized.Options.MinimizePositional = true

	stringType := map[string]any{"type": "string"}
	contentType := map[string]any{
		"type":      "constant",
		"valueType": map[string]any{"type": "string"},
		"value":     "application/json",
	}

	tests := []struct {
		name       string
		cm         *CodeModel
		node       map[string]any
		inOverload bool
		expected   Convention
	}{
		{
			name:     "api-version is an option",
			cm:       cm,
			node:     map[string]any{"name": "apiVersion", "wireName": "api-version", "location": "query", "type": stringType, "isApiVersion": true},
			expected: ConventionOption,
		},
		{
			name:     "constant non-content-type is an option",
			cm:       cm,
			node:     map[string]any{"name": "accept", "wireName": "Accept", "location": "header", "type": contentType},
			expected: ConventionOption,
		},
		{
			name:     "content-type outside overload is an option",
			cm:       cm,
			node:     map[string]any{"name": "contentType", "wireName": "Content-Type", "location": "header", "type": contentType},
			expected: ConventionOption,
		},
		{
			name:       "content-type inside overload is required",
			cm:         cm,
			node:       map[string]any{"name": "contentType", "wireName": "Content-Type", "location": "header", "type": contentType},
			inOverload: true,
			expected:   ConventionRequiredOption,
		},
		{
			name:     "query stays positional by default",
			cm:       cm,
			node:     map[string]any{"name": "filter", "wireName": "filter", "location": "query", "type": stringType},
			expected: ConventionArgument,
		},
		{
			name:     "query minimized to option",
			cm:       cmMinimized,
			node:     map[string]any{"name": "filter", "wireName": "filter", "location": "query", "type": stringType},
			expected: ConventionRequiredOption,
		},
		{
			name:     "header minimized to option",
			cm:       cmMinimized,
			node:     map[string]any{"name": "requestId", "wireName": "x-request-id", "location": "header", "type": stringType},
			expected: ConventionRequiredOption,
		},
		{
			name:     "path is positional",
			cm:       cmMinimized,
			node:     map[string]any{"name": "widgetId", "wireName": "widgetId", "location": "path", "type": stringType},
			expected: ConventionArgument,
		},
		{
			name:     "required body is positional",
			cm:       cm,
			node:     map[string]any{"name": "body", "wireName": "body", "location": "body", "type": stringType},
			expected: ConventionArgument,
		},
		{
			name:     "optional body is an option",
			cm:       cm,
			node:     map[string]any{"name": "body", "wireName": "body", "location": "body", "optional": true, "type": stringType},
			expected: ConventionOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildParam(t, tt.cm, tt.node)
			assert.Equal(t, tt.expected, p.Convention(tt.inOverload))
		})
	}
}

func TestParameterConvention_NotCached(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")
	p := buildParam(t, cm, map[string]any{
		"name": "contentType", "wireName": "Content-Type", "location": "header",
		"type": map[string]any{
			"type":      "constant",
			"valueType": map[string]any{"type": "string"},
			"value":     "application/json",
		},
	})

	// The classification depends on call-site context: the same parameter
	// answers differently per call.
	assert.Equal(t, ConventionOption, p.Convention(false))
	assert.Equal(t, ConventionRequiredOption, p.Convention(true))
	assert.Equal(t, ConventionOption, p.Convention(false))
}

func TestParameter_APIVersionForcedToString(t *testing.T) {
	cm := newTestModel(t, "namespace: w\nclients: []\n")
	p := buildParam(t, cm, map[string]any{
		"name": "apiVersion", "wireName": "api-version", "location": "query",
		"isApiVersion": true,
		"type": map[string]any{
			"type": "enum", "name": "Versions",
			"valueType": map[string]any{"type": "string"},
			"values":    []any{map[string]any{"name": "V1", "value": "2026-08-01"}},
		},
	})

	assert.Equal(t, "string", p.GoType())
	assert.True(t, p.Imports().Empty())
}
