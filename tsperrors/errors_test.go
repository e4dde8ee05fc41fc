package tsperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := &ParseError{Path: "tspCodeModel.yaml", Message: "invalid document", Cause: cause}

	assert.Equal(t, "parse error in tspCodeModel.yaml: invalid document: yaml: line 3: mapping values are not allowed", err.Error())
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrSchema))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestSchemaError(t *testing.T) {
	err := MissingKey("clients.0", "name")
	assert.Equal(t, `schema error at clients.0 (key "name"): required key is missing`, err.Error())
	assert.True(t, errors.Is(err, ErrSchema))

	wrapped := fmt.Errorf("building model: %w", err)
	var schemaErr *SchemaError
	require.True(t, errors.As(wrapped, &schemaErr))
	assert.Equal(t, "name", schemaErr.Key)
}

func TestLookupError(t *testing.T) {
	err := &LookupError{Kind: "initial operation", Context: "operation group widgets", Message: "node identity 0x4 not built"}
	assert.Equal(t, "lookup error: no initial operation found in operation group widgets: node identity 0x4 not built", err.Error())
	assert.True(t, errors.Is(err, ErrLookup))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "client-side-validation", Value: true, Message: "incompatible with version-tolerant"}
	assert.Equal(t, `configuration error: option "client-side-validation" = true: incompatible with version-tolerant`, err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
}
