package ir

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/tspgen/tsperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalModel = `
namespace: widgets
clients:
  - name: WidgetClient
    operationGroups: []
types: []
`

func TestLoadWithOptions_Bytes(t *testing.T) {
	result, err := LoadWithOptions(WithBytes([]byte(minimalModel)))
	require.NoError(t, err)
	assert.Equal(t, "widgets", result.Document.Namespace())
	assert.Equal(t, "<bytes>", result.SourcePath)
	assert.Equal(t, int64(len(minimalModel)), result.SourceSize)
}

func TestLoadWithOptions_FilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tspCodeModel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalModel), 0o644))

	result, err := LoadWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Len(t, result.Document.Clients(), 1)
}

func TestLoadWithOptions_Reader(t *testing.T) {
	result, err := LoadWithOptions(
		WithReader(strings.NewReader(minimalModel)),
		WithSourceName("stdin"),
	)
	require.NoError(t, err)
	assert.Equal(t, "stdin", result.SourcePath)
}

func TestLoadWithOptions_NoSource(t *testing.T) {
	_, err := LoadWithOptions()
	assert.ErrorContains(t, err, "exactly one input source")
}

func TestLoadWithOptions_TwoSources(t *testing.T) {
	_, err := LoadWithOptions(WithBytes([]byte("x: 1")), WithReader(strings.NewReader("x: 1")))
	assert.ErrorContains(t, err, "exactly one input source")
}

func TestLoadWithOptions_MissingFile(t *testing.T) {
	_, err := LoadWithOptions(WithFilePath(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.True(t, errors.Is(err, tsperrors.ErrParse))
}

func TestLoadWithOptions_MissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no namespace", "clients: []\n"},
		{"no clients", "namespace: widgets\n"},
		{"client without name", "namespace: w\nclients:\n  - operationGroups: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithOptions(WithBytes([]byte(tt.src)))
			assert.True(t, errors.Is(err, tsperrors.ErrSchema), "want schema error, got %v", err)
		})
	}
}
