package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles_PatchPreservation(t *testing.T) {
	dir := t.TempDir()
	patchPath := filepath.Join(dir, "client_patch.go")
	handWritten := []byte("package widgets\n\n// hand-maintained extensions\n")
	require.NoError(t, os.WriteFile(patchPath, handWritten, 0o644))

	result := &GenerateResult{Files: []GeneratedFile{
		{Name: "client_patch.go", Content: []byte("package widgets // regenerated\n")},
		{Name: "models.go", Content: []byte("package widgets\n")},
	}}
	require.NoError(t, result.WriteFiles(dir))

	kept, err := os.ReadFile(patchPath)
	require.NoError(t, err)
	assert.Equal(t, handWritten, kept, "existing patch files are never overwritten")

	_, err = os.Stat(filepath.Join(dir, "models.go"))
	assert.NoError(t, err)
}

func TestWriteFiles_VersionKeepsGreater(t *testing.T) {
	dir := t.TempDir()
	existing := []byte("package widgets\n\nconst moduleVersion = \"2.5.0\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "version.go"), existing, 0o644))

	result := &GenerateResult{Files: []GeneratedFile{
		{Name: "version.go", Content: []byte("package widgets\n\nconst moduleVersion = \"0.1.0\"\n")},
	}}
	require.NoError(t, result.WriteFiles(dir))

	kept, err := os.ReadFile(filepath.Join(dir, "version.go"))
	require.NoError(t, err)
	assert.Equal(t, existing, kept, "a greater on-disk version survives regeneration")
}

func TestWriteFiles_VersionOverwritesLesser(t *testing.T) {
	dir := t.TempDir()
	existing := []byte("package widgets\n\nconst moduleVersion = \"0.1.0\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "version.go"), existing, 0o644))

	generated := []byte("package widgets\n\nconst moduleVersion = \"0.2.0\"\n")
	result := &GenerateResult{Files: []GeneratedFile{{Name: "version.go", Content: generated}}}
	require.NoError(t, result.WriteFiles(dir))

	written, err := os.ReadFile(filepath.Join(dir, "version.go"))
	require.NoError(t, err)
	assert.Equal(t, generated, written)
}

func TestWriteFiles_CreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	result := &GenerateResult{Files: []GeneratedFile{
		{Name: "samples/get_widget_sample.go", Content: []byte("package samples\n")},
	}}
	require.NoError(t, result.WriteFiles(dir))

	_, err := os.Stat(filepath.Join(dir, "samples", "get_widget_sample.go"))
	assert.NoError(t, err)
}

func TestWriteFiles_RejectsEscapingPaths(t *testing.T) {
	dir := t.TempDir()
	result := &GenerateResult{Files: []GeneratedFile{
		{Name: "../escape.go", Content: []byte("package x\n")},
	}}
	assert.Error(t, result.WriteFiles(dir))
}
