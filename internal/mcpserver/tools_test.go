package mcpserver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalCodeModel is a small code model with one client, one plain operation,
// and one paging operation, giving the tools something to report on.
const minimalCodeModel = `
namespace: pets
clients:
  - name: petClient
    operationGroups:
      - name: pets
        propertyName: pets
        operations:
          - name: getPet
            method: GET
            path: /pets/{petId}
            parameters:
              - {name: petId, wireName: petId, location: path, type: {type: string}}
            responses:
              - {statusCodes: [200], type: &pet {type: model, name: pet, properties: [{name: id, wireName: id, type: {type: string}}]}}
          - name: listPets
            method: GET
            path: /pets
            pagingMetadata: {nextLinkName: nextLink, itemName: value, itemType: *pet}
            responses:
              - {statusCodes: [200]}
types:
  - *pet
`

func TestInspectTool_StructuralSummary(t *testing.T) {
	input := inspectInput{Model: modelInput{Content: minimalCodeModel}}
	result, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "no error result expected")

	assert.Equal(t, "pets", output.Namespace)
	assert.Equal(t, 1, output.ClientCount)
	assert.Equal(t, 2, output.OperationCount)
	assert.Equal(t, 1, output.ModelCount)

	require.Len(t, output.Clients, 1)
	require.Len(t, output.Clients[0].Groups, 1)
	ops := output.Clients[0].Groups[0].Operations
	require.Len(t, ops, 2)
	assert.Equal(t, "GetPet", ops[0].Name)
	assert.Equal(t, "operation", ops[0].Kind)
	assert.Equal(t, "paging", ops[1].Kind)
}

func TestInspectTool_MissingSource(t *testing.T) {
	result, _, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, inspectInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestGenerateTool_WritesFiles(t *testing.T) {
	dir := t.TempDir()

	input := generateInput{
		Model:       modelInput{Content: minimalCodeModel},
		OutputDir:   dir,
		PackageName: "pets",
	}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "no error result expected")

	assert.True(t, output.Success)
	assert.Equal(t, dir, output.OutputDir)
	assert.Equal(t, "pets", output.PackageName)
	assert.GreaterOrEqual(t, output.FileCount, 1)
	assert.Equal(t, 1, output.GeneratedClients)
	assert.Equal(t, 2, output.GeneratedOperations)
	assert.NotEmpty(t, output.Files)

	// Verify at least one .go file was written to disk.
	found := false
	for _, f := range output.Files {
		path := filepath.Join(dir, f.Name)
		info, statErr := os.Stat(path)
		if statErr == nil && info.Size() > 0 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one generated file on disk")
}

func TestGenerateTool_RequiresOutputDir(t *testing.T) {
	input := generateInput{Model: modelInput{Content: minimalCodeModel}}
	result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestModelInput_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   modelInput
		wantErr bool
	}{
		{name: "file only", input: modelInput{File: "model.yaml"}},
		{name: "content only", input: modelInput{Content: "namespace: x"}},
		{name: "neither", input: modelInput{}, wantErr: true},
		{name: "both", input: modelInput{File: "model.yaml", Content: "namespace: x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeError(t *testing.T) {
	err := errors.New("open /home/user/secret/model.yaml: no such file")
	assert.Equal(t, "open <path>: no such file", sanitizeError(err))
	assert.Equal(t, "", sanitizeError(nil))
}
