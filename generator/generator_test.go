package generator

import (
	"errors"
	"testing"

	"github.com/erraggy/tspgen/model"
	"github.com/erraggy/tspgen/tsperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widgetModel is a small but complete document: one client, a plain
// operation, a JSON-body operation, and a paging operation sharing one model
// via an anchor.
const widgetModel = `
namespace: widgets
crossLanguagePackageId: Contoso.Widgets
clients:
  - name: widgetClient
    operationGroups:
      - name: widgets
        propertyName: widgets
        operations:
          - name: getWidget
            method: GET
            path: /widgets/{widgetId}
            parameters:
              - {name: widgetId, wireName: widgetId, location: path, type: {type: string}}
            responses:
              - {statusCodes: [200], type: {type: string}}
          - name: createWidget
            method: PUT
            path: /widgets/{widgetId}
            parameters:
              - {name: widgetId, wireName: widgetId, location: path, type: {type: string}}
              - name: body
                wireName: body
                location: body
                contentTypes: [application/json]
                type: &widget
                  type: model
                  name: widget
                  crossLanguageDefinitionId: Contoso.Widgets.Widget
                  properties:
                    - {name: id, wireName: id, type: {type: string}}
                    - {name: weight, wireName: weight, optional: true, type: {type: int32}}
            responses:
              - {statusCodes: [200], type: *widget}
          - name: listWidgets
            method: GET
            path: /widgets
            pagingMetadata: {nextLinkName: nextLink, itemName: value, itemType: *widget}
            responses:
              - {statusCodes: [200]}
types:
  - *widget
`

func TestGenerateWithOptions_RoundTrip(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(widgetModel)),
		WithModuleName("github.com/contoso/widgets"),
		WithPackageName("widgets"),
	)
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, "widgets", result.Namespace)
	assert.Equal(t, 1, result.GeneratedModels)
	assert.Equal(t, 3, result.GeneratedOperations)
	assert.Equal(t, 1, result.GeneratedClients)

	models := result.GetFile("models.go")
	require.NotNil(t, models)
	content := string(models.Content)
	assert.Contains(t, content, "type Widget struct")
	assert.Contains(t, content, "`json:\"id\"`")
	assert.Contains(t, content, "Weight *int32 `json:\"weight,omitempty\"`",
		"optional non-nilable property is pointer-wrapped")

	client := result.GetFile("client.go")
	require.NotNil(t, client)
	assert.Contains(t, string(client.Content), "func NewWidgetClient(endpoint string, options *WidgetClientOptions) (*WidgetClient, error)")
	assert.Contains(t, string(client.Content), "func (client *WidgetClient) NewWidgetsClient() *WidgetsClient")

	ops := result.GetFile("widgets_operations.go")
	require.NotNil(t, ops)
	opsContent := string(ops.Content)
	assert.Contains(t, opsContent,
		"func (client *WidgetsClient) GetWidget(ctx context.Context, widgetId string, options *GetWidgetOptions) (GetWidgetResponse, error)")
	assert.Contains(t, opsContent, "Value string",
		"a required string response documents as plain string, never a pointer")
	assert.Contains(t, opsContent,
		"func (client *WidgetsClient) NewListWidgetsPager(options *ListWidgetsOptions) *sdkcore.Pager[ListWidgetsResponse]")
	assert.Contains(t, opsContent, "NextLink *string")

	builders := result.GetFile("widgets_request_builders.go")
	require.NotNil(t, builders)
	buildersContent := string(builders.Content)
	assert.Contains(t, buildersContent, "func (client *WidgetsClient) buildGetWidgetRequest")
	assert.Contains(t, buildersContent, "url.PathEscape(fmt.Sprint(widgetId))")
	assert.Contains(t, buildersContent, `req.Header.Set("Content-Type", "application/json")`)

	require.NotNil(t, result.GetFile("options.go"))
	require.NotNil(t, result.GetFile("version.go"))
	require.NotNil(t, result.GetFile("README.md"))
	require.NotNil(t, result.GetFile("_metadata.json"))

	gomod := result.GetFile("go.mod")
	require.NotNil(t, gomod)
	assert.Contains(t, string(gomod.Content), "module github.com/contoso/widgets")
	assert.Contains(t, string(gomod.Content), model.SDKCoreModule,
		"a paging operation pulls in the SDK core runtime")

	apiview := result.GetFile("apiview-properties.json")
	require.NotNil(t, apiview)
	assert.Contains(t, string(apiview.Content), "Contoso.Widgets.Widget")
}

func TestGenerateWithOptions_Deterministic(t *testing.T) {
	first, err := GenerateWithOptions(WithBytes([]byte(widgetModel)), WithModuleName("github.com/contoso/widgets"))
	require.NoError(t, err)
	second, err := GenerateWithOptions(WithBytes([]byte(widgetModel)), WithModuleName("github.com/contoso/widgets"))
	require.NoError(t, err)

	require.Len(t, second.Files, len(first.Files))
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Name, second.Files[i].Name)
		assert.Equal(t, string(first.Files[i].Content), string(second.Files[i].Content),
			"repeated renders must be byte-identical: %s", first.Files[i].Name)
	}
}

func TestGenerateWithOptions_SamplesAndTests(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(widgetModel)),
		WithModuleName("github.com/contoso/widgets"),
		WithPackageName("widgets"),
		WithSamples(true),
		WithTests(true),
	)
	require.NoError(t, err)

	sample := result.GetFile("samples/get_widget_sample.go")
	require.NotNil(t, sample)
	assert.Contains(t, string(sample.Content), "func SampleGetWidget()")

	pagerSample := result.GetFile("samples/list_widgets_sample.go")
	require.NotNil(t, pagerSample)
	assert.Contains(t, string(pagerSample.Content), "for pager.More()")

	scaffold := result.GetFile("widget_client_test.go")
	require.NotNil(t, scaffold)
	assert.Contains(t, string(scaffold.Content), "func TestNewWidgetClient(t *testing.T)")
}

func TestGenerateWithOptions_OptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no source", opts: nil},
		{name: "two sources", opts: []Option{
			WithBytes([]byte("namespace: x")),
			WithFilePath("x.yaml"),
		}},
		{name: "bad models mode", opts: []Option{
			WithBytes([]byte("namespace: x")),
			WithModelsMode(model.ModelsMode("fancy")),
		}},
		{name: "validation conflicts with version tolerance", opts: []Option{
			WithBytes([]byte("namespace: x")),
			WithClientSideValidation(true),
			WithVersionTolerant(true),
		}},
		{name: "bad boolean flag", opts: []Option{
			WithBytes([]byte("namespace: x")),
			WithFlag("azure-arm", "definitely"),
		}},
		{name: "empty module name", opts: []Option{
			WithBytes([]byte("namespace: x")),
			WithModuleName(""),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tsperrors.ErrConfig))
		})
	}
}

func TestWithFlag_Coercion(t *testing.T) {
	cfg, err := applyOptions(
		WithBytes([]byte("namespace: x")),
		WithFlag("azure-arm", "true"),
		WithFlag("package-name", "contoso"),
		WithFlag("models-mode", "msrest"),
		WithFlag("minimize-positional", "1"),
	)
	require.NoError(t, err)
	assert.True(t, cfg.azureArm)
	assert.Equal(t, "contoso", cfg.packageName)
	assert.Equal(t, model.ModelsModeMsrest, cfg.modelsMode)
	assert.True(t, cfg.minimizePositional)
}

func TestGenerateWithOptions_UnknownFlagWarns(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(widgetModel)),
		WithFlag("emitter-output-dir", "/tmp/x"),
	)
	require.NoError(t, err)

	found := false
	for _, issue := range result.Issues {
		if issue.Field == "emitter-output-dir" && issue.Severity == SeverityWarning {
			found = true
		}
	}
	assert.True(t, found, "unknown flags surface as warnings, not errors")
}

func TestGenerateWithOptions_SelfReferentialModel(t *testing.T) {
	// A model whose property type aliases the model itself arrives from the
	// loader as a genuine map cycle; the whole pipeline has to terminate.
	const recursiveModel = `
namespace: widgets
types:
  - &widget
    type: model
    name: widget
    properties:
      - {name: id, wireName: id, type: {type: string}}
      - {name: parent, wireName: parent, optional: true, type: *widget}
clients:
  - name: widgetClient
    operationGroups:
      - name: widgets
        propertyName: widgets
        operations:
          - name: getWidget
            method: GET
            path: /widgets/{widgetId}
            parameters:
              - {name: widgetId, wireName: widgetId, location: path, type: {type: string}}
            responses:
              - {statusCodes: [200], type: *widget}
`
	result, err := GenerateWithOptions(
		WithBytes([]byte(recursiveModel)),
		WithPackageName("widgets"),
	)
	require.NoError(t, err)
	require.True(t, result.Success)

	models := result.GetFile("models.go")
	require.NotNil(t, models)
	content := string(models.Content)
	assert.Contains(t, content, "type Widget struct")
	assert.Contains(t, content, "Parent *Widget", "self-reference renders as a pointer field")
}

func TestGenerateWithOptions_SubNamespaceImportPath(t *testing.T) {
	// Sub-namespace packages are emitted at the root-trimmed directory, so
	// cross-namespace imports must trim the root namespace too.
	const layeredModel = `
namespace: contoso.widgets
types:
  - &part
    type: model
    name: part
    namespace: contoso.widgets.sub
    properties:
      - {name: id, wireName: id, type: {type: string}}
clients:
  - name: widgetClient
    operationGroups:
      - name: widgets
        propertyName: widgets
        operations:
          - name: getPart
            method: GET
            path: /parts/{partId}
            parameters:
              - {name: partId, wireName: partId, location: path, type: {type: string}}
            responses:
              - {statusCodes: [200], type: *part}
`
	result, err := GenerateWithOptions(
		WithBytes([]byte(layeredModel)),
		WithModuleName("example.com/sdk"),
		WithPackageName("widgets"),
	)
	require.NoError(t, err)

	sub := result.GetFile("sub/models.go")
	require.NotNil(t, sub, "sub-namespace package lives at the root-trimmed path")
	assert.Contains(t, string(sub.Content), "package sub")

	for _, f := range result.Files {
		assert.NotContains(t, string(f.Content), "example.com/sdk/contoso",
			"the root namespace never appears in import paths: %s", f.Name)
	}
}

func TestGenerateWithOptions_LicenseFile(t *testing.T) {
	licensed := "licenseInfo:\n  name: MIT License\n  description: |\n    Copyright (c) Contoso.\n    Licensed under the MIT License.\n" + widgetModel
	result, err := GenerateWithOptions(
		WithBytes([]byte(licensed)),
		WithModuleName("github.com/contoso/widgets"),
	)
	require.NoError(t, err)

	license := result.GetFile("LICENSE.txt")
	require.NotNil(t, license)
	assert.Contains(t, string(license.Content), "Licensed under the MIT License.")

	readme := result.GetFile("README.md")
	require.NotNil(t, readme)
	assert.Contains(t, string(readme.Content), "LICENSE.txt")
}

func TestGenerateWithOptions_OptionalBody(t *testing.T) {
	const optionalBodyModel = `
namespace: widgets
types:
  - &widget
    type: model
    name: widget
    properties:
      - {name: id, wireName: id, type: {type: string}}
clients:
  - name: widgetClient
    operationGroups:
      - name: widgets
        propertyName: widgets
        operations:
          - name: patchWidget
            method: PATCH
            path: /widgets/{widgetId}
            parameters:
              - {name: widgetId, wireName: widgetId, location: path, type: {type: string}}
              - name: body
                wireName: body
                location: body
                optional: true
                contentTypes: [application/json]
                type: *widget
            responses:
              - {statusCodes: [200], type: *widget}
`
	result, err := GenerateWithOptions(
		WithBytes([]byte(optionalBodyModel)),
		WithPackageName("widgets"),
	)
	require.NoError(t, err)

	ops := result.GetFile("widgets_operations.go")
	require.NotNil(t, ops)
	assert.Contains(t, string(ops.Content),
		"func (client *WidgetsClient) PatchWidget(ctx context.Context, widgetId string, options *PatchWidgetOptions) (PatchWidgetResponse, error)",
		"an optional body never appears as a positional argument")

	options := result.GetFile("options.go")
	require.NotNil(t, options)
	assert.Contains(t, string(options.Content), "Body *Widget")

	builders := result.GetFile("widgets_request_builders.go")
	require.NotNil(t, builders)
	content := string(builders.Content)
	assert.Contains(t, content, "var bodyReader io.Reader")
	assert.Contains(t, content, "if options != nil && options.Body != nil")
}

func TestGenerateWithOptions_ModelsModeNone(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(widgetModel)),
		WithModelsMode(model.ModelsModeNone),
	)
	require.NoError(t, err)
	assert.Nil(t, result.GetFile("models.go"))
}
