package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/tspgen/generator"
	"github.com/erraggy/tspgen/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Model       modelInput `json:"model"                  jsonschema:"The code-model document to generate from"`
	OutputDir   string     `json:"output_dir"             jsonschema:"Directory to write generated files to"`
	ModuleName  string     `json:"module_name,omitempty"  jsonschema:"Go module path for the generated SDK; emits a go.mod when set"`
	PackageName string     `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: api)"`
	ModelsMode  string     `json:"models_mode,omitempty"  jsonschema:"Model emission mode: dpg, msrest, or none (default: dpg)"`
	AzureArm    bool       `json:"azure_arm,omitempty"    jsonschema:"Apply ARM conventions to long-running operations"`
	Samples     bool       `json:"samples,omitempty"      jsonschema:"Emit runnable sample files"`
	Tests       bool       `json:"tests,omitempty"        jsonschema:"Emit test scaffolding"`
	Strict      bool       `json:"strict,omitempty"       jsonschema:"Treat generation warnings as failures"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateIssueInfo struct {
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
}

type generateOutput struct {
	Success             bool                `json:"success"`
	OutputDir           string              `json:"output_dir"`
	Namespace           string              `json:"namespace"`
	PackageName         string              `json:"package_name"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	GeneratedModels     int                 `json:"generated_models"`
	GeneratedEnums      int                 `json:"generated_enums"`
	GeneratedOperations int                 `json:"generated_operations"`
	GeneratedClients    int                 `json:"generated_clients"`
	WarningCount        int                 `json:"warning_count"`
	CriticalCount       int                 `json:"critical_count"`
	Issues              []generateIssueInfo `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	source, err := input.Model.generatorOption()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	packageName := input.PackageName
	if packageName == "" {
		packageName = cfg.PackageName
	}
	modelsMode := input.ModelsMode
	if modelsMode == "" {
		modelsMode = cfg.ModelsMode
	}

	opts := []generator.Option{
		source,
		generator.WithPackageName(packageName),
		generator.WithModelsMode(model.ModelsMode(modelsMode)),
		generator.WithModuleVersion(cfg.ModuleVersion),
		generator.WithStrictMode(input.Strict || cfg.Strict),
	}
	if input.ModuleName != "" {
		opts = append(opts, generator.WithModuleName(input.ModuleName))
	}
	if input.AzureArm {
		opts = append(opts, generator.WithAzureArm(true))
	}
	if input.Samples {
		opts = append(opts, generator.WithSamples(true))
	}
	if input.Tests {
		opts = append(opts, generator.WithTests(true))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:             result.Success,
		OutputDir:           input.OutputDir,
		Namespace:           result.Namespace,
		PackageName:         result.PackageName,
		FileCount:           len(result.Files),
		GeneratedModels:     result.GeneratedModels,
		GeneratedEnums:      result.GeneratedEnums,
		GeneratedOperations: result.GeneratedOperations,
		GeneratedClients:    result.GeneratedClients,
		WarningCount:        result.WarningCount,
		CriticalCount:       result.CriticalCount,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}

	output.Issues = makeSlice[generateIssueInfo](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, generateIssueInfo{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}

	return nil, output, nil
}
