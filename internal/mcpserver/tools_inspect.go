package mcpserver

import (
	"context"

	"github.com/erraggy/tspgen/model"
	"github.com/erraggy/tspgen/preprocess"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Model modelInput `json:"model" jsonschema:"The code-model document to inspect"`
}

type operationSummary struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

type groupSummary struct {
	Name       string             `json:"name"`
	Operations []operationSummary `json:"operations"`
}

type clientSummary struct {
	Name   string         `json:"name"`
	Groups []groupSummary `json:"groups"`
}

type inspectOutput struct {
	Namespace              string          `json:"namespace"`
	CrossLanguagePackageID string          `json:"cross_language_package_id,omitempty"`
	SourceSize             int64           `json:"source_size"`
	ClientCount            int             `json:"client_count"`
	OperationCount         int             `json:"operation_count"`
	ModelCount             int             `json:"model_count"`
	EnumCount              int             `json:"enum_count"`
	Clients                []clientSummary `json:"clients,omitempty"`
	SynthesizedOverloads   int             `json:"synthesized_overloads,omitempty"`
	SynthesizedParameters  int             `json:"synthesized_parameters,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	loaded, err := input.Model.load()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	passResult, err := preprocess.Run(loaded.Document, preprocess.Options{})
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	cm, err := model.New(loaded.Document, nil, nil)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		Namespace:              cm.Namespace,
		CrossLanguagePackageID: cm.CrossLanguagePackageID,
		SourceSize:             loaded.SourceSize,
		ClientCount:            len(cm.Clients),
		OperationCount:         cm.OperationCount(),
		ModelCount:             len(cm.ModelTypes()),
		EnumCount:              len(cm.EnumTypes()),
		SynthesizedOverloads:   passResult.SynthesizedOverloads,
		SynthesizedParameters:  passResult.SynthesizedParameters,
	}

	output.Clients = makeSlice[clientSummary](len(cm.Clients))
	for _, c := range cm.Clients {
		cs := clientSummary{Name: c.Name}
		cs.Groups = makeSlice[groupSummary](len(c.Groups))
		for _, g := range c.Groups {
			gs := groupSummary{Name: g.Name}
			gs.Operations = makeSlice[operationSummary](len(g.Operations))
			for _, op := range g.Operations {
				if op.IsOverload {
					continue
				}
				gs.Operations = append(gs.Operations, operationSummary{
					Name:   op.Name,
					Kind:   string(op.Kind()),
					Method: op.Method,
					Path:   op.Path,
				})
			}
			cs.Groups = append(cs.Groups, gs)
		}
		output.Clients = append(output.Clients, cs)
	}

	return nil, output, nil
}
