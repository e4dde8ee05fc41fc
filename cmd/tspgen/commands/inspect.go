package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/tspgen"
	"github.com/erraggy/tspgen/internal/cliutil"
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/model"
	"github.com/erraggy/tspgen/preprocess"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format string
	Debug  bool
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	fs.BoolVar(&flags.Debug, "debug", false, "log pass diagnostics to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: tspgen inspect [flags] <code-model.yaml|->\n\n")
		cliutil.Writef(fs.Output(), "Inspect a TypeSpec code-model document and print its structure.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  tspgen inspect code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  tspgen inspect --format json code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  cat code-model.yaml | tspgen inspect -\n")
	}

	return fs, flags
}

// inspectSummary is the structured output of the inspect command.
type inspectSummary struct {
	Namespace              string                 `json:"namespace"                        yaml:"namespace"`
	CrossLanguagePackageID string                 `json:"crossLanguagePackageId,omitempty" yaml:"crossLanguagePackageId,omitempty"`
	Clients                []inspectClientSummary `json:"clients"                          yaml:"clients"`
	ModelCount             int                    `json:"modelCount"                       yaml:"modelCount"`
	EnumCount              int                    `json:"enumCount"                        yaml:"enumCount"`
	OperationCount         int                    `json:"operationCount"                   yaml:"operationCount"`
	Issues                 []string               `json:"issues,omitempty"                 yaml:"issues,omitempty"`
}

type inspectClientSummary struct {
	Name   string                `json:"name"   yaml:"name"`
	Groups []inspectGroupSummary `json:"groups" yaml:"groups"`
}

type inspectGroupSummary struct {
	Name       string             `json:"name"       yaml:"name"`
	Operations []inspectOpSummary `json:"operations" yaml:"operations"`
}

type inspectOpSummary struct {
	Name   string `json:"name"   yaml:"name"`
	Kind   string `json:"kind"   yaml:"kind"`
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path"   yaml:"path"`
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	modelPath := fs.Arg(0)
	logger := debugLogger(flags.Debug)

	loadOpts := []ir.Option{ir.WithLogger(logger)}
	if modelPath == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		loadOpts = append(loadOpts, ir.WithBytes(data), ir.WithSourceName("<stdin>"))
	} else {
		loadOpts = append(loadOpts, ir.WithFilePath(modelPath))
	}

	startTime := time.Now()
	loaded, err := ir.LoadWithOptions(loadOpts...)
	if err != nil {
		return fmt.Errorf("loading code model: %w", err)
	}

	passResult, err := preprocess.Run(loaded.Document, preprocess.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("preprocessing code model: %w", err)
	}

	cm, err := model.New(loaded.Document, nil, logger)
	if err != nil {
		return fmt.Errorf("building code model: %w", err)
	}
	totalTime := time.Since(startTime)

	summary := buildInspectSummary(cm, passResult)

	if flags.Format != FormatText {
		return OutputStructured(summary, flags.Format)
	}

	// Print results
	fmt.Printf("TypeSpec Code Model Inspector\n")
	fmt.Printf("=============================\n\n")
	fmt.Printf("tspgen version: %s\n", tspgen.Version())
	fmt.Printf("Code Model: %s\n", loaded.SourcePath)
	fmt.Printf("Namespace: %s\n", summary.Namespace)
	if summary.CrossLanguagePackageID != "" {
		fmt.Printf("Cross-Language Package: %s\n", summary.CrossLanguagePackageID)
	}
	fmt.Printf("Source Size: %s\n", FormatBytes(loaded.SourceSize))
	fmt.Printf("Models: %d\n", summary.ModelCount)
	fmt.Printf("Enums: %d\n", summary.EnumCount)
	fmt.Printf("Operations: %d\n", summary.OperationCount)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	for _, client := range summary.Clients {
		fmt.Printf("Client %s:\n", client.Name)
		for _, group := range client.Groups {
			fmt.Printf("  Group %s:\n", group.Name)
			for _, op := range group.Operations {
				fmt.Printf("    %-12s %-6s %s %s\n", op.Name, op.Kind, op.Method, op.Path)
			}
		}
		fmt.Println()
	}

	if len(summary.Issues) > 0 {
		fmt.Printf("Preprocessing Notes (%d):\n", len(summary.Issues))
		for _, note := range summary.Issues {
			fmt.Printf("  %s\n", note)
		}
		fmt.Println()
	}

	return nil
}

func buildInspectSummary(cm *model.CodeModel, passResult *preprocess.Result) inspectSummary {
	summary := inspectSummary{
		Namespace:              cm.Namespace,
		CrossLanguagePackageID: cm.CrossLanguagePackageID,
		ModelCount:             len(cm.ModelTypes()),
		EnumCount:              len(cm.EnumTypes()),
		OperationCount:         cm.OperationCount(),
	}
	for _, c := range cm.Clients {
		cs := inspectClientSummary{Name: c.Name}
		for _, g := range c.Groups {
			gs := inspectGroupSummary{Name: g.Name}
			for _, op := range g.Operations {
				if op.IsOverload {
					continue
				}
				gs.Operations = append(gs.Operations, inspectOpSummary{
					Name:   op.Name,
					Kind:   string(op.Kind()),
					Method: op.Method,
					Path:   op.Path,
				})
			}
			cs.Groups = append(cs.Groups, gs)
		}
		summary.Clients = append(summary.Clients, cs)
	}
	for _, issue := range passResult.Issues {
		summary.Issues = append(summary.Issues, issue.String())
	}
	return summary
}
