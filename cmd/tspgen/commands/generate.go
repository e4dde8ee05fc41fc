package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erraggy/tspgen"
	"github.com/erraggy/tspgen/generator"
	"github.com/erraggy/tspgen/internal/cliutil"
	"github.com/erraggy/tspgen/model"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output        string
	ModuleName    string
	PackageName   string
	ModelsMode    string
	ModuleVersion string
	PadSuffix     string

	AzureArm             bool
	VersionTolerant      bool
	ClientSideValidation bool
	MinimizePositional   bool
	Strict               bool
	Samples              bool
	Tests                bool
	NoReadme             bool
	Debug                bool

	// Extra holds passthrough emitter options supplied as --flag key=value.
	// Unknown keys surface as generation warnings rather than errors.
	Extra map[string]string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{Extra: make(map[string]string)}

	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (required)")
	fs.StringVar(&flags.ModuleName, "module-name", "", "Go module path for the generated SDK; emits a go.mod when set")
	fs.StringVar(&flags.PackageName, "p", "api", "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package-name", "api", "Go package name for generated code")
	fs.StringVar(&flags.ModelsMode, "models-mode", "dpg", "model emission mode (dpg, msrest, none)")
	fs.StringVar(&flags.ModuleVersion, "module-version", "0.1.0", "version stamped into the generated version file")
	fs.StringVar(&flags.PadSuffix, "pad-suffix", "Param", "suffix appended to identifiers colliding with reserved words")
	fs.BoolVar(&flags.AzureArm, "azure-arm", false, "apply ARM conventions to long-running operations")
	fs.BoolVar(&flags.VersionTolerant, "version-tolerant", false, "emit version-tolerant client surfaces")
	fs.BoolVar(&flags.ClientSideValidation, "client-side-validation", false, "emit client-side request validation")
	fs.BoolVar(&flags.MinimizePositional, "minimize-positional", false, "keep only path parameters positional")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.Samples, "samples", false, "emit runnable sample files")
	fs.BoolVar(&flags.Tests, "tests", false, "emit test scaffolding")
	fs.BoolVar(&flags.NoReadme, "no-readme", false, "don't generate README.md file")
	fs.BoolVar(&flags.Debug, "debug", false, "log pass diagnostics to stderr")
	fs.Func("flag", "passthrough emitter option as key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		flags.Extra[key] = value
		return nil
	})

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: tspgen generate [flags] <code-model.yaml|->\n\n")
		cliutil.Writef(fs.Output(), "Generate a Go SDK from a TypeSpec code-model document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  tspgen generate -o ./sdk code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  tspgen generate --module-name=github.com/contoso/widgets -o ./sdk code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  tspgen generate --models-mode=msrest --azure-arm -o ./sdk code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  tspgen generate --samples --tests -o ./sdk code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  tspgen generate --flag head-as-boolean=true -o ./sdk code-model.yaml\n")
		cliutil.Writef(fs.Output(), "  cat code-model.yaml | tspgen generate -o ./sdk -\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  Use '-' as the file path to read the code model from stdin.\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Unknown --flag keys are reported as warnings, never errors\n")
		cliutil.Writef(fs.Output(), "  - Files named *_patch.go in the output directory are never overwritten\n")
		cliutil.Writef(fs.Output(), "  - An existing version file with a greater version is kept as-is\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	modelPath := fs.Arg(0)

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	genOpts := []generator.Option{
		generator.WithPackageName(flags.PackageName),
		generator.WithModelsMode(model.ModelsMode(flags.ModelsMode)),
		generator.WithModuleVersion(flags.ModuleVersion),
		generator.WithPadSuffix(flags.PadSuffix),
		generator.WithAzureArm(flags.AzureArm),
		generator.WithVersionTolerant(flags.VersionTolerant),
		generator.WithClientSideValidation(flags.ClientSideValidation),
		generator.WithMinimizePositional(flags.MinimizePositional),
		generator.WithStrictMode(flags.Strict),
		generator.WithSamples(flags.Samples),
		generator.WithTests(flags.Tests),
		generator.WithReadme(!flags.NoReadme),
		generator.WithLogger(debugLogger(flags.Debug)),
	}
	if flags.ModuleName != "" {
		genOpts = append(genOpts, generator.WithModuleName(flags.ModuleName))
	}
	for key, value := range flags.Extra {
		genOpts = append(genOpts, generator.WithFlag(key, value))
	}

	if modelPath == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		genOpts = append(genOpts, generator.WithBytes(data))
	} else {
		genOpts = append(genOpts, generator.WithFilePath(modelPath))
	}

	// Generate the code with timing
	startTime := time.Now()
	result, err := generator.GenerateWithOptions(genOpts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	// Print results
	fmt.Printf("TypeSpec SDK Generator\n")
	fmt.Printf("======================\n\n")
	fmt.Printf("tspgen version: %s\n", tspgen.Version())
	if modelPath == StdinFilePath {
		fmt.Printf("Code Model: <stdin>\n")
	} else {
		fmt.Printf("Code Model: %s\n", modelPath)
	}
	fmt.Printf("Namespace: %s\n", result.Namespace)
	fmt.Printf("Source Size: %s\n", FormatBytes(result.SourceSize))
	fmt.Printf("Package: %s\n", result.PackageName)
	fmt.Printf("Clients: %d\n", result.GeneratedClients)
	fmt.Printf("Models: %d\n", result.GeneratedModels)
	fmt.Printf("Enums: %d\n", result.GeneratedEnums)
	fmt.Printf("Operations: %d\n", result.GeneratedOperations)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Write files
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	// Print generated files
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s/%s (%d bytes)\n", flags.Output, file.Name, len(file.Content))
	}
	fmt.Println()

	// Print summary
	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Generation completed with %d critical issue(s)", result.CriticalCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}

	return nil
}
