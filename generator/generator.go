package generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/model"
	"github.com/erraggy/tspgen/preprocess"
	"github.com/erraggy/tspgen/tsperrors"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates features that may not generate perfectly
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates features that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name relative to the output directory
	// (e.g., "models.go", "samples/get_widget_sample.go")
	Name string
	// Content is the generated file content
	Content []byte
}

// GenerateResult contains the results of generating an SDK from a code-model
// document
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// Namespace is the root package namespace of the source document
	Namespace string
	// PackageName is the Go package name used in generation
	PackageName string
	// ModuleName is the Go module path of the generated SDK
	ModuleName string
	// Issues contains all preprocessing and generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source document
	LoadTime time.Duration
	// GenerateTime is the time taken to build the model and render files
	GenerateTime time.Duration
	// SourceSize is the size of the source document in bytes
	SourceSize int64
	// GeneratedModels is the count of model types generated
	GeneratedModels int
	// GeneratedEnums is the count of enum types generated
	GeneratedEnums int
	// GeneratedOperations is the count of operations generated, excluding
	// overloads
	GeneratedOperations int
	// GeneratedClients is the count of clients generated
	GeneratedClients int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	source   []byte
	document ir.Document

	// Model options
	moduleName           string
	packageName          string
	modelsMode           model.ModelsMode
	azureArm             bool
	versionTolerant      bool
	clientSideValidation bool
	minimizePositional   bool
	padSuffix            string

	// Generator-only options
	moduleVersion   string
	strictMode      bool
	generateSamples bool
	generateTests   bool
	generateReadme  bool
	logger          ir.Logger

	// unknownFlags holds --key=value flags that matched no known option.
	// They are reported as warnings rather than rejected, so newer emitter
	// front ends can pass flags this version does not know yet.
	unknownFlags []string
}

// GenerateWithOptions generates a Go SDK from a code-model document using
// functional options. Exactly one input source must be supplied.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("widgets.yaml"),
//	    generator.WithModuleName("github.com/example/widgets"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	result := &GenerateResult{
		PackageName: cfg.packageName,
		ModuleName:  cfg.moduleName,
	}
	for _, flag := range cfg.unknownFlags {
		result.Issues = append(result.Issues, issues.Issue{
			Path:     "options",
			Field:    flag,
			Message:  "unknown option ignored",
			Severity: severity.SeverityWarning,
		})
	}

	loadStart := time.Now()
	doc, size, err := cfg.loadDocument()
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(loadStart)
	result.SourceSize = size

	genStart := time.Now()
	preResult, err := preprocess.Run(doc, preprocess.Options{
		PadSuffix: cfg.padSuffix,
		AzureArm:  cfg.azureArm,
		Logger:    cfg.logger,
	})
	if err != nil {
		return nil, err
	}
	result.Issues = append(result.Issues, preResult.Issues...)

	cm, err := model.New(doc, cfg.modelOptions(), cfg.logger)
	if err != nil {
		return nil, err
	}
	result.Namespace = cm.Namespace

	s := newSerializer(cm, cfg)
	files, err := s.serializeAll()
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Issues = append(result.Issues, cm.Issues()...)
	result.Issues = append(result.Issues, s.issues...)
	result.GenerateTime = time.Since(genStart)

	result.GeneratedModels = len(cm.ModelTypes())
	result.GeneratedEnums = len(cm.EnumTypes())
	result.GeneratedOperations = cm.OperationCount()
	result.GeneratedClients = len(cm.Clients)

	tally := issues.Tally(result.Issues)
	result.InfoCount = tally.Info
	result.WarningCount = tally.Warning
	result.CriticalCount = tally.Critical
	result.Success = tally.Critical == 0
	if cfg.strictMode && (tally.Warning > 0 || tally.Critical > 0) {
		result.Success = false
	}

	cfg.logger.Info("generation complete",
		"files", len(result.Files),
		"models", result.GeneratedModels,
		"operations", result.GeneratedOperations,
		"warnings", result.WarningCount,
		"critical", result.CriticalCount)
	return result, nil
}

// loadDocument resolves the configured input source to a document.
func (cfg *generateConfig) loadDocument() (ir.Document, int64, error) {
	if cfg.document != nil {
		return cfg.document, 0, nil
	}
	var loaded *ir.LoadResult
	var err error
	if cfg.filePath != nil {
		loaded, err = ir.LoadWithOptions(ir.WithFilePath(*cfg.filePath), ir.WithLogger(cfg.logger))
	} else {
		loaded, err = ir.LoadWithOptions(ir.WithBytes(cfg.source), ir.WithLogger(cfg.logger))
	}
	if err != nil {
		return nil, 0, err
	}
	return loaded.Document, loaded.SourceSize, nil
}

// modelOptions maps the resolved config onto the options the model graph
// consults. Strict mode promotes the unknown-type fallback to a fatal error.
func (cfg *generateConfig) modelOptions() *model.Options {
	return &model.Options{
		ModuleName:           cfg.moduleName,
		PackageName:          cfg.packageName,
		ModelsMode:           cfg.modelsMode,
		AzureArm:             cfg.azureArm,
		VersionTolerant:      cfg.versionTolerant,
		ClientSideValidation: cfg.clientSideValidation,
		MinimizePositional:   cfg.minimizePositional,
		PadSuffix:            cfg.padSuffix,
		StrictTypes:          cfg.strictMode,
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName:     "api",
		modelsMode:      model.ModelsModeDPG,
		padSuffix:       "Param",
		moduleVersion:   "0.1.0",
		generateReadme:  true,
		generateSamples: false,
		generateTests:   false,
		logger:          ir.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	if cfg.filePath != nil {
		sourceCount++
	}
	if cfg.source != nil {
		sourceCount++
	}
	if cfg.document != nil {
		sourceCount++
	}
	if sourceCount == 0 {
		return nil, &tsperrors.ConfigError{
			Option:  "input",
			Message: "must specify an input source (use WithFilePath, WithBytes, or WithDocument)",
		}
	}
	if sourceCount > 1 {
		return nil, &tsperrors.ConfigError{
			Option:  "input",
			Message: "must specify exactly one input source",
		}
	}

	// Cross-flag validation happens before any work is done.
	if cfg.clientSideValidation && cfg.versionTolerant {
		return nil, &tsperrors.ConfigError{
			Option:  "client-side-validation",
			Message: "incompatible with version-tolerant generation",
		}
	}
	switch cfg.modelsMode {
	case model.ModelsModeDPG, model.ModelsModeMsrest, model.ModelsModeNone:
	default:
		return nil, &tsperrors.ConfigError{
			Option:  "models-mode",
			Value:   string(cfg.modelsMode),
			Message: "must be one of dpg, msrest, none",
		}
	}

	return cfg, nil
}

// WithFilePath specifies a code-model YAML file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies in-memory code-model YAML as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		cfg.source = data
		return nil
	}
}

// WithDocument specifies an already-loaded document as the input source.
// The document is preprocessed in place.
func WithDocument(doc ir.Document) Option {
	return func(cfg *generateConfig) error {
		cfg.document = doc
		return nil
	}
}

// WithModuleName sets the Go module path of the generated SDK
func WithModuleName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return &tsperrors.ConfigError{Option: "module-name", Message: "cannot be empty"}
		}
		cfg.moduleName = name
		return nil
	}
}

// WithPackageName sets the Go package name of the generated SDK
// Default: "api"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return &tsperrors.ConfigError{Option: "package-name", Message: "cannot be empty"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithModelsMode selects the model emission flavor
// Default: dpg
func WithModelsMode(mode model.ModelsMode) Option {
	return func(cfg *generateConfig) error {
		cfg.modelsMode = mode
		return nil
	}
}

// WithModuleVersion sets the version stamped into the generated version file
// Default: "0.1.0"
func WithModuleVersion(version string) Option {
	return func(cfg *generateConfig) error {
		if version == "" {
			return &tsperrors.ConfigError{Option: "module-version", Message: "cannot be empty"}
		}
		cfg.moduleVersion = version
		return nil
	}
}

// WithAzureArm enables ARM conventions (default LRO polling strategy)
// Default: false
func WithAzureArm(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.azureArm = enabled
		return nil
	}
}

// WithVersionTolerant relaxes wire-format strictness in emitted code
// Default: false
func WithVersionTolerant(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.versionTolerant = enabled
		return nil
	}
}

// WithClientSideValidation emits parameter validation in operation methods.
// Incompatible with WithVersionTolerant.
// Default: false
func WithClientSideValidation(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.clientSideValidation = enabled
		return nil
	}
}

// WithMinimizePositional moves query and header parameters into the
// per-operation options struct instead of method arguments
// Default: false
func WithMinimizePositional(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.minimizePositional = enabled
		return nil
	}
}

// WithPadSuffix sets the suffix appended to identifiers that collide with a
// reserved word or start with a digit
// Default: "Param"
func WithPadSuffix(suffix string) Option {
	return func(cfg *generateConfig) error {
		cfg.padSuffix = suffix
		return nil
	}
}

// WithStrictMode causes generation to fail on warnings and promotes the
// unknown-type fallback to a fatal error
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithSamples enables best-effort sample generation under samples/
// Default: false
func WithSamples(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateSamples = enabled
		return nil
	}
}

// WithTests enables best-effort test scaffold generation
// Default: false
func WithTests(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateTests = enabled
		return nil
	}
}

// WithReadme enables README.md generation in the output directory
// Default: true
func WithReadme(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateReadme = enabled
		return nil
	}
}

// WithLogger sets the logger for generation diagnostics
// Default: no-op
func WithLogger(logger ir.Logger) Option {
	return func(cfg *generateConfig) error {
		if logger == nil {
			return &tsperrors.ConfigError{Option: "logger", Message: "cannot be nil"}
		}
		cfg.logger = logger
		return nil
	}
}

// WithFlag sets an option from a raw --key=value pair, coercing booleans
// from their string form. Known keys map onto the typed options above;
// unknown keys are kept and reported as warnings on the result, never
// rejected.
func WithFlag(key, value string) Option {
	return func(cfg *generateConfig) error {
		boolFlag := func(target *bool) error {
			v, err := strconv.ParseBool(value)
			if err != nil {
				return &tsperrors.ConfigError{Option: key, Value: value, Message: "expected a boolean"}
			}
			*target = v
			return nil
		}
		switch key {
		case "module-name":
			return WithModuleName(value)(cfg)
		case "package-name":
			return WithPackageName(value)(cfg)
		case "models-mode":
			return WithModelsMode(model.ModelsMode(value))(cfg)
		case "module-version":
			return WithModuleVersion(value)(cfg)
		case "pad-suffix":
			return WithPadSuffix(value)(cfg)
		case "azure-arm":
			return boolFlag(&cfg.azureArm)
		case "version-tolerant":
			return boolFlag(&cfg.versionTolerant)
		case "client-side-validation":
			return boolFlag(&cfg.clientSideValidation)
		case "minimize-positional":
			return boolFlag(&cfg.minimizePositional)
		case "strict":
			return boolFlag(&cfg.strictMode)
		case "samples":
			return boolFlag(&cfg.generateSamples)
		case "tests":
			return boolFlag(&cfg.generateTests)
		case "readme":
			return boolFlag(&cfg.generateReadme)
		default:
			cfg.unknownFlags = append(cfg.unknownFlags, key)
			return nil
		}
	}
}
