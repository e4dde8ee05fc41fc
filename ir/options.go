package ir

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/tspgen/tsperrors"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger     Logger
	sourceName *string // Override SourcePath in the result
}

// LoadResult contains the loaded document plus source metadata.
type LoadResult struct {
	// Document is the decoded code-model tree
	Document Document
	// SourcePath identifies where the document came from
	SourcePath string
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// WithFilePath loads the code model from a file on disk.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader loads the code model from an io.Reader.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithBytes loads the code model from an in-memory byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger used during loading. Defaults to NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *loadConfig) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithSourceName overrides the SourcePath reported in the result.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// LoadWithOptions loads a code-model document using functional options.
//
// Example:
//
//	result, err := ir.LoadWithOptions(ir.WithFilePath("tspCodeModel.yaml"))
func LoadWithOptions(opts ...Option) (*LoadResult, error) {
	cfg := &loadConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("ir: invalid options: %w", err)
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.bytes != nil {
		sources++
	}
	if sources != 1 {
		return nil, fmt.Errorf("ir: exactly one input source must be specified, got %d", sources)
	}

	var (
		data       []byte
		sourcePath string
		err        error
	)
	switch {
	case cfg.filePath != nil:
		sourcePath = *cfg.filePath
		data, err = os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, &tsperrors.ParseError{Path: sourcePath, Message: "cannot read code model", Cause: err}
		}
	case cfg.reader != nil:
		sourcePath = "<reader>"
		data, err = io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &tsperrors.ParseError{Path: sourcePath, Message: "cannot read code model", Cause: err}
		}
	default:
		sourcePath = "<bytes>"
		data = cfg.bytes
	}

	cfg.logger.Debug("loading code model", "source", sourcePath, "bytes", len(data))

	tree, err := decodeBytes(data)
	if err != nil {
		return nil, &tsperrors.ParseError{Path: sourcePath, Message: "invalid YAML", Cause: err}
	}

	doc := Document(tree)
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		sourcePath = *cfg.sourceName
	}

	cfg.logger.Debug("loaded code model",
		"namespace", doc.Namespace(),
		"clients", len(doc.Clients()),
		"types", len(doc.Types()))

	return &LoadResult{
		Document:   doc,
		SourcePath: sourcePath,
		SourceSize: int64(len(data)),
	}, nil
}
