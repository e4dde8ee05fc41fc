// Package commands provides CLI command handlers for tspgen.
package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/tspgen/ir"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// FormatBytes renders a byte count in a human-friendly unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// debugLogger returns an ir.Logger backed by a text slog handler at debug
// level when enabled, or a no-op logger otherwise.
func debugLogger(enabled bool) ir.Logger {
	if !enabled {
		return ir.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return ir.NewSlogAdapter(slog.New(handler))
}
