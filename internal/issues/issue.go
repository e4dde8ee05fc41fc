// Package issues provides a unified issue type for preprocessing and
// generation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/tspgen/internal/severity"
)

// Issue represents a single problem found during preprocessing or generation.
type Issue struct {
	// Path is the dotted path to the problematic node
	// (e.g., "clients.WidgetClient.operationGroups.widgets.operations.list")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
	// Artifact names the generated file the issue relates to, when the issue
	// was raised by a serializer rather than the model build.
	Artifact string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.Artifact != "" {
		path = fmt.Sprintf("%s [%s]", path, i.Artifact)
	}

	result := fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Count tallies issues by severity.
type Count struct {
	Info     int
	Warning  int
	Error    int
	Critical int
}

// Tally returns per-severity counts for the given issues.
func Tally(items []Issue) Count {
	var c Count
	for _, i := range items {
		switch i.Severity {
		case severity.SeverityInfo:
			c.Info++
		case severity.SeverityWarning:
			c.Warning++
		case severity.SeverityError:
			c.Error++
		case severity.SeverityCritical:
			c.Critical++
		}
	}
	return c
}
