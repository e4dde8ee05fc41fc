package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},
		{"info level", SeverityInfo, "info"},
		{"critical level", SeverityCritical, "critical"},

		// Edge cases: invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}
