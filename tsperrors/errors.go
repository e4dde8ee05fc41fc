package tsperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a code-model parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates the code model violates a structural invariant.
	ErrSchema = errors.New("schema error")

	// ErrLookup indicates an identity lookup found no target.
	ErrLookup = errors.New("lookup error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse the code-model document.
// This includes YAML deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaError represents a code-model integrity violation: the YAML emitted
// by the upstream compiler broke an invariant the model build assumes.
// These are fatal and indicate bad upstream input, not a recoverable
// runtime condition.
type SchemaError struct {
	// Path is the dotted path to the offending node, when known
	Path string
	// Key is the missing or invalid key, when the violation is key-level
	Key string
	// Message describes the violation
	Message string
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" (key %q)", e.Key)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// MissingKey returns a SchemaError for a required key absent from node.
func MissingKey(path, key string) *SchemaError {
	return &SchemaError{Path: path, Key: key, Message: "required key is missing"}
}

// LookupError represents an identity lookup that found no target, such as a
// request builder or LRO initial operation referenced by a node that was
// never constructed. With well-formed input this never happens.
type LookupError struct {
	// Kind names what was being looked up (e.g., "request builder")
	Kind string
	// Context names the scope the lookup ran in (e.g., an operation group)
	Context string
	// Message provides additional detail
	Message string
}

// Error returns a human-readable error message.
func (e *LookupError) Error() string {
	msg := "lookup error"
	if e.Kind != "" {
		msg += ": no " + e.Kind + " found"
	}
	if e.Context != "" {
		msg += " in " + e.Context
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// ConfigError represents invalid or contradictory generator options.
// These are raised before any generation work begins.
type ConfigError struct {
	// Option is the offending option name
	Option string
	// Value is the offending value, if any
	Value any
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += fmt.Sprintf(": option %q", e.Option)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" = %v", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
