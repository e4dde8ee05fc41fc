package mcpserver

import (
	"fmt"

	"github.com/erraggy/tspgen/generator"
	"github.com/erraggy/tspgen/ir"
)

// modelInput represents the two ways a code-model document can be provided
// to a tool. Exactly one of File or Content must be set.
type modelInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a code-model YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline code-model document content (YAML)"`
}

// validate checks that exactly one source is set.
func (m modelInput) validate() error {
	switch {
	case m.File == "" && m.Content == "":
		return fmt.Errorf("one of file or content is required")
	case m.File != "" && m.Content != "":
		return fmt.Errorf("only one of file or content may be set")
	}
	return nil
}

// generatorOption maps the input onto the matching generator source option.
func (m modelInput) generatorOption() (generator.Option, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.File != "" {
		return generator.WithFilePath(m.File), nil
	}
	return generator.WithBytes([]byte(m.Content)), nil
}

// load decodes the document for tools that walk the model directly.
func (m modelInput) load() (*ir.LoadResult, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.File != "" {
		return ir.LoadWithOptions(ir.WithFilePath(m.File))
	}
	return ir.LoadWithOptions(ir.WithBytes([]byte(m.Content)), ir.WithSourceName("inline"))
}
