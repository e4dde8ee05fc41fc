package model

import "github.com/erraggy/tspgen/ir"

// Response is one declared operation response or exception.
type Response struct {
	cm   *CodeModel
	yaml map[string]any
	// StatusCodes are the HTTP status codes this response covers.
	StatusCodes []int
	// Type is the body type, or nil for empty responses.
	Type BaseType
	// Description is the doc comment text, if any.
	Description string
}

func newResponse(cm *CodeModel, node map[string]any) (*Response, error) {
	r := &Response{cm: cm, yaml: node, Description: ir.String(node, "doc")}
	r.StatusCodes = ir.Ints(node, "statusCodes")
	if typeNode := ir.Map(node, "type"); typeNode != nil {
		t, err := BuildType(cm, typeNode)
		if err != nil {
			return nil, err
		}
		r.Type = t
	}
	return r, nil
}

// YAML returns the originating descriptor node.
func (r *Response) YAML() map[string]any { return r.yaml }

// GoType returns the response body's Go type, or "" for empty responses.
func (r *Response) GoType() string {
	if r.Type == nil {
		return ""
	}
	return r.Type.GoType()
}

// DocType returns the response body's documentation type with no optional
// wrapping: a required string body documents as string, never *string.
func (r *Response) DocType() string {
	if r.Type == nil {
		return ""
	}
	return r.Type.DocType()
}

// Imports returns the imports the response type references.
func (r *Response) Imports() *FileImport {
	if r.Type == nil {
		return NewFileImport()
	}
	return r.Type.Imports()
}
