package model

// RequestBuilder prepares the raw HTTP request for one operation. Builders
// are owned by the client and keyed by the operation's node identity, so an
// operation and its overloads share one builder.
type RequestBuilder struct {
	// Operation is the operation this builder serves.
	Operation *Operation
	// Name is the generated builder function name.
	Name string
}

// Method returns the HTTP verb.
func (b *RequestBuilder) Method() string { return b.Operation.Method }

// Path returns the request path template.
func (b *RequestBuilder) Path() string { return b.Operation.Path }

// Imports returns the imports the rendered builder references.
func (b *RequestBuilder) Imports() *FileImport {
	fi := NewFileImport()
	fi.Add(ImportKindStdlib, "net/http")
	fi.Add(ImportKindStdlib, "net/url")
	fi.Add(ImportKindStdlib, "strings")
	for _, p := range b.Operation.Parameters {
		fi.Merge(p.Imports())
	}
	return fi
}
