package model

import "github.com/erraggy/tspgen/ir"

// ParameterLocation is a parameter's binding location on the wire.
type ParameterLocation string

const (
	// LocationPath binds into the request path.
	LocationPath ParameterLocation = "path"
	// LocationQuery binds into the query string.
	LocationQuery ParameterLocation = "query"
	// LocationHeader binds into a request header.
	LocationHeader ParameterLocation = "header"
	// LocationBody binds as the request body.
	LocationBody ParameterLocation = "body"
	// LocationClient binds once at client construction.
	LocationClient ParameterLocation = "client"
)

// Convention is a parameter's calling convention in the generated surface.
type Convention int

const (
	// ConventionArgument renders as a method argument.
	ConventionArgument Convention = iota
	// ConventionRequiredOption renders as a required field on the options
	// struct.
	ConventionRequiredOption
	// ConventionOption renders as an optional field on the options struct.
	ConventionOption
)

// String returns the convention name.
func (c Convention) String() string {
	switch c {
	case ConventionArgument:
		return "argument"
	case ConventionRequiredOption:
		return "required-option"
	case ConventionOption:
		return "option"
	default:
		return "unknown"
	}
}

// Parameter is one operation or client parameter.
type Parameter struct {
	cm   *CodeModel
	yaml map[string]any
	// ClientName is the Go-facing name.
	ClientName string
	// WireName is the serialized name.
	WireName string
	// Location is the binding location.
	Location ParameterLocation
	// Type is the parameter type.
	Type BaseType
	// Optional marks a parameter the caller may omit.
	Optional bool
	// IsAPIVersion marks the service api-version parameter.
	IsAPIVersion bool
	// ClientDefaultValue is the default applied when the caller omits the
	// parameter, if any.
	ClientDefaultValue any
	// Description is the doc comment text, if any.
	Description string
}

func newParameter(cm *CodeModel, node map[string]any) (*Parameter, error) {
	t, err := BuildType(cm, ir.Map(node, "type"))
	if err != nil {
		return nil, err
	}
	return &Parameter{
		cm:                 cm,
		yaml:               node,
		ClientName:         ir.String(node, "name"),
		WireName:           ir.String(node, "wireName"),
		Location:           ParameterLocation(ir.String(node, "location")),
		Type:               t,
		Optional:           ir.Bool(node, "optional"),
		IsAPIVersion:       ir.Bool(node, "isApiVersion"),
		ClientDefaultValue: node["clientDefaultValue"],
		Description:        ir.String(node, "doc"),
	}, nil
}

// YAML returns the originating descriptor node.
func (p *Parameter) YAML() map[string]any { return p.yaml }

// IsContentType reports whether this is the Content-Type header parameter.
func (p *Parameter) IsContentType() bool {
	return p.Location == LocationHeader && p.WireName == "Content-Type"
}

// IsConstant reports whether the parameter's type pins a single value.
func (p *Parameter) IsConstant() bool {
	_, ok := p.Type.(*ConstantType)
	return ok
}

// GoType returns the parameter's Go type. The api-version parameter is
// always a plain string regardless of its declared type.
func (p *Parameter) GoType() string {
	if p.IsAPIVersion {
		return "string"
	}
	return p.Type.GoType()
}

// Imports returns the imports GoType references.
func (p *Parameter) Imports() *FileImport {
	if p.IsAPIVersion {
		return NewFileImport()
	}
	return p.Type.Imports()
}

// Convention classifies the parameter's calling convention. The rules apply
// in order; the first match wins:
//
//  1. api-version parameters are optional (they carry a service default)
//  2. constant non-content-type parameters are optional
//  3. content-type parameters are required options inside an overload and
//     optional otherwise
//  4. optional body parameters are optional; only a required body is
//     positional
//  5. query and header parameters are required options when positional
//     minimization is on
//  6. everything else is a method argument
//
// The result depends on call-site context (overload membership), so it is
// re-derived on every call and never cached.
func (p *Parameter) Convention(inOverload bool) Convention {
	switch {
	case p.IsAPIVersion:
		return ConventionOption
	case p.IsConstant() && !p.IsContentType():
		return ConventionOption
	case p.IsContentType():
		if inOverload {
			return ConventionRequiredOption
		}
		return ConventionOption
	case p.Location == LocationBody && p.Optional:
		return ConventionOption
	case (p.Location == LocationQuery || p.Location == LocationHeader) && p.cm.Options.MinimizePositional:
		return ConventionRequiredOption
	default:
		return ConventionArgument
	}
}
