package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/tspgen/internal/naming"
	"github.com/erraggy/tspgen/model"
)

// fileData is the header every template shares.
type fileData struct {
	// Package is the Go package name of the emitted file.
	Package string
	// Imports is the merged import side table for the file.
	Imports *model.FileImport
}

// clientData describes one client for the client template.
type clientData struct {
	Name        string
	Description string
	OptionsType string
	// Credential is the client credential parameter, or nil.
	Credential *credentialData
	// Groups are accessors to the client's sub-clients.
	Groups []groupAccessor
}

type credentialData struct {
	ParamName string
	GoType    string
	// Zero is the placeholder expression samples and test scaffolds pass.
	Zero string
}

func newCredentialData(p *model.Parameter) *credentialData {
	d := &credentialData{ParamName: p.ClientName, GoType: p.GoType(), Zero: "nil"}
	if d.GoType == "sdkcore.KeyCredential" {
		d.Zero = "sdkcore.KeyCredential{}"
	}
	return d
}

type groupAccessor struct {
	// Method is the accessor method name on the parent client.
	Method string
	// ClientType is the sub-client type the accessor returns.
	ClientType string
}

// clientFileData feeds the client template.
type clientFileData struct {
	fileData
	Clients []clientData
}

// optionFieldData is one field on an options struct.
type optionFieldData struct {
	Name        string
	GoType      string
	Description string
	// Required fields render unwrapped; optional non-nilable fields render
	// as pointers.
	Required bool
}

// optionsStructData is one options struct.
type optionsStructData struct {
	Name        string
	Description string
	Fields      []optionFieldData
}

// optionsFileData feeds the options template.
type optionsFileData struct {
	fileData
	Structs []optionsStructData
}

// modelsFileData feeds the models template.
type modelsFileData struct {
	fileData
	Msrest bool
	Models []*model.ModelType
}

// enumsFileData feeds the enums template.
type enumsFileData struct {
	fileData
	Enums []*model.EnumType
}

// argData is one positional method argument.
type argData struct {
	Name   string
	GoType string
}

// paramData is one wire parameter of a request builder.
type paramData struct {
	// WireName is the serialized name.
	WireName string
	// ValueExpr is the Go expression producing the value when Required.
	ValueExpr string
	// Field is the options-struct field holding the value, or "".
	Field string
	// DefaultLiteral is a Go literal used when the caller supplies nothing,
	// or "".
	DefaultLiteral string
	// Required means ValueExpr is always available.
	Required bool
	// Deref marks an optional field that is pointer-wrapped on the options
	// struct.
	Deref bool
}

// operationData describes one operation for the operations and request
// builder templates.
type operationData struct {
	ClientType  string
	Name        string
	Description string
	Method      string
	Path        string
	Kind        model.OperationKind

	// Args are the positional arguments between ctx and options.
	Args []argData
	// OptionsType is the per-operation options struct type.
	OptionsType string
	// BuilderName is the request builder method name.
	BuilderName string

	// ResponseType is the per-operation response struct type.
	ResponseType string
	// BodyField/BodyType describe the response payload field, or "" for
	// empty responses.
	BodyField string
	BodyType  string
	// SuccessCodes is the comma-joined success status list, or "".
	SuccessCodes string

	// Paging fields (paging and lropaging kinds).
	PagerName     string
	ItemsField    string
	ItemsWire     string
	ItemsType     string
	NextLinkField string
	NextLinkWire  string
	ItemVar       string

	// LRO fields (lro and lropaging kinds).
	PollerName    string
	FinalStateVia string

	// Request builder buckets.
	PathParams   []paramData
	QueryParams  []paramData
	HeaderParams []paramData
	// Body is the body argument expression, or "".
	Body string
	// BodyOptional guards body marshalling behind a nil check.
	BodyOptional bool
	// SetJSONContentType emits a default Content-Type header when the
	// operation has a body and no explicit Content-Type parameter.
	SetJSONContentType bool

	// OverloadDocs lists accepted body variants for ambiguous bodies.
	OverloadDocs []string
}

// operationsFileData feeds the operations and request builder templates.
type operationsFileData struct {
	fileData
	ClientType string
	Operations []*operationData
}

// methodVerb returns the http.Method* constant name for an HTTP verb.
func methodVerb(verb string) string {
	switch strings.ToUpper(verb) {
	case "GET":
		return "http.MethodGet"
	case "PUT":
		return "http.MethodPut"
	case "POST":
		return "http.MethodPost"
	case "DELETE":
		return "http.MethodDelete"
	case "PATCH":
		return "http.MethodPatch"
	case "HEAD":
		return "http.MethodHead"
	case "OPTIONS":
		return "http.MethodOptions"
	default:
		return strconv.Quote(strings.ToUpper(verb))
	}
}

// optionFieldType renders an options-struct field type: optional fields of
// non-nilable types are pointer-wrapped.
func optionFieldType(goType string, required bool) string {
	if required || goType == "any" ||
		strings.HasPrefix(goType, "[]") || strings.HasPrefix(goType, "map[") ||
		strings.HasPrefix(goType, "*") {
		return goType
	}
	return "*" + goType
}

// buildOperationData classifies the operation's parameters into positional
// arguments, options fields, and wire buckets, and resolves the response
// shape. Conventions are re-derived here on every render because they depend
// on overload context.
func (s *serializer) buildOperationData(clientType string, op *model.Operation) (*operationData, []optionFieldData) {
	d := &operationData{
		ClientType:  clientType,
		Name:        op.Name,
		Description: op.Description,
		Method:      methodVerb(op.Method),
		Path:        op.Path,
		Kind:        op.Kind(),
		OptionsType: op.Name + "Options",
		BuilderName: "build" + op.Name + "Request",
	}
	d.ResponseType = op.Name + "Response"

	var optionFields []optionFieldData
	for _, p := range op.Parameters {
		if p.Location == model.LocationClient {
			continue
		}
		conv := p.Convention(op.IsOverload)

		wire := paramData{WireName: p.WireName}
		switch conv {
		case model.ConventionArgument:
			d.Args = append(d.Args, argData{Name: p.ClientName, GoType: p.GoType()})
			wire.ValueExpr = p.ClientName
			wire.Required = true
		case model.ConventionRequiredOption, model.ConventionOption:
			field := s.titler.String(p.ClientName)
			fieldType := optionFieldType(p.GoType(), conv == model.ConventionRequiredOption)
			optionFields = append(optionFields, optionFieldData{
				Name:        field,
				GoType:      fieldType,
				Description: p.Description,
				Required:    conv == model.ConventionRequiredOption,
			})
			wire.Field = field
			wire.Deref = strings.HasPrefix(fieldType, "*")
			if conv == model.ConventionRequiredOption {
				wire.ValueExpr = "options." + field
				wire.Required = true
			}
			if c, ok := p.Type.(*model.ConstantType); ok {
				wire.DefaultLiteral = c.Literal()
			} else if s, ok := p.ClientDefaultValue.(string); ok {
				wire.DefaultLiteral = strconv.Quote(s)
			}
		}

		switch p.Location {
		case model.LocationPath:
			d.PathParams = append(d.PathParams, wire)
		case model.LocationQuery:
			d.QueryParams = append(d.QueryParams, wire)
		case model.LocationHeader:
			d.HeaderParams = append(d.HeaderParams, wire)
		case model.LocationBody:
			d.BodyOptional = !wire.Required
			if wire.Required {
				d.Body = wire.ValueExpr
			} else if wire.Field != "" {
				d.Body = "options." + wire.Field
			}
		}
	}
	if d.Body != "" {
		d.SetJSONContentType = true
		for _, h := range d.HeaderParams {
			if h.WireName == "Content-Type" {
				d.SetJSONContentType = false
			}
		}
	}

	var codes []string
	for _, r := range op.Responses {
		for _, c := range r.StatusCodes {
			codes = append(codes, fmt.Sprintf("%d", c))
		}
	}
	d.SuccessCodes = strings.Join(codes, ", ")
	if body := op.ResponseDocType(); body != "" {
		d.BodyField = "Value"
		for _, r := range op.Responses {
			if r.Type != nil {
				d.BodyType = r.GoType()
				break
			}
		}
	}

	if op.Paging != nil {
		d.PagerName = "New" + op.Name + "Pager"
		d.ItemsField = s.titler.String(op.Paging.ItemName)
		d.ItemsWire = op.Paging.ItemName
		d.ItemsType = "[]any"
		if op.Paging.ItemType != nil {
			d.ItemsType = "[]" + op.Paging.ItemType.GoType()
		}
		if op.Paging.NextLinkName != "" {
			d.NextLinkField = s.titler.String(op.Paging.NextLinkName)
			d.NextLinkWire = op.Paging.NextLinkName
		}
		d.ItemVar = naming.ToCamelCase(singularItem(op.Paging.ItemName))
		// The paged payload replaces the plain body field.
		d.BodyField = ""
		d.BodyType = ""
	}
	if op.LRO != nil {
		d.PollerName = "Begin" + op.Name
		d.FinalStateVia = op.LRO.FinalStateVia
	}

	for _, overload := range op.Overloads {
		if body := overload.BodyParameter(); body != nil {
			d.OverloadDocs = append(d.OverloadDocs, body.Type.DocType())
		}
	}

	return d, optionFields
}
