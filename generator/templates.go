package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-openapi/inflect"
	"golang.org/x/tools/imports"

	"github.com/erraggy/tspgen/internal/naming"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	// String manipulation
	"quote":     strconv.Quote,
	"join":      strings.Join,
	"upper":     strings.ToUpper,
	"lower":     strings.ToLower,
	"hasSuffix": strings.HasSuffix,
	"hasPrefix": strings.HasPrefix,
	"pascal":    naming.ToPascalCase,
	"camel":     naming.ToCamelCase,
	"snake":     naming.ToSnakeCase,

	// Custom helpers
	"cleanDesc":   cleanDescription,
	"singularize": inflect.Singularize,
	"imports":     renderImports,
	"literal":     goLiteral,
	"placeholder": placeholderValue,
}

// goLiteral renders a YAML scalar as a Go literal.
func goLiteral(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}

// placeholderValue picks a compiling placeholder expression for a sample
// argument of the given Go type. Named types are qualified with the
// generated package, since samples live in their own package.
func placeholderValue(goType, pkg string) string {
	switch {
	case goType == "string":
		return `"<value>"`
	case goType == "bool":
		return "false"
	case goType == "int32", goType == "int64", goType == "float32", goType == "float64":
		return "0"
	case goType == "time.Time":
		return "time.Time{}"
	case goType == "time.Duration":
		return "0"
	case goType == "any", goType == "[]byte",
		strings.HasPrefix(goType, "[]"), strings.HasPrefix(goType, "map["),
		strings.HasPrefix(goType, "*"), strings.Contains(goType, "."):
		return "nil"
	default:
		return pkg + "." + goType + "{}"
	}
}

// cleanDescription collapses a multi-line description into one doc-comment
// friendly line.
func cleanDescription(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// executeTemplate executes a template by name and returns the rendered Go
// source, formatted with goimports-equivalent processing. When formatting
// fails the unformatted bytes are returned with formatted=false; callers
// record a warning and keep the output.
func executeTemplate(name string, data any) (out []byte, formatted bool, err error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, false, err
	}

	fixed, err := imports.Process("generated.go", buf.Bytes(), nil)
	if err != nil {
		// Unformatted output is acceptable; generation carries on.
		return buf.Bytes(), false, nil
	}
	return fixed, true, nil
}

// executeTextTemplate executes a template for a non-Go artifact, with no
// formatting pass.
func executeTextTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
