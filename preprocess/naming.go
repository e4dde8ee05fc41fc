package preprocess

import (
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/tspgen/internal/naming"
	"github.com/erraggy/tspgen/ir"
)

// titleCaser capitalizes the leading rune without lowering the rest, so
// acronym-bearing names like apiVersion keep their interior casing.
var titleCaser = cases.Title(language.English, cases.NoLower)

// reservedOverrides maps identifiers with a conventional replacement.
// Anything reserved but not listed here falls through to pad-suffixing.
var reservedOverrides = map[string]string{
	"func":      "fn",
	"interface": "iface",
	"map":       "mapping",
	"range":     "rangeValue",
	"select":    "selection",
}

// exported converts a source identifier to an exported Go name. Case
// conversion runs before sanitization so hyphens and dots still act as
// word separators.
func (n *normalizer) exported(s string) string {
	return titleCaser.String(naming.Identifier(naming.ToCamelCase(s), "X"))
}

// unexported converts a source identifier to an unexported Go name,
// applying the override table and the pad suffix for reserved words and
// digit-leading candidates.
func (n *normalizer) unexported(s string) string {
	candidate := naming.Identifier(naming.ToCamelCase(s), "param")
	if override, ok := reservedOverrides[candidate]; ok {
		return override
	}
	return naming.Pad(candidate, n.opts.PadSuffix)
}

// normalizeTypeNames rewrites model, enum, and property identifiers onto Go
// conventions. Wire names are never touched.
func (n *normalizer) normalizeTypeNames(doc ir.Document) {
	for _, typeNode := range doc.Types() {
		n.normalizeTypeNode(typeNode)
	}
}

// normalizeTypeNode walks one type node and its member types. Aliases decode
// to shared map instances, so the walk is guarded by node identity: a model
// whose property type is (directly or transitively) itself is visited once.
func (n *normalizer) normalizeTypeNode(node map[string]any) {
	handle := reflect.ValueOf(node).Pointer()
	if n.seenTypes[handle] {
		return
	}
	n.seenTypes[handle] = true

	switch ir.String(node, "type") {
	case "model":
		node["name"] = n.exported(ir.String(node, "name"))
		for _, prop := range ir.Maps(node, "properties") {
			prop["name"] = n.exported(ir.String(prop, "name"))
			if inner := ir.Map(prop, "type"); inner != nil {
				n.normalizeTypeNode(inner)
			}
		}
		for _, parent := range ir.Maps(node, "parents") {
			n.normalizeTypeNode(parent)
		}
	case "enum":
		node["name"] = n.exported(ir.String(node, "name"))
		for _, value := range ir.Maps(node, "values") {
			value["name"] = n.exported(ir.String(value, "name"))
		}
	case "list", "dict":
		if inner := ir.Map(node, "elementType"); inner != nil {
			n.normalizeTypeNode(inner)
		}
	case "combined":
		for _, member := range ir.Maps(node, "types") {
			n.normalizeTypeNode(member)
		}
	}
}

// normalizeClientNames rewrites the client and group identifiers.
func (n *normalizer) normalizeClientNames(client map[string]any) {
	client["name"] = n.exported(ir.String(client, "name"))
	for _, param := range ir.Maps(client, "parameters") {
		param["name"] = n.unexported(ir.String(param, "name"))
	}
	for _, group := range ir.Maps(client, "operationGroups") {
		group["name"] = n.exported(ir.String(group, "name"))
		if prop := ir.String(group, "propertyName"); prop != "" {
			group["propertyName"] = n.unexported(prop)
		}
	}
}

// normalizeOperationNames rewrites the operation and parameter identifiers.
// Generated methods are exported; parameters are unexported and padded.
func (n *normalizer) normalizeOperationNames(op map[string]any) {
	op["name"] = n.exported(ir.String(op, "name"))
	for _, param := range ir.Maps(op, "parameters") {
		param["name"] = n.unexported(ir.String(param, "name"))
		if inner := ir.Map(param, "type"); inner != nil {
			n.normalizeTypeNode(inner)
		}
	}
	for _, resp := range ir.Maps(op, "responses") {
		if inner := ir.Map(resp, "type"); inner != nil {
			n.normalizeTypeNode(inner)
		}
	}
	for _, exc := range ir.Maps(op, "exceptions") {
		if inner := ir.Map(exc, "type"); inner != nil {
			n.normalizeTypeNode(inner)
		}
	}
}
