package preprocess

import (
	"strings"

	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
)

// synthesizeOverloads disambiguates operation bodies. A body parameter that
// legally accepts both structured and raw payloads gets a combined
// pseudo-type listing each variant, and the operation gets one overload per
// variant beyond those already declared. Overloads share the original's
// response and exception nodes by identity, so every overload resolves to
// the same underlying type instances.
func (n *normalizer) synthesizeOverloads(op map[string]any) error {
	body := bodyParameter(op)
	if body == nil {
		return nil
	}

	typeNode := ir.Map(body, "type")
	if typeNode == nil {
		return tsperrors.MissingKey("operations."+ir.String(op, "name")+".parameters."+ir.String(body, "name"), "type")
	}

	// An ambiguous body (JSON plus a binary content type) is first widened
	// to a combined pseudo-type.
	if ir.String(typeNode, "type") != "combined" && isAmbiguousBody(body) {
		typeNode = map[string]any{
			"type":  "combined",
			"types": []any{typeNode, map[string]any{"type": "binary"}},
		}
		body["type"] = typeNode
		n.addIssue(issues.Issue{
			Path:     "operations." + ir.String(op, "name"),
			Message:  "widened ambiguous body to a combined type",
			Severity: severity.SeverityInfo,
		})
	}

	if ir.String(typeNode, "type") != "combined" {
		return nil
	}

	variants := ir.Maps(typeNode, "types")
	existing := ir.Slice(op, "overloads")

	// k variants with j pre-existing overloads yields exactly k-j new ones.
	for i := len(existing); i < len(variants); i++ {
		overload := map[string]any{
			"name":       ir.String(op, "name"),
			"doc":        ir.String(op, "doc"),
			"method":     ir.String(op, "method"),
			"path":       ir.String(op, "path"),
			"isOverload": true,
			"parameters": overloadParameters(op, body, variants[i]),
			// Shared by identity with the original, not copied: every
			// overload must resolve to the same response/exception nodes.
			"responses":  op["responses"],
			"exceptions": op["exceptions"],
		}
		existing = append(existing, overload)
		n.result.SynthesizedOverloads++
	}
	op["overloads"] = existing
	return nil
}

// bodyParameter returns the operation's body parameter node, or nil.
func bodyParameter(op map[string]any) map[string]any {
	for _, param := range ir.Maps(op, "parameters") {
		if ir.String(param, "location") == "body" {
			return param
		}
	}
	return nil
}

// isAmbiguousBody reports whether the body parameter declares both a JSON
// and a binary content type.
func isAmbiguousBody(body map[string]any) bool {
	var hasJSON, hasBinary bool
	for _, ct := range ir.Slice(body, "contentTypes") {
		s, ok := ct.(string)
		if !ok {
			continue
		}
		switch {
		case strings.Contains(s, "json"):
			hasJSON = true
		case s == "application/octet-stream" || strings.HasPrefix(s, "image/") || strings.HasPrefix(s, "audio/"):
			hasBinary = true
		}
	}
	return hasJSON && hasBinary
}

// overloadParameters copies the operation's parameter list, replacing the
// body parameter with one typed as the given variant. Non-body parameters
// are shared by identity.
func overloadParameters(op, body, variant map[string]any) []any {
	var params []any
	for _, param := range ir.Maps(op, "parameters") {
		if ir.String(param, "location") != "body" {
			params = append(params, param)
			continue
		}
		params = append(params, map[string]any{
			"name":     ir.String(body, "name"),
			"wireName": ir.String(body, "wireName"),
			"location": "body",
			"optional": ir.Bool(body, "optional"),
			"doc":      ir.String(body, "doc"),
			"type":     variant,
		})
	}
	return params
}
