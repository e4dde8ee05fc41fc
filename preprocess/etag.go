package preprocess

import (
	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/ir"
)

// Conditional-request header pair. Declaring only one of the two is almost
// always an upstream omission; generated clients expose both so callers can
// express either precondition.
const (
	headerIfMatch     = "If-Match"
	headerIfNoneMatch = "If-None-Match"
)

// ensureEtagPair synthesizes the missing sibling when an operation declares
// exactly one of If-Match / If-None-Match.
func (n *normalizer) ensureEtagPair(op map[string]any) {
	var hasIfMatch, hasIfNoneMatch bool
	for _, param := range ir.Maps(op, "parameters") {
		if ir.String(param, "location") != "header" {
			continue
		}
		switch ir.String(param, "wireName") {
		case headerIfMatch:
			hasIfMatch = true
		case headerIfNoneMatch:
			hasIfNoneMatch = true
		}
	}
	if hasIfMatch == hasIfNoneMatch {
		return
	}

	missing := headerIfMatch
	name := "ifMatch"
	if hasIfMatch {
		missing = headerIfNoneMatch
		name = "ifNoneMatch"
	}

	params := ir.Slice(op, "parameters")
	params = append(params, map[string]any{
		"name":     name,
		"wireName": missing,
		"location": "header",
		"optional": true,
		"type":     map[string]any{"type": "etag"},
	})
	op["parameters"] = params
	n.result.SynthesizedParameters++
	n.addIssue(issues.Issue{
		Path:     "operations." + ir.String(op, "name"),
		Message:  "synthesized " + missing + " header parameter",
		Severity: severity.SeverityInfo,
		Context:  "conditional-request headers are always generated as a pair",
	})
}
