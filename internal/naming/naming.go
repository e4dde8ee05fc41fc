// Package naming provides shared string case conversion utilities for
// mapping code-model identifiers onto Go identifiers.
package naming

import (
	"strings"
	"unicode"
)

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Only actual keywords are listed, not predeclared identifiers
// like "error", because those can be shadowed and are commonly used as
// generated names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// IsReserved reports whether name is a Go keyword.
func IsReserved(name string) bool {
	return goReservedWords[name]
}

// Pad appends suffix to name when name is a Go keyword or starts with a
// digit, otherwise returns name unchanged. Example: Pad("type", "Param")
// returns "typeParam".
func Pad(name, suffix string) string {
	if name == "" {
		return name
	}
	if goReservedWords[name] || unicode.IsDigit(rune(name[0])) {
		return name + suffix
	}
	return name
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization
// of the next letter, as does a lower-to-upper transition in the source.
// Example: "user_profile" -> "UserProfile"
// Example: "apiVersion" -> "ApiVersion"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts a string to snake_case.
// Uppercase letters are prefixed with underscore and lowercased.
// Existing separators (hyphen, dot, slash) are converted to underscores.
// Example: "UserProfile" -> "user_profile"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' || r == '.' || r == '/' {
			result.WriteRune('_')
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Identifier strips characters that are not legal in a Go identifier and
// guarantees the result starts with a letter. An empty input yields
// fallback.
func Identifier(s, fallback string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			result.WriteRune(r)
		}
	}
	name := result.String()
	if name == "" {
		return fallback
	}
	if !unicode.IsLetter(rune(name[0])) && name[0] != '_' {
		name = fallback + name
	}
	return name
}
