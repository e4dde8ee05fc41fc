package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"widget", "Widget"},
		{"alreadyPascal", "AlreadyPascal"},
		{"a.b.c", "ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "userProfile", ToCamelCase("user_profile"))
	assert.Equal(t, "userProfile", ToCamelCase("UserProfile"))
	assert.Equal(t, "", ToCamelCase(""))
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "user_profile", ToSnakeCase("UserProfile"))
	assert.Equal(t, "api_client", ToSnakeCase("api-client"))
}

func TestPad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffix   string
		expected string
	}{
		{"keyword padded", "type", "Param", "typeParam"},
		{"digit padded", "1widget", "Model", "1widgetModel"},
		{"plain name untouched", "widget", "Param", "widget"},
		{"capitalized keyword untouched", "Type", "Param", "Type"},
		{"empty", "", "Param", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pad(tt.input, tt.suffix))
		})
	}
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "ifmatch", Identifier("if-match", "h"))
	assert.Equal(t, "h123", Identifier("1+2=3", "h"))
	assert.Equal(t, "h", Identifier("", "h"))
}
