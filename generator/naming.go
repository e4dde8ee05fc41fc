package generator

import "github.com/go-openapi/inflect"

// singularItem derives a loop-variable name from a paged collection field
// name: "values" becomes "value", "widgets" becomes "widget".
func singularItem(name string) string {
	if name == "" {
		return "item"
	}
	return inflect.Singularize(name)
}
