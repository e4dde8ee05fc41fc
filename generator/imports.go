package generator

import (
	"strconv"
	"strings"

	"github.com/erraggy/tspgen/model"
)

// renderImports flattens a FileImport side table into a Go import
// declaration. Blocks appear in kind order (stdlib, third-party, SDK core,
// local, conditional) separated by blank lines, with modules sorted within
// each block, so rendering the same graph twice yields byte-identical
// output.
func renderImports(fi *model.FileImport) string {
	if fi == nil || fi.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("import (\n")
	for i, group := range fi.Groups() {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, mod := range group.Modules {
			b.WriteString("\t")
			b.WriteString(strconv.Quote(mod))
			b.WriteString("\n")
		}
	}
	b.WriteString(")")
	return b.String()
}
