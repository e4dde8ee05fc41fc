// Package generator renders a built code model into Go SDK source files.
//
// Generation is a one-shot pipeline: load the code-model document, run the
// preprocessing rewrites, assemble the typed object graph, then serialize
// one file per output kind (client, options, models, enums, operations,
// request builders, packaging, samples, tests) through the shared template
// environment. Every emitted .go file is passed through goimports-equivalent
// processing; when that fails the unformatted output is kept and a warning
// issue is recorded.
//
// The entry point is GenerateWithOptions:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("widgets.yaml"),
//	    generator.WithModuleName("github.com/example/widgets"),
//	    generator.WithPackageName("widgets"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := result.WriteFiles("./widgets"); err != nil {
//	    log.Fatal(err)
//	}
package generator
