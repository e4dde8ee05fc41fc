// Package tspgen generates Go client SDKs from the YAML code model emitted
// by the TypeSpec compiler.
//
// The pipeline is deterministic and single-threaded: one YAML code model in,
// a tree of Go source files out. The library consists of four primary
// packages:
//
//   - ir: load the YAML code model into an alias-preserving document tree
//   - preprocess: normalize the document in place (naming, operation kinds,
//     body overloads, etag pairing) before any typed model is built
//   - model: build the typed object graph (clients, operation groups,
//     operations, parameters, responses, and the memoized type registry)
//   - generator: render the graph through templates into generated files
//
// # Quick Start
//
// Generate a client SDK from a code model file:
//
//	import "github.com/erraggy/tspgen/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("tspCodeModel.yaml"),
//		generator.WithModuleName("github.com/example/widgets"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("sdk/widgets"); err != nil {
//		log.Fatal(err)
//	}
//
// Files named *_patch.go that already exist in the output directory are
// never overwritten, so hand-written customizations survive regeneration.
package tspgen
