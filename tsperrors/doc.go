// Package tsperrors provides structured error types for tspgen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML deserialization failures and structural issues in
//     the code-model document
//   - SchemaError: code-model integrity violations the registry assumes
//     never happen with well-formed compiler output (missing keys,
//     duplicate model names)
//   - LookupError: identity lookups that found no target (request builders,
//     LRO initial operations)
//   - ConfigError: invalid or contradictory generator options
//
// # Usage with errors.As
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("tspCodeModel.yaml"))
//	if err != nil {
//	    var cfgErr *tsperrors.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        // Report the offending option to the user
//	    }
//	}
package tsperrors
