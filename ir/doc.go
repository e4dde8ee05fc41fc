// Package ir loads the YAML code model emitted by the TypeSpec compiler
// into an untyped document tree.
//
// The tree is deliberately map-based rather than struct-based: the
// preprocess package rewrites it in place before the typed model is built,
// and the model package memoizes type construction by node identity. To make
// identity memoization see shared schema fragments as one node, the decoder
// resolves YAML aliases to the same map instance as their anchor — two
// references to &widget decode to one map, not two structurally equal maps.
package ir
