// Package preprocess normalizes a freshly loaded code-model document into
// the shape the model package expects, entirely through in-place mutation
// of the document tree.
//
// The pass runs before any typed model is built and is all-or-nothing: a
// structurally invalid document fails the whole invocation, there is no
// partial success. The individual rewrites are:
//
//   - identifier casing onto Go conventions, with an override table for
//     reserved words and a configurable pad suffix for collisions
//   - operation kind tagging (operation/paging/lro/lropaging) plus default
//     pager and poller injection
//   - body-type disambiguation: ambiguous bodies get a combined pseudo-type
//     and one overload per legal variant, sharing response and exception
//     nodes with the original by node identity
//   - etag pairing: a lone If-Match or If-None-Match header gets its
//     missing sibling synthesized
package preprocess
