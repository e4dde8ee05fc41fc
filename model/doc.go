// Package model builds the typed object graph that serializers render.
//
// The graph mirrors the code-model document: a CodeModel owns clients,
// clients own operation groups and request builders, groups own operations,
// operations own parameters and responses. Type descriptors resolve through
// BuildType, which memoizes by node identity in a registry arena: the same
// descriptor node always yields the same type instance, so schema fragments
// shared via YAML aliases build exactly once.
//
// Construction is two-phase where forward references require it. Model and
// enum types register themselves in the arena before resolving their member
// types, so self-referential models terminate; long-running operations link
// to their initial operation in an explicit pass after every sibling in the
// group exists.
//
// Nothing in this package mutates the graph after New returns. Serializers
// only read it and accumulate FileImport side tables.
package model
