// Package maputil provides helpers for deterministic map iteration.
//
// Generated output must be byte-identical across runs, so every map walk
// that can leak into output ordering goes through SortedKeys.
package maputil

import "sort"

// SortedKeys returns the keys of m sorted lexicographically.
// A nil or empty map yields an empty (non-nil) slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
