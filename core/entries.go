package core

import (
	"cmp"
	"maps"
	"slices"
)

// Pair is a single key/value entry of a mapping
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Entries returns the pairs of m in ascending key order
// Go maps have no insertion order, so sorted order is the natural order used by callers
func Entries[K cmp.Ordered, V any](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: m[k]})
	}
	return pairs
}
