package domain

import (
	"maps"
	"slices"
)

func sortedNames[V any](set map[string]V) []string {
	return slices.Sorted(maps.Keys(set))
}
