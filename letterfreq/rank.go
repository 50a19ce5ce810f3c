package letterfreq

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Ranked is a key with its count.
type Ranked[K constraints.Ordered] struct {
	Key   K
	Count int
}

// Rank orders counts from most to least common, breaking ties by the
// larger key first.
func Rank[K constraints.Ordered](counts map[K]int) []Ranked[K] {
	ret := make([]Ranked[K], 0, len(counts))
	for k, n := range counts {
		ret = append(ret, Ranked[K]{Key: k, Count: n})
	}

	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Count != ret[j].Count {
			return ret[i].Count > ret[j].Count
		}
		return ret[i].Key > ret[j].Key
	})
	return ret
}
