// Package sample provides deterministic per-class sampling of video
// files so repeated fetches of the same revision pick the same subset.
package sample

import (
	"math/rand"
	"sort"
)

// Sampler picks items without replacement from a seeded source.
// Callers must feed classes in a stable order for reproducible output.
type Sampler struct {
	rng *rand.Rand
}

func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns up to n items chosen without replacement, preserving the
// input order of the chosen items. The input slice is not modified.
func (s *Sampler) Pick(items []string, n int) []string {
	if n >= len(items) {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	if n <= 0 {
		return nil
	}

	idx := s.rng.Perm(len(items))[:n]
	sort.Ints(idx)

	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
