package domain

import "sort"

// Manifest maps a workspace-relative video path to its class.
type Manifest map[string]string

// ManifestEntry is one sorted (path, class) pair.
type ManifestEntry struct {
	Path  string
	Class string
}

// Entries returns the manifest content sorted by path for stable output.
func (m Manifest) Entries() []ManifestEntry {
	out := make([]ManifestEntry, 0, len(m))
	for p, c := range m {
		out = append(out, ManifestEntry{Path: p, Class: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Classes returns the distinct classes referenced by the manifest, sorted.
func (m Manifest) Classes() []string {
	seen := map[string]bool{}
	for _, c := range m {
		seen[c] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
