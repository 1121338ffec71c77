// Package labels queries and cross-checks the ground-truth labels
// document produced by fetch.
package labels

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/PaesslerAG/jsonpath"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

// Query evaluates a JSONPath expression against a labels JSON document
// and renders the result as display strings.
func Query(doc []byte, expr string) ([]string, error) {
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, &domain.OpError{Op: "labels.query", Kind: domain.KindInvalidConfig, Err: err}
	}

	val, err := jsonpath.Get(expr, parsed)
	if err != nil {
		return nil, &domain.OpError{Op: "labels.query", Kind: domain.KindInvalidConfig, Err: err}
	}

	return render(val), nil
}

func render(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, render(e)...)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, fmt.Sprintf("%s: %v", k, t[k]))
		}
		return out
	case string:
		return []string{t}
	default:
		return []string{fmt.Sprint(t)}
	}
}

// Coverage compares a manifest against the labels mapping.
type Coverage struct {
	Missing []string // manifest paths with no label
	Orphans []string // labeled paths with no manifest entry
}

func (c Coverage) Clean() bool {
	return len(c.Missing) == 0 && len(c.Orphans) == 0
}

// Compare cross-checks manifest entries against the label mapping.
// Both result slices are sorted.
func Compare(m domain.Manifest, labeled map[string]string) Coverage {
	var cov Coverage

	for path := range m {
		if _, ok := labeled[path]; !ok {
			cov.Missing = append(cov.Missing, path)
		}
	}
	for path := range labeled {
		if _, ok := m[path]; !ok {
			cov.Orphans = append(cov.Orphans, path)
		}
	}

	sort.Strings(cov.Missing)
	sort.Strings(cov.Orphans)
	return cov
}
