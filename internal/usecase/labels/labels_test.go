package labels

import (
	"reflect"
	"testing"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

const doc = `{
  "dataset/pushups/a.mp4": "pushups",
  "dataset/pushups/b.mp4": "pushups",
  "dataset/squats/c.mp4": "squats"
}`

func TestQueryWholeDocument(t *testing.T) {
	got, err := Query([]byte(doc), "$")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []string{
		"dataset/pushups/a.mp4: pushups",
		"dataset/pushups/b.mp4: pushups",
		"dataset/squats/c.mp4: squats",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result:\n%v\nwant:\n%v", got, want)
	}
}

func TestQuerySingleKey(t *testing.T) {
	got, err := Query([]byte(doc), `$["dataset/squats/c.mp4"]`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0] != "squats" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestQueryBadDocument(t *testing.T) {
	_, err := Query([]byte("{nope"), "$")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestQueryBadExpression(t *testing.T) {
	_, err := Query([]byte(doc), "$[")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	m := domain.Manifest{
		"dataset/pushups/a.mp4": "pushups",
		"dataset/squats/c.mp4":  "squats",
	}
	labeled := map[string]string{
		"dataset/pushups/a.mp4": "pushups",
		"dataset/lunges/x.mp4":  "lunges",
	}

	cov := Compare(m, labeled)
	if cov.Clean() {
		t.Fatal("expected coverage gaps")
	}
	if !reflect.DeepEqual(cov.Missing, []string{"dataset/squats/c.mp4"}) {
		t.Fatalf("unexpected missing: %v", cov.Missing)
	}
	if !reflect.DeepEqual(cov.Orphans, []string{"dataset/lunges/x.mp4"}) {
		t.Fatalf("unexpected orphans: %v", cov.Orphans)
	}
}

func TestCompareClean(t *testing.T) {
	m := domain.Manifest{"dataset/pushups/a.mp4": "pushups"}
	cov := Compare(m, map[string]string(m))
	if !cov.Clean() {
		t.Fatalf("expected clean coverage, got %+v", cov)
	}
}
