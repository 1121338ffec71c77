package sample

import (
	"fmt"
	"reflect"
	"testing"
)

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%05d.mp4", i)
	}
	return out
}

func TestPickDeterministic(t *testing.T) {
	a := New(42).Pick(items(100), 10)
	b := New(42).Pick(items(100), 10)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed must pick the same subset:\n%v\n%v", a, b)
	}

	c := New(7).Pick(items(100), 10)
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds should pick different subsets")
	}
}

func TestPickPreservesOrder(t *testing.T) {
	got := New(1).Pick(items(50), 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 items, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("picked items out of input order: %v", got)
		}
	}
}

func TestPickSmallInput(t *testing.T) {
	in := []string{"a.mp4", "b.mp4"}
	got := New(42).Pick(in, 10)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("undersized input should be returned whole, got %v", got)
	}
	got[0] = "mutated"
	if in[0] != "a.mp4" {
		t.Fatal("Pick must copy, not alias, the input")
	}
}

func TestPickZero(t *testing.T) {
	if got := New(42).Pick(items(5), 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}
