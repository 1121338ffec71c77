package domain

import "testing"

func TestClassStatsRecord(t *testing.T) {
	s := NewClassStats("pushups")

	s.Record(true, nil)
	s.Record(false, []RejectReason{ReasonBlurry, ReasonTooDark})
	s.Record(false, []RejectReason{ReasonCorrupted})

	if s.Total != 3 {
		t.Fatalf("expected total 3, got %d", s.Total)
	}
	if s.Accepted != 1 || s.Rejected != 2 {
		t.Fatalf("expected 1 accepted / 2 rejected, got %d/%d", s.Accepted, s.Rejected)
	}
	if s.Reason(ReasonBlurry) != 1 || s.Reason(ReasonTooDark) != 1 || s.Reason(ReasonCorrupted) != 1 {
		t.Fatalf("unexpected reason counters: %v", s.Reasons)
	}
	if s.Reason(ReasonTooBright) != 0 {
		t.Fatalf("expected zero for unseen reason")
	}
}

func TestSumStats(t *testing.T) {
	a := NewClassStats("pushups")
	a.Record(true, nil)
	a.Record(false, []RejectReason{ReasonLowResolution})

	b := NewClassStats("squats")
	b.Record(false, []RejectReason{ReasonLowResolution, ReasonInsufficientMotion})

	totals := SumStats([]ClassStats{a, b})

	if totals.Class != TotalsClass {
		t.Fatalf("expected class %q, got %q", TotalsClass, totals.Class)
	}
	if totals.Total != 3 || totals.Accepted != 1 || totals.Rejected != 2 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.Reason(ReasonLowResolution) != 2 {
		t.Fatalf("expected low_resolution 2, got %d", totals.Reason(ReasonLowResolution))
	}
	if totals.Reason(ReasonInsufficientMotion) != 1 {
		t.Fatalf("expected insufficient_motion 1, got %d", totals.Reason(ReasonInsufficientMotion))
	}
}

func TestMergeIntoZeroValue(t *testing.T) {
	var s ClassStats
	other := NewClassStats("squats")
	other.Record(false, []RejectReason{ReasonBlurry})

	s.Merge(other)

	if s.Total != 1 || s.Reason(ReasonBlurry) != 1 {
		t.Fatalf("merge into zero value failed: %+v", s)
	}
}
