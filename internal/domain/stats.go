package domain

// TotalsClass is the synthetic class name used for aggregate rows.
const TotalsClass = "ALL_EXERCISES"

// ClassStats tracks per-class cleaning counters.
type ClassStats struct {
	Class    string
	Total    int
	Accepted int
	Rejected int
	Reasons  map[RejectReason]int
}

func NewClassStats(class string) ClassStats {
	return ClassStats{
		Class:   class,
		Reasons: map[RejectReason]int{},
	}
}

// Record updates counters for a single analyzed video.
func (s *ClassStats) Record(accepted bool, reasons []RejectReason) {
	s.Total++
	if accepted {
		s.Accepted++
	} else {
		s.Rejected++
	}
	for _, r := range reasons {
		s.Reasons[r]++
	}
}

// Reason returns the counter for a reject reason (zero when absent).
func (s ClassStats) Reason(r RejectReason) int {
	return s.Reasons[r]
}

// Merge adds other's counters into s. The class name is kept.
func (s *ClassStats) Merge(other ClassStats) {
	s.Total += other.Total
	s.Accepted += other.Accepted
	s.Rejected += other.Rejected
	if s.Reasons == nil {
		s.Reasons = map[RejectReason]int{}
	}
	for r, n := range other.Reasons {
		s.Reasons[r] += n
	}
}

// SumStats folds per-class stats into an ALL_EXERCISES aggregate.
func SumStats(perClass []ClassStats) ClassStats {
	totals := NewClassStats(TotalsClass)
	for _, cs := range perClass {
		totals.Merge(cs)
	}
	return totals
}
