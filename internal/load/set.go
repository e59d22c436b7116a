package load

// StageTotals holds the summed current of each load category (A).
// Symbols follow the load statistics table of DL/T 5044-2014.
type StageTotals struct {
	Frequent float64 `json:"i0"` // I0 - continuous load
	Initial  float64 `json:"i1"` // I1 - first minute
	HalfHour float64 `json:"i2"` // I2 - 0.5 h
	OneHour  float64 `json:"i3"` // I3 - 1 h
	TwoHour  float64 `json:"i4"` // I4 - 2 h
	FourHour float64 `json:"i5"` // I5 - 4 h
	Random   float64 `json:"ir"` // IR - 5 s burst
}

// Monotonic reports whether the staged totals are non-decreasing from the
// first minute through the 4 h stage (I1 <= I2 <= I3 <= I4 <= I5). The
// capacity formulas subtract consecutive totals, so a later stage smaller
// than an earlier one produces a negative difference term and understates
// capacity. The standard's worksheet does not flag this; callers may warn.
func (t StageTotals) Monotonic() bool {
	return t.Initial <= t.HalfHour &&
		t.HalfHour <= t.OneHour &&
		t.OneHour <= t.TwoHour &&
		t.TwoHour <= t.FourHour
}

// Set is a caller-owned, append-only collection of loads. It belongs to a
// single session; loads are never removed individually, only cleared as a
// whole. Set is not safe for concurrent use.
type Set struct {
	loads []Load
}

// NewSet returns an empty load collection.
func NewSet() *Set {
	return &Set{}
}

// Add appends a load to the collection.
func (s *Set) Add(l Load) {
	s.loads = append(s.loads, l)
}

// Clear removes all loads.
func (s *Set) Clear() {
	s.loads = nil
}

// Len returns the number of loads.
func (s *Set) Len() int {
	return len(s.loads)
}

// Loads returns a copy of the collection, preserving entry order.
func (s *Set) Loads() []Load {
	out := make([]Load, len(s.loads))
	copy(out, s.loads)
	return out
}

// Totals sums each load's contribution per stage. The result depends only
// on the set of loads, not their order.
func (s *Set) Totals() StageTotals {
	var t StageTotals
	for _, l := range s.loads {
		t.Frequent += l.StageCurrent(l.Stages.Frequent)
		t.Initial += l.StageCurrent(l.Stages.Initial)
		t.HalfHour += l.StageCurrent(l.Stages.HalfHour)
		t.OneHour += l.StageCurrent(l.Stages.OneHour)
		t.TwoHour += l.StageCurrent(l.Stages.TwoHour)
		t.FourHour += l.StageCurrent(l.Stages.FourHour)
		t.Random += l.StageCurrent(l.Stages.Random)
	}
	return t
}
