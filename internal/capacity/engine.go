// Package capacity implements the staged battery capacity calculation of
// DL/T 5044-2014 Section 6.4 for the 1.85 V/cell end voltage.
package capacity

import (
	"math"

	"github.com/luminghao/godcps/internal/dlt"
	"github.com/luminghao/godcps/internal/load"
)

// Result holds the per-duration battery capacity requirements (Ah).
type Result struct {
	Initial float64 `json:"initial"` // first minute
	Stage1  float64 `json:"stage1"`  // 0.5 h
	Stage2  float64 `json:"stage2"`  // 1 h
	Stage3  float64 `json:"stage3"`  // 2 h
	Stage4  float64 `json:"stage4"`  // 4 h
	Random  float64 `json:"random"`  // 5 s burst overlay
}

// Combined holds the staged capacities with the random overlay added (Ah).
type Combined struct {
	Initial float64 `json:"initial"`
	Stage1  float64 `json:"stage1"`
	Stage2  float64 `json:"stage2"`
	Stage3  float64 `json:"stage3"`
	Stage4  float64 `json:"stage4"`
}

// kc looks up a coefficient by duration label. Every label used below is a
// fixed key of the standard's table, so a miss cannot occur at runtime.
func kc(label string) float64 {
	v, _ := dlt.Kc(label)
	return v
}

// Compute evaluates the staged capacity formulas for the given totals.
// It is a pure function of the totals and the coefficient table: no
// validation, no clamping. Negative difference terms (non-monotonic
// totals) and NaN inputs propagate into the result unchanged.
//
// The per-stage coefficient key sets, including the 4 h formula jumping
// from I2 straight to I5, follow the standard's worksheet verbatim.
func Compute(t load.StageTotals) Result {
	var r Result

	r.Initial = dlt.CapacityMargin * (t.Initial / kc("1min"))

	r.Stage1 = dlt.CapacityMargin * (t.Initial/kc("2.0h") +
		(t.HalfHour-t.Initial)/kc("29min"))

	r.Stage2 = dlt.CapacityMargin * (t.Initial/kc("2.0h") +
		(t.HalfHour-t.Initial)/kc("59min") +
		(t.OneHour-t.HalfHour)/kc("0.5h"))

	r.Stage3 = dlt.CapacityMargin * (t.Initial/kc("2.0h") +
		(t.HalfHour-t.Initial)/kc("119min") +
		(t.OneHour-t.HalfHour)/kc("1.5h") +
		(t.TwoHour-t.OneHour)/kc("1.0h"))

	r.Stage4 = dlt.CapacityMargin * (t.Initial/kc("4.0h") +
		(t.HalfHour-t.Initial)/kc("4.0h") +
		(t.FourHour-t.TwoHour)/kc("2.0h"))

	r.Random = t.Random / kc("5s")

	return r
}

// Combined adds the random-load capacity onto every staged value. The
// random capacity itself is an overlay, never combined with itself.
func (r Result) Combined() Combined {
	return Combined{
		Initial: r.Initial + r.Random,
		Stage1:  r.Stage1 + r.Random,
		Stage2:  r.Stage2 + r.Random,
		Stage3:  r.Stage3 + r.Random,
		Stage4:  r.Stage4 + r.Random,
	}
}

// Max returns the governing combined capacity.
func (c Combined) Max() float64 {
	m := c.Initial
	for _, v := range []float64{c.Stage1, c.Stage2, c.Stage3, c.Stage4} {
		if v > m {
			m = v
		}
	}
	return m
}

// Final returns the design capacity: the governing combined value rounded
// up to a whole Ah.
func (r Result) Final() float64 {
	return math.Ceil(r.Combined().Max())
}
