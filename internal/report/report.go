// Package report assembles the full sizing report from a load collection
// and serializes it for downstream consumers.
package report

import (
	"github.com/luminghao/godcps/internal/capacity"
	"github.com/luminghao/godcps/internal/load"
)

// Report is the complete output of one capacity run: the load statistics
// table, the stage totals, the per-duration capacities, the combined
// values and the final design capacity.
type Report struct {
	Loads    []load.Load       `json:"loads"`
	Totals   load.StageTotals  `json:"totals"`
	Capacity capacity.Result   `json:"capacity_ah"`
	Combined capacity.Combined `json:"combined_ah"`
	FinalAh  float64           `json:"final_ah"`
}

// Build computes a Report from the current load collection.
func Build(set *load.Set) Report {
	totals := set.Totals()
	result := capacity.Compute(totals)
	return Report{
		Loads:    set.Loads(),
		Totals:   totals,
		Capacity: result,
		Combined: result.Combined(),
		FinalAh:  result.Final(),
	}
}
