// Package rectifier sizes the number of high-frequency switch-mode power
// modules per DL/T 5044-2014 Section 7.2.
package rectifier

import (
	"fmt"
	"math"

	"github.com/luminghao/godcps/internal/dlt"
	"github.com/luminghao/godcps/internal/load"
)

// Step is one labeled line of a derivation trace.
type Step struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ModuleResult holds the module counts with their derivation.
// N1 is the base module count, N2 the spare module count.
type ModuleResult struct {
	CalcCurrent float64 `json:"calc_current"` // A
	N1          int     `json:"n1"`
	N2          int     `json:"n2"`
	Total       int     `json:"total"`
	Trace       []Step  `json:"trace"`
}

// Modules computes the rectifier module count:
//
//	Ijs = 1.25 x (C10 / 10) + Ijc
//	n1  = ceil(Ijs / Imo)
//	n2  = 1 for n1 <= 6, otherwise 2
//	n   = n1 + n2
//
// batteryAh is the battery capacity C10 (Ah), frequentA the continuous
// load current Ijc (A) and moduleA the rated current Imo of one module.
// moduleA must be positive and all inputs finite.
func Modules(batteryAh, frequentA, moduleA float64) (*ModuleResult, error) {
	for _, v := range []float64{batteryAh, frequentA, moduleA} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: inputs must be finite", load.ErrInvalidInput)
		}
	}
	if moduleA <= 0 {
		return nil, fmt.Errorf("%w: module rated current must be greater than 0, got %v", load.ErrInvalidInput, moduleA)
	}

	calcCurrent := dlt.ChargeFactor*(batteryAh/dlt.HourRateBase) + frequentA
	n1 := int(math.Ceil(calcCurrent / moduleA))

	// Spare module rule: one spare up to six base modules, two beyond.
	n2 := 1
	if n1 > dlt.BaseModuleThreshold {
		n2 = 2
	}

	total := n1 + n2

	return &ModuleResult{
		CalcCurrent: calcCurrent,
		N1:          n1,
		N2:          n2,
		Total:       total,
		Trace: []Step{
			{Label: "Ijs = 1.25 x (C10 / 10) + Ijc", Value: fmt.Sprintf("1.25 x (%g / 10) + %g = %.2f A", batteryAh, frequentA, calcCurrent)},
			{Label: "n1 = ceil(Ijs / Imo)", Value: fmt.Sprintf("ceil(%.2f / %g) = %d", calcCurrent, moduleA, n1)},
			{Label: "n2 (spare modules)", Value: fmt.Sprintf("n1 = %d, so n2 = %d", n1, n2)},
			{Label: "n = n1 + n2", Value: fmt.Sprintf("%d + %d = %d", n1, n2, total)},
		},
	}, nil
}
