// Package battery sizes the number of battery cells per DL/T 5044-2014
// Section 6.3.
package battery

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

// CountResult holds the cell count with its derivation.
type CountResult struct {
	NominalVoltage float64 `json:"nominal_voltage_v"` // Un
	FloatVoltage   float64 `json:"float_voltage_v"`   // Uf
	Raw            float64 `json:"raw"`               // (Un/Uf) * 1.05 before rounding
	Count          int     `json:"count"`             // n
	Trace          []Step  `json:"trace"`
}

// Count computes the number of cells: n = ceil((Un / Uf) * 1.05).
// The 1.05 margin is applied to the unrounded quotient; rounding happens
// once, at the end. Both voltages must be finite and positive.
func Count(un, uf float64) (*CountResult, error) {
	if math.IsNaN(un) || math.IsInf(un, 0) || math.IsNaN(uf) || math.IsInf(uf, 0) {
		return nil, fmt.Errorf("%w: voltages must be finite, got Un=%v Uf=%v", load.ErrInvalidInput, un, uf)
	}
	if un <= 0 || uf <= 0 {
		return nil, fmt.Errorf("%w: voltages must be greater than 0, got Un=%v Uf=%v", load.ErrInvalidInput, un, uf)
	}

	raw := (un / uf) * dlt.CellCountMargin
	n := int(math.Ceil(raw))

	return &CountResult{
		NominalVoltage: un,
		FloatVoltage:   uf,
		Raw:            raw,
		Count:          n,
		Trace: []Step{
			{Label: "n = (Un / Uf) x 1.05", Value: fmt.Sprintf("(%g / %g) x 1.05", un, uf)},
			{Label: "Un / Uf", Value: fmt.Sprintf("%.4f", un/uf)},
			{Label: "x 1.05", Value: fmt.Sprintf("%.4f", raw)},
			{Label: "round up", Value: fmt.Sprintf("%d", n)},
		},
	}, nil
}
