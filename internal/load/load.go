package load

import (
	"errors"
	"fmt"
	"math"

	"github.com/luminghao/godcps/internal/dlt"
)

var (
	// ErrMissingName is returned when a load is added without a name
	ErrMissingName = errors.New("load name is required")

	// ErrInvalidInput is returned for non-finite or out-of-range inputs
	ErrInvalidInput = errors.New("invalid input")
)

// Stages marks the discharge stages a load participates in. A load may
// belong to any combination of stages, including none.
type Stages struct {
	Frequent bool `json:"frequent"`  // continuous (I0)
	Initial  bool `json:"initial"`   // first minute (I1)
	HalfHour bool `json:"half_hour"` // 0.5 h (I2)
	OneHour  bool `json:"one_hour"`  // 1 h (I3)
	TwoHour  bool `json:"two_hour"`  // 2 h (I4)
	FourHour bool `json:"four_hour"` // 4 h (I5)
	Random   bool `json:"random"`    // 5 s burst (IR)
}

// Load is one itemized DC load. Immutable once built; Current is derived
// at construction and never recomputed.
type Load struct {
	Name        string  `json:"name"`
	PowerKW     float64 `json:"power_kw"`     // rated power (kW)
	UsageFactor float64 `json:"usage_factor"` // in [0,1]
	Current     float64 `json:"current_a"`    // derived (A)
	Stages      Stages  `json:"stages"`
}

// Current converts a rated power and usage factor into a bus current (A):
// I = P * 1000 * f / Un, with Un the nominal 220 V bus voltage.
func Current(powerKW, usageFactor float64) float64 {
	return powerKW * 1000 * usageFactor / dlt.NominalVoltage
}

// New validates and builds a Load. The name must be non-empty, the power
// non-negative and the usage factor within [0,1]; all numeric inputs must
// be finite. An invalid load is never constructed.
func New(name string, powerKW, usageFactor float64, stages Stages) (Load, error) {
	if name == "" {
		return Load{}, ErrMissingName
	}
	if math.IsNaN(powerKW) || math.IsInf(powerKW, 0) || powerKW < 0 {
		return Load{}, fmt.Errorf("%w: rated power must be a finite value >= 0, got %v", ErrInvalidInput, powerKW)
	}
	if math.IsNaN(usageFactor) || usageFactor < 0 || usageFactor > 1 {
		return Load{}, fmt.Errorf("%w: usage factor must be within [0,1], got %v", ErrInvalidInput, usageFactor)
	}
	return Load{
		Name:        name,
		PowerKW:     powerKW,
		UsageFactor: usageFactor,
		Current:     Current(powerKW, usageFactor),
		Stages:      stages,
	}, nil
}

// StageCurrent returns the load's contribution to the given stage: its
// derived current when tagged, zero otherwise.
func (l Load) StageCurrent(tagged bool) float64 {
	if tagged {
		return l.Current
	}
	return 0
}
