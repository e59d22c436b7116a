package dlt

// DL/T 5044-2014 Design Constants
// Technical code for designing DC power supply systems of electric power projects

const (
	// NominalVoltage is the rated DC bus voltage (V)
	NominalVoltage = 220.0

	// CellEndVoltage is the discharge end voltage per cell (V) the
	// coefficient table below is keyed to
	CellEndVoltage = 1.85

	// CapacityMargin is the reliability factor Krel applied to every
	// staged capacity (Section 6.4)
	CapacityMargin = 1.4

	// CellCountMargin is the factor applied when sizing the number of
	// cells against the bus voltage (Section 6.3)
	CellCountMargin = 1.05

	// ChargeFactor is the recharge current factor for rectifier module
	// sizing (Section 7.2)
	ChargeFactor = 1.25

	// HourRateBase is the 10-hour discharge rate divisor (C10)
	HourRateBase = 10.0

	// BaseModuleThreshold is the base module count at or below which a
	// single spare module is added; above it, two are added
	BaseModuleThreshold = 6
)

// Default input values commonly used for 220 V substation systems
const (
	DefaultFloatVoltage    = 2.23  // V per cell
	DefaultFrequentCurrent = 27.27 // A
	DefaultModuleCurrent   = 20.0  // A
	DefaultBatteryCapacity = 400.0 // Ah
)

// kc185 is the discharge capacity coefficient (Kc) table for a discharge
// end voltage of 1.85 V/cell, keyed by discharge duration label.
// Values are fixed by the standard and must not be altered.
var kc185 = map[string]float64{
	"5s":     1.34,
	"1min":   1.24,
	"29min":  0.8,
	"0.5h":   0.78,
	"59min":  0.558,
	"1.0h":   0.54,
	"89min":  0.432,
	"1.5h":   0.428,
	"119min": 0.347,
	"2.0h":   0.344,
	"179min": 0.263,
	"3.0h":   0.262,
	"4.0h":   0.214,
	"5.0h":   0.18,
	"6.0h":   0.157,
	"7.0h":   0.14,
	"479min": 0.123,
	"8.0h":   0.123,
}

// Kc returns the discharge coefficient for the given duration label at
// 1.85 V/cell end voltage. The second return value is false for labels
// not defined by the standard.
func Kc(label string) (float64, bool) {
	v, ok := kc185[label]
	return v, ok
}

// KcTableSize is the number of entries in the 1.85 V/cell table.
func KcTableSize() int {
	return len(kc185)
}
