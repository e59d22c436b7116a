package diagram

import (
	"fmt"
	"strings"

	"github.com/luminghao/godcps/internal/load"
)

// stage is one bar of the discharge profile chart.
type stage struct {
	label   string
	current float64
}

func stagesOf(t load.StageTotals) []stage {
	return []stage{
		{"1 min", t.Initial},
		{"0.5 h", t.HalfHour},
		{"1 h", t.OneHour},
		{"2 h", t.TwoHour},
		{"4 h", t.FourHour},
	}
}

// DrawASCIIProfile renders the staged discharge currents as a horizontal
// bar chart, with the random and continuous loads listed below.
func DrawASCIIProfile(t load.StageTotals) string {
	var sb strings.Builder

	barChars := 44

	stages := stagesOf(t)
	max := t.Random
	if t.Frequent > max {
		max = t.Frequent
	}
	for _, s := range stages {
		if s.current > max {
			max = s.current
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  DISCHARGE PROFILE (A)\n")
	sb.WriteString("  ─────────────────────\n")

	bar := func(v float64) string {
		if max <= 0 || v <= 0 {
			return ""
		}
		n := int(v / max * float64(barChars))
		if n == 0 {
			n = 1
		}
		return strings.Repeat("█", n)
	}

	for _, s := range stages {
		sb.WriteString(fmt.Sprintf("  %-6s %8.2f │%s\n", s.label, s.current, bar(s.current)))
	}
	sb.WriteString(fmt.Sprintf("  %-6s %8.2f │%s (5 s overlay)\n", "random", t.Random, bar(t.Random)))
	sb.WriteString(fmt.Sprintf("  %-6s %8.2f │%s (continuous)\n", "freq", t.Frequent, bar(t.Frequent)))

	return sb.String()
}
