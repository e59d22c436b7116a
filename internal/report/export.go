package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// WriteJSON writes the report to w in JSON format.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes the load statistics table to w in CSV format, one row
// per load with its stage markers, followed by the stage totals row.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	header := []string{"name", "power_kw", "usage_factor", "current_a",
		"frequent", "initial", "0.5h", "1h", "2h", "4h", "random"}
	if err := cw.Write(header); err != nil {
		return err
	}
	mark := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	for _, l := range r.Loads {
		rec := []string{
			l.Name,
			strconv.FormatFloat(l.PowerKW, 'f', -1, 64),
			strconv.FormatFloat(l.UsageFactor, 'f', -1, 64),
			strconv.FormatFloat(l.Current, 'f', 2, 64),
			mark(l.Stages.Frequent),
			mark(l.Stages.Initial),
			mark(l.Stages.HalfHour),
			mark(l.Stages.OneHour),
			mark(l.Stages.TwoHour),
			mark(l.Stages.FourHour),
			mark(l.Stages.Random),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	totals := []string{"TOTAL", "", "", "",
		strconv.FormatFloat(r.Totals.Frequent, 'f', 2, 64),
		strconv.FormatFloat(r.Totals.Initial, 'f', 2, 64),
		strconv.FormatFloat(r.Totals.HalfHour, 'f', 2, 64),
		strconv.FormatFloat(r.Totals.OneHour, 'f', 2, 64),
		strconv.FormatFloat(r.Totals.TwoHour, 'f', 2, 64),
		strconv.FormatFloat(r.Totals.FourHour, 'f', 2, 64),
		strconv.FormatFloat(r.Totals.Random, 'f', 2, 64),
	}
	if err := cw.Write(totals); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
