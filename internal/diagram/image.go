package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/luminghao/godcps/internal/load"
)

// ExportProfile exports the staged discharge profile to an image file.
// The format follows the file extension: png, svg or pdf.
func ExportProfile(t load.StageTotals, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported diagram format: %s (use png, svg or pdf)", ext)
	}

	p := plot.New()
	p.Title.Text = "DC Load Discharge Profile"
	p.X.Label.Text = "Time (h)"
	p.Y.Label.Text = "Current (A)"

	// Step outline: each stage current held until the next stage boundary.
	bounds := []float64{1.0 / 60, 0.5, 1, 2, 4}
	currents := []float64{t.Initial, t.HalfHour, t.OneHour, t.TwoHour, t.FourHour}

	outline := make(plotter.XYs, 0, 2*len(bounds))
	start := 0.0
	for i, end := range bounds {
		outline = append(outline,
			plotter.XY{X: start, Y: currents[i]},
			plotter.XY{X: end, Y: currents[i]})
		start = end
	}

	profile, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	profile.LineStyle.Width = vg.Points(2)
	profile.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(profile)
	p.Legend.Add("staged load", profile)

	if t.Frequent > 0 {
		continuous := plotter.XYs{
			{X: 0, Y: t.Frequent},
			{X: 4, Y: t.Frequent},
		}
		line, err := plotter.NewLine(continuous)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		line.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
		p.Add(line)
		p.Legend.Add("continuous load", line)
	}

	p.Legend.Top = true
	p.X.Min = 0
	p.Y.Min = 0

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
