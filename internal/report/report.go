// Package report bins and renders computed acoplanarity angles. It
// offers a fixed-bin histogram over [0, 2pi) with PDF output via
// gonum/plot and a standalone HTML chart via go-echarts.
package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram is a fixed-bin histogram over the angle range [0, 2pi).
// Values outside the range never reach a bin: they are tallied in Under
// and Over so a range defect in the producing pipeline stays visible in
// the report instead of piling up in an edge bin.
type Histogram struct {
	Counts []int
	Under  int
	Over   int
}

// NewHistogram returns an empty histogram with the given bin count.
func NewHistogram(bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram needs at least 1 bin, got %d", bins)
	}
	return &Histogram{Counts: make([]int, bins)}, nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// Fill adds each in-range angle to its bin and tallies out-of-range
// values in Under and Over.
func (h *Histogram) Fill(angles []float32) {
	nbins := len(h.Counts)
	width := 2 * math.Pi / float64(nbins)
	for _, a := range angles {
		v := float64(a)
		switch {
		case v < 0:
			h.Under++
		case v >= 2*math.Pi:
			h.Over++
		default:
			bin := int(v / width)
			if bin >= nbins {
				bin = nbins - 1
			}
			h.Counts[bin]++
		}
	}
}

// BinCenters returns the centre angle of each bin.
func (h *Histogram) BinCenters() []float64 {
	width := 2 * math.Pi / float64(len(h.Counts))
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = (float64(i) + 0.5) * width
	}
	return centers
}

// Total returns the number of filled entries, the out-of-range tallies
// included.
func (h *Histogram) Total() int {
	total := h.Under + h.Over
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Summary holds basic statistics of an angle sample.
type Summary struct {
	N    int
	Mean float64
	Min  float64
	Max  float64
}

// Summarize computes summary statistics over the angles.
func Summarize(angles []float32) Summary {
	if len(angles) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(angles))
	for i, a := range angles {
		xs[i] = float64(a)
	}
	return Summary{
		N:    len(xs),
		Mean: stat.Mean(xs, nil),
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
	}
}

// SavePDF renders the histogram as a bar chart to a PDF (or any format
// gonum/plot infers from the file extension).
func (h *Histogram) SavePDF(path, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "phi_cp [rad]"
	p.Y.Label.Text = "events"

	values := make(plotter.Values, len(h.Counts))
	for i, c := range h.Counts {
		values[i] = float64(c)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	p.Add(bars)

	labels := make([]string, len(h.Counts))
	for i, c := range h.BinCenters() {
		labels[i] = fmt.Sprintf("%.2f", c)
	}
	p.NominalX(labels...)

	if err := p.Save(7*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// RenderHTML writes a standalone go-echarts bar chart of the histogram.
func (h *Histogram) RenderHTML(w io.Writer, title string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	labels := make([]string, len(h.Counts))
	for i, c := range h.BinCenters() {
		labels[i] = fmt.Sprintf("%.2f", c)
	}
	data := make([]opts.BarData, len(h.Counts))
	for i, c := range h.Counts {
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(labels).AddSeries("events", data)

	return bar.Render(w)
}

// SaveHTML renders the go-echarts chart to a file.
func (h *Histogram) SaveHTML(path, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	defer f.Close()
	return h.RenderHTML(f, title)
}
