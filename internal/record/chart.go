// Package record writes run artifacts: population charts and AVI recordings.
package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewPoints is returned when a series cannot form a line.
var ErrTooFewPoints = errors.New("record: series needs at least two points")

// Series is one named line on a population chart.
type Series struct {
	Name  string
	Color drawing.Color
	X     []float64
	Y     []float64
}

// Plot describes a line chart rendered to PNG.
type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	Series []Series
}

// Render writes the chart as PNG to w.
func (p Plot) Render(w io.Writer) error {
	if len(p.Series) == 0 {
		return ErrTooFewPoints
	}
	width, height := p.Width, p.Height
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 400
	}

	lo, hi := 0.0, 0.0
	first := true
	series := make([]chart.Series, 0, len(p.Series))
	for _, s := range p.Series {
		if len(s.X) < 2 || len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: %q has %d x and %d y values", ErrTooFewPoints, s.Name, len(s.X), len(s.Y))
		}
		for _, v := range s.Y {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style:   chart.Style{StrokeColor: s.Color, StrokeWidth: 2},
		})
	}

	graph := chart.Chart{
		Title:  p.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: p.XLabel,
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: p.YLabel,
		},
		Series: series,
	}
	if hi == lo {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}
	return graph.Render(chart.PNG, w)
}

// Ints converts counts into chart values.
func Ints(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
