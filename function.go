package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
	"github.com/gogpu/gg-chart/sample"
)

func (c FunctionGraphConfig) name() string { return FunctionGraph }
func (c FunctionGraphConfig) base() Base   { return c.Base }

func (c FunctionGraphConfig) validate() error {
	if strings.TrimSpace(c.Formula) == "" {
		return &Error{Kind: MissingField, Chart: FunctionGraph, Field: "formula"}
	}
	return nil
}

func (c FunctionGraphConfig) plot(r *Renderer, rec *recording.Recorder) error {
	f, err := r.compiler.Compile(c.Formula, c.Variable)
	if err != nil {
		return &Error{Kind: InvalidFormula, Chart: FunctionGraph, Field: "formula", Err: err}
	}

	pal := &palette{chart: FunctionGraph}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	line := pal.color("lineColor", c.LineColor)
	axis := pal.color("axisColor", c.AxisColor)
	grid := pal.color("gridColor", c.GridColor)
	if pal.err != nil {
		return pal.err
	}

	cart := layout.NewCartesian(c.Width, c.Height, *c.Padding, c.XRange.Nonflat(), c.YRange.Nonflat())
	plot := cart.Plot

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	ax := newAxes(cart)
	ax.axis, ax.grid, ax.text = axis, grid, fg
	ax.showGrid = *c.ShowGrid
	ax.throughOrigin = true
	ax.draw(rec)

	// One sample per plot column.
	failed := 0
	s := sample.Sampler{
		Start: 0,
		End:   plot.Width(),
		Step:  1,
		Break: asymptote(plot),
	}
	scale := (cart.X.Max - cart.X.Min) / plot.Width()
	segments := s.Sample(func(col float64) (recording.Point, error) {
		x := cart.X.Min + col*scale
		y, err := f(x)
		if err == nil && (math.IsNaN(y) || math.IsInf(y, 0)) {
			err = fmt.Errorf("non-finite value at x=%g", x)
		}
		if err != nil {
			failed++
			return recording.Point{}, err
		}
		return recording.Pt(plot.MinX+col, cart.MapY(y)), nil
	})
	Logger().Debug("function sampled", "chart", FunctionGraph, "formula", c.Formula,
		"segments", len(segments), "points", sample.Points(segments), "failed", failed)

	rec.Save()
	rec.ClipRect(plot)
	drawSegments(rec, segments, recording.Stroke(line, *c.LineWidth))
	rec.Restore()
	return nil
}

// asymptote splits neighbours that jump further than the plot is tall
// while one of them lies outside it, such as tan(x) at π/2.
func asymptote(plot recording.Rect) func(prev, next recording.Point) bool {
	return func(prev, next recording.Point) bool {
		if math.Abs(next.Y-prev.Y) <= plot.Height() {
			return false
		}
		return !plot.Contains(prev) || !plot.Contains(next)
	}
}
