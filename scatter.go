package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
	"github.com/gogpu/gg-chart/stats"
)

// scatterMargin widens the data ranges so edge points are not cut.
const scatterMargin = 0.05

func (c ScatterPlotConfig) name() string { return ScatterPlot }
func (c ScatterPlotConfig) base() Base   { return c.Base }

func (c ScatterPlotConfig) validate() error {
	if len(c.Data) == 0 {
		return &Error{Kind: MissingField, Chart: ScatterPlot, Field: "data"}
	}
	return nil
}

func (c ScatterPlotConfig) plot(_ *Renderer, rec *recording.Recorder) error {
	pal := &palette{chart: ScatterPlot}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	point := pal.color("pointColor", c.PointColor)
	regression := pal.color("regressionColor", c.RegressionColor)
	confidence := pal.color("confidenceColor", c.ConfidenceColor)
	axis := pal.color("axisColor", c.AxisColor)
	grid := pal.color("gridColor", c.GridColor)
	if pal.err != nil {
		return pal.err
	}

	pts := make([]recording.Point, len(c.Data))
	xs := make([]float64, len(c.Data))
	ys := make([]float64, len(c.Data))
	for i, d := range c.Data {
		pts[i] = recording.Pt(d.X, d.Y)
		xs[i], ys[i] = d.X, d.Y
	}
	xr := layout.DataRange(xs)
	cart := layout.NewCartesian(c.Width, c.Height, *c.Padding,
		xr.Nonflat().Expand(scatterMargin), layout.DataRange(ys).Nonflat().Expand(scatterMargin))
	plot := cart.Plot

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	ax := newAxes(cart)
	ax.axis, ax.grid, ax.text = axis, grid, fg
	ax.showGrid = *c.ShowGrid
	ax.draw(rec)

	if c.ShowRegressionLine || c.ShowConfidenceInterval {
		reg, ok := stats.LinearRegression(pts)
		if !ok {
			Logger().Debug("regression skipped", "chart", ScatterPlot,
				"kind", InsufficientData.String(), "points", len(pts))
		} else {
			rec.Save()
			rec.ClipRect(plot)
			if c.ShowConfidenceInterval {
				c.drawBand(rec, cart, reg, xr, recording.Fill(confidence))
			}
			if c.ShowRegressionLine {
				p1 := cart.Map(recording.Pt(xr.Min, reg.Predict(xr.Min)))
				p2 := cart.Map(recording.Pt(xr.Max, reg.Predict(xr.Max)))
				rec.Line(p1, p2, recording.Stroke(regression, 2))
			}
			rec.Restore()

			if c.ShowRegressionLine && *c.ShowEquation {
				rec.Text(Equation(reg), recording.Pt(plot.MinX+10, plot.MinY+labelSize+4),
					recording.Text(regression, labelSize, recording.AlignLeft))
			}
		}
	}

	for _, p := range pts {
		rec.Circle(cart.Map(p), c.PointRadius, recording.Fill(point))
	}
	return nil
}

func (c ScatterPlotConfig) drawBand(rec *recording.Recorder, cart layout.Cartesian, reg stats.Regression, xr layout.Range, paint recording.Paint) {
	band, ok := stats.RegressionBand(reg, xr.Min, xr.Max, stats.Critical95, c.BandResolution)
	if !ok {
		Logger().Debug("confidence band skipped", "chart", ScatterPlot,
			"kind", InsufficientData.String(), "points", reg.N)
		return
	}
	poly := band.Polygon()
	for i, p := range poly {
		poly[i] = cart.Map(p)
	}
	rec.Polygon(poly, paint)
}

// Equation formats a fit as "y = 1.5x + 2 (R² = 0.98)".
func Equation(r stats.Regression) string {
	sign := "+"
	if r.Intercept < 0 {
		sign = "-"
	}
	b := math.Abs(r.Intercept)
	return fmt.Sprintf("y = %sx %s %s (R² = %s)",
		strconv.FormatFloat(r.Slope, 'g', 4, 64), sign,
		strconv.FormatFloat(b, 'g', 4, 64),
		strconv.FormatFloat(r.RSquared, 'f', 3, 64))
}
