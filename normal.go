package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
	"github.com/gogpu/gg-chart/stats"
)

// sigmaSpan is how many standard deviations the value axis shows on each
// side of the mean.
const sigmaSpan = 4

// defaultLevelColors fill confidence levels configured without a color.
var defaultLevelColors = map[float64]string{
	0.68: "#80FF9800",
	0.95: "#60FFC107",
	0.99: "#40FFEB3B",
}

func (c NormalDistributionConfig) name() string { return NormalDistribution }
func (c NormalDistributionConfig) base() Base   { return c.Base }

// validate accepts every config: mean and standard deviation default.
func (c NormalDistributionConfig) validate() error { return nil }

// densityPlot places PDF samples on the plot. Sample i sits at pixel i
// along the value axis, which runs left to right when vertical and
// bottom to top when horizontal.
type densityPlot struct {
	plot       recording.Rect
	horizontal bool
	cache      *stats.PDFCache
	dmax       float64
}

func (d densityPlot) at(i int, density float64) recording.Point {
	f := float64(i) / float64(d.cache.Len()-1)
	h := density / d.dmax
	if d.horizontal {
		return recording.Pt(d.plot.MinX+h*d.plot.Width(), d.plot.MaxY-f*d.plot.Height())
	}
	return recording.Pt(d.plot.MinX+f*d.plot.Width(), d.plot.MaxY-h*d.plot.Height())
}

// curve returns samples i0..i1 on the curve.
func (d densityPlot) curve(i0, i1 int) []recording.Point {
	out := make([]recording.Point, 0, i1-i0+1)
	for i := i0; i <= i1; i++ {
		out = append(out, d.at(i, d.cache.At(i)))
	}
	return out
}

// area closes samples i0..i1 down to the baseline.
func (d densityPlot) area(i0, i1 int) []recording.Point {
	out := make([]recording.Point, 0, i1-i0+3)
	out = append(out, d.at(i0, 0))
	out = append(out, d.curve(i0, i1)...)
	return append(out, d.at(i1, 0))
}

func (c NormalDistributionConfig) plot(_ *Renderer, rec *recording.Recorder) error {
	pal := &palette{chart: NormalDistribution}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	curve := pal.color("curveColor", c.CurveColor)
	fill := pal.color("fillColor", c.FillColor)
	axis := pal.color("axisColor", c.AxisColor)
	levels := make([]float64, 0, len(c.ConfidenceLevels))
	levelColors := make(map[float64]color.NRGBA, len(c.ConfidenceLevels))
	for i, cl := range c.ConfidenceLevels {
		level, ok := stats.CanonicalLevel(cl.Level)
		if !ok {
			continue
		}
		hex := cl.Color
		if hex == "" {
			hex = defaultLevelColors[level]
		}
		levels = append(levels, level)
		levelColors[level] = pal.color(fmt.Sprintf("confidenceLevels[%d].color", i), hex)
	}
	if pal.err != nil {
		return pal.err
	}

	mean, sd := c.Mean, *c.StdDev
	lo, hi := mean-1, mean+1
	if sd > 0 {
		lo, hi = mean-sigmaSpan*sd, mean+sigmaSpan*sd
	}

	plot := c.Padding.Plot(c.Width, c.Height)
	horizontal := c.Orientation == layout.Horizontal
	pixels := plot.Width()
	if horizontal {
		pixels = plot.Height()
	}
	cache := stats.NewPDFCache(int(pixels)+1, lo, hi, mean, sd)
	d := densityPlot{plot: plot, horizontal: horizontal, cache: cache, dmax: cache.Max() * 1.1}
	if d.dmax == 0 {
		d.dmax = 1
	}
	last := cache.Len() - 1

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	if *c.ShowFill {
		rec.Polygon(d.area(0, last), recording.Fill(fill))
	}

	var bands []stats.Interval
	if sd > 0 {
		bands = stats.NormalBands(levels, mean, sd)
	} else if len(levels) > 0 {
		Logger().Debug("confidence bands skipped", "chart", NormalDistribution, "stdDev", sd)
	}
	for _, b := range bands {
		rec.Polygon(d.area(cache.Index(b.Lo), cache.Index(b.Hi)), recording.Fill(levelColors[b.Level]))
	}

	rec.Polyline(d.curve(0, last), recording.Stroke(curve, *c.CurveWidth))

	axisPaint := recording.Stroke(axis, 1)
	rec.Line(d.at(0, 0), d.at(last, 0), axisPaint)
	if sd > 0 && *c.ShowSigmaTicks {
		drawSigmaTicks(rec, d, mean, sd, fg, axisPaint)
	}
	if *c.ShowLegend && len(bands) > 0 {
		legend := layout.Legend{
			Origin:    recording.Pt(plot.MaxX-140, plot.MinY+4),
			RowHeight: legendRow,
			Swatch:    legendSwatch,
		}
		text := recording.Text(fg, labelSize, recording.AlignLeft)
		for i, b := range bands {
			sw, at := legend.Row(i)
			rec.Rect(sw, recording.Fill(levelColors[b.Level]))
			rec.Text(levelLabel(b), at, text)
		}
	}
	return nil
}

// drawSigmaTicks marks μ and μ±kσ for k up to 3, with the value beyond
// the name. On a horizontal chart the labels run up the value axis.
func drawSigmaTicks(rec *recording.Recorder, d densityPlot, mean, sd float64, fg color.NRGBA, axisPaint recording.Paint) {
	align := recording.Text(fg, labelSize, recording.AlignCenter)
	for k := -3; k <= 3; k++ {
		v := mean + float64(k)*sd
		base := d.at(d.cache.Index(v), 0)
		name := "μ"
		if k != 0 {
			name = fmt.Sprintf("μ%+dσ", k)
		}
		value := strconv.FormatFloat(v, 'g', 4, 64)

		if d.horizontal {
			rec.Line(recording.Pt(base.X-tickLength, base.Y), base, axisPaint)
			// Rotated a quarter turn counterclockwise, local "down" points
			// at the plot, so both lines sit at negative offsets.
			anchor := recording.Pt(base.X-tickLength-4, base.Y)
			rec.Save()
			rec.Rotate(-90, anchor)
			rec.Text(name, anchor, align)
			rec.Text(value, recording.Pt(anchor.X, anchor.Y-labelSize-2), align)
			rec.Restore()
			continue
		}
		rec.Line(base, recording.Pt(base.X, base.Y+tickLength), axisPaint)
		rec.Text(name, recording.Pt(base.X, base.Y+tickLength+labelSize+2), align)
		rec.Text(value, recording.Pt(base.X, base.Y+tickLength+2*labelSize+4), align)
	}
}

// levelLabel formats an interval as "95% (±1.96σ)".
func levelLabel(b stats.Interval) string {
	pct := math.Round(b.Level*1000) / 10
	return strconv.FormatFloat(pct, 'f', -1, 64) + "% (±" + strconv.FormatFloat(b.Z, 'f', -1, 64) + "σ)"
}
