package chart

import (
	"strconv"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
)

func (c BarChartConfig) name() string { return BarChart }
func (c BarChartConfig) base() Base   { return c.Base }

func (c BarChartConfig) validate() error {
	if len(c.Data) == 0 {
		return &Error{Kind: MissingField, Chart: BarChart, Field: "data"}
	}
	return nil
}

// plot draws bars as the only rectangles of the chart. Axes, ticks and
// grid use lines, and labels use text.
func (c BarChartConfig) plot(_ *Renderer, rec *recording.Recorder) error {
	pal := &palette{chart: BarChart}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	axis := pal.color("axisColor", c.AxisColor)
	grid := pal.color("gridColor", c.GridColor)
	colors := pal.colors("colors", c.Colors)
	if pal.err != nil {
		return pal.err
	}
	if len(colors) == 0 {
		colors = pal.colors("colors", DefaultColors)
	}

	values := make([]float64, len(c.Data))
	for i, d := range c.Data {
		values[i] = d.Value
	}
	plot := c.Padding.Plot(c.Width, c.Height)
	bars := layout.NewBars(plot, values, c.Orientation)
	horizontal := bars.Orientation == layout.Horizontal

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	// Value axis ticks.
	step := layout.NiceStep(bars.Max, tickTarget)
	ticks := layout.Ticks(layout.Range{Max: bars.Max}, tickTarget)
	gridPaint := recording.Stroke(grid, 1)
	axisPaint := recording.Stroke(axis, 1)
	for _, v := range ticks {
		p := bars.ValueAxis(v)
		label := layout.FormatTick(v, step)
		if horizontal {
			if *c.ShowGrid {
				rec.Line(recording.Pt(p, plot.MinY), recording.Pt(p, plot.MaxY), gridPaint)
			}
			rec.Line(recording.Pt(p, plot.MaxY), recording.Pt(p, plot.MaxY+tickLength), axisPaint)
			rec.Text(label, recording.Pt(p, plot.MaxY+tickLength+labelSize+2),
				recording.Text(fg, labelSize, recording.AlignCenter))
			continue
		}
		if *c.ShowGrid {
			rec.Line(recording.Pt(plot.MinX, p), recording.Pt(plot.MaxX, p), gridPaint)
		}
		rec.Line(recording.Pt(plot.MinX-tickLength, p), recording.Pt(plot.MinX, p), axisPaint)
		rec.Text(label, recording.Pt(plot.MinX-tickLength-3, p+labelSize/3),
			recording.Text(fg, labelSize, recording.AlignRight))
	}

	for i, d := range c.Data {
		r := bars.Bar(i, d.Value)
		if bars.Length(d.Value) > 0 {
			rec.Rect(r, recording.Fill(colors[i%len(colors)]))
		}

		slot := bars.Slot(i)
		value := strconv.FormatFloat(d.Value, 'f', -1, 64)
		if horizontal {
			rec.Text(d.Label, recording.Pt(plot.MinX-tickLength-3, slot+labelSize/3),
				recording.Text(fg, labelSize, recording.AlignRight))
			if *c.ShowValues {
				rec.Text(value, recording.Pt(r.MaxX+5, slot+labelSize/3),
					recording.Text(fg, labelSize, recording.AlignLeft))
			}
			continue
		}
		rec.Text(d.Label, recording.Pt(slot, plot.MaxY+tickLength+labelSize+2),
			recording.Text(fg, labelSize, recording.AlignCenter))
		if *c.ShowValues {
			rec.Text(value, recording.Pt(slot, r.MinY-5),
				recording.Text(fg, labelSize, recording.AlignCenter))
		}
	}

	rec.Line(recording.Pt(plot.MinX, plot.MinY), recording.Pt(plot.MinX, plot.MaxY), axisPaint)
	rec.Line(recording.Pt(plot.MinX, plot.MaxY), recording.Pt(plot.MaxX, plot.MaxY), axisPaint)
	return nil
}
