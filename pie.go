package chart

import (
	"strconv"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
)

// NoData is drawn in place of a pie whose values sum to zero.
const NoData = "No data"

const (
	legendRow    = 24
	legendSwatch = 14
	// legendShare is the fraction of the plot width given to the legend.
	legendShare = 0.35
)

func (c PieChartConfig) name() string { return PieChart }
func (c PieChartConfig) base() Base   { return c.Base }

func (c PieChartConfig) validate() error {
	if len(c.Data) == 0 {
		return &Error{Kind: MissingField, Chart: PieChart, Field: "data"}
	}
	return nil
}

func (c PieChartConfig) plot(_ *Renderer, rec *recording.Recorder) error {
	pal := &palette{chart: PieChart}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	border := pal.color("borderColor", c.BorderColor)
	colors := pal.colors("colors", c.Colors)
	if pal.err != nil {
		return pal.err
	}
	if len(colors) == 0 {
		colors = pal.colors("colors", DefaultColors)
	}

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	values := make([]float64, len(c.Data))
	for i, d := range c.Data {
		values[i] = d.Value
	}
	slices := layout.PieSlices(values)
	plot := c.Padding.Plot(c.Width, c.Height)
	if slices == nil {
		Logger().Debug("pie has no positive values", "chart", PieChart, "slices", len(values))
		mid := plot.Center()
		rec.Text(NoData, recording.Pt(mid.X, mid.Y+labelSize/3), recording.Text(fg, labelSize*1.5, recording.AlignCenter))
		return nil
	}

	area := plot
	var legend layout.Legend
	if *c.ShowLegend {
		split := plot.MaxX - plot.Width()*legendShare
		area.MaxX = split
		rows := float64(len(c.Data)) * legendRow
		legend = layout.Legend{
			Origin:    recording.Pt(split+10, plot.Center().Y-rows/2),
			RowHeight: legendRow,
			Swatch:    legendSwatch,
			Cells:     c.LegendCells,
		}
	}
	pie := layout.NewPie(area, 0)

	edge := recording.Stroke(border, 2)
	for i, s := range slices {
		if s.Sweep <= 0 {
			continue
		}
		col := colors[i%len(colors)]
		rec.Arc(pie.Bounds, s.Start, s.Sweep, recording.Fill(col))
		rec.Arc(pie.Bounds, s.Start, s.Sweep, edge)
	}

	if c.ShowLabels {
		onSlice := recording.Text(border, labelSize, recording.AlignCenter)
		for _, s := range slices {
			if s.Sweep <= 0 {
				continue
			}
			p := pie.Point(s.Mid(), 0.65)
			rec.Text(percent(s.Fraction), recording.Pt(p.X, p.Y+labelSize/3), onSlice)
		}
	}

	if *c.ShowLegend {
		text := recording.Text(fg, labelSize, recording.AlignLeft)
		for i, d := range c.Data {
			sw, at := legend.Row(i)
			rec.Rect(sw, recording.Fill(colors[i%len(colors)]))
			rec.Text(legend.Label(d.Label)+" ("+percent(slices[i].Fraction)+")", at, text)
		}
	}
	return nil
}

func percent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}
