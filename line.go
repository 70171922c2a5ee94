package chart

import (
	"fmt"
	"strconv"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
)

// maxXLabels bounds the x labels of a line chart; denser data labels
// every k-th point.
const maxXLabels = 10

func (c LineChartConfig) name() string { return LineChart }
func (c LineChartConfig) base() Base   { return c.Base }

func (c LineChartConfig) validate() error {
	if len(c.Data) < 2 {
		return &Error{Kind: MissingField, Chart: LineChart, Field: "data",
			Err: fmt.Errorf("need at least 2 points, got %d", len(c.Data))}
	}
	return nil
}

func (c LineChartConfig) plot(_ *Renderer, rec *recording.Recorder) error {
	pal := &palette{chart: LineChart}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	line := pal.color("lineColor", c.LineColor)
	point := pal.color("pointColor", c.PointColor)
	fill := pal.color("fillColor", c.FillColor)
	axis := pal.color("axisColor", c.AxisColor)
	grid := pal.color("gridColor", c.GridColor)
	if pal.err != nil {
		return pal.err
	}

	n := len(c.Data)
	ys := make([]float64, n)
	for i, d := range c.Data {
		ys[i] = d.Y
	}
	cart := layout.NewCartesian(c.Width, c.Height, *c.Padding,
		layout.Range{Max: float64(n - 1)}, layout.DataRange(ys).Nonflat())
	plot := cart.Plot

	pts := make([]recording.Point, n)
	for i, d := range c.Data {
		pts[i] = recording.Pt(cart.IndexX(i, n), cart.MapY(d.Y))
	}

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	ax := newAxes(cart)
	ax.xTicks = nil
	ax.axis, ax.grid, ax.text = axis, grid, fg
	ax.showGrid = *c.ShowGrid
	ax.draw(rec)

	axisPaint := recording.Stroke(axis, 1)
	label := recording.Text(fg, labelSize, recording.AlignCenter)
	stride := max(1, (n+maxXLabels-1)/maxXLabels)
	for i := 0; i < n; i += stride {
		x := pts[i].X
		rec.Line(recording.Pt(x, plot.MaxY), recording.Pt(x, plot.MaxY+tickLength), axisPaint)
		rec.Text(strconv.FormatFloat(c.Data[i].X, 'f', -1, 64),
			recording.Pt(x, plot.MaxY+tickLength+labelSize+2), label)
	}

	if c.FillArea {
		area := make([]recording.Point, 0, n+2)
		area = append(area, pts...)
		area = append(area, recording.Pt(pts[n-1].X, plot.MaxY), recording.Pt(pts[0].X, plot.MaxY))
		rec.Polygon(area, recording.Fill(fill))
	}

	rec.Polyline(pts, recording.Stroke(line, *c.LineWidth))

	if c.ShowPoints {
		for _, p := range pts {
			rec.Circle(p, c.PointRadius, recording.Fill(point))
		}
	}
	return nil
}
