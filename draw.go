package chart

import (
	"image/color"
	"math"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
	"github.com/gogpu/gg-chart/sample"
)

const (
	titleSize  = 18
	labelSize  = 12
	tickLength = 5
	// tickTarget is the number of intervals axes aim for.
	tickTarget = 6
)

// drawTitle centers the title in the top padding.
func drawTitle(rec *recording.Recorder, b Base, top float64, c color.NRGBA) {
	if b.Title == "" {
		return
	}
	y := math.Max(titleSize, top/2+titleSize/3)
	rec.Text(b.Title, recording.Pt(float64(b.Width)/2, y), recording.Text(c, titleSize, recording.AlignCenter))
}

// axes decorates a cartesian plot with axis lines, tick marks, tick labels
// and an optional grid.
type axes struct {
	cart layout.Cartesian

	// Nil tick slices draw no ticks on that axis.
	xTicks, yTicks []float64
	xStep, yStep   float64

	axis, grid, text color.NRGBA
	showGrid         bool
	// throughOrigin draws the axes where x=0 and y=0 cross instead of
	// along the left and bottom plot edges.
	throughOrigin bool
}

func newAxes(cart layout.Cartesian) axes {
	return axes{
		cart:   cart,
		xTicks: layout.Ticks(cart.X, tickTarget),
		yTicks: layout.Ticks(cart.Y, tickTarget),
		xStep:  layout.NiceStep(cart.X.Max-cart.X.Min, tickTarget),
		yStep:  layout.NiceStep(cart.Y.Max-cart.Y.Min, tickTarget),
	}
}

func (a axes) draw(rec *recording.Recorder) {
	plot := a.cart.Plot
	gridPaint := recording.Stroke(a.grid, 1)
	axisPaint := recording.Stroke(a.axis, 1)

	if a.showGrid {
		for _, v := range a.xTicks {
			x := a.cart.MapX(v)
			rec.Line(recording.Pt(x, plot.MinY), recording.Pt(x, plot.MaxY), gridPaint)
		}
		for _, v := range a.yTicks {
			y := a.cart.MapY(v)
			rec.Line(recording.Pt(plot.MinX, y), recording.Pt(plot.MaxX, y), gridPaint)
		}
	}

	origin := recording.Pt(plot.MinX, plot.MaxY)
	if a.throughOrigin {
		origin = a.cart.Origin()
	}
	rec.Line(recording.Pt(plot.MinX, origin.Y), recording.Pt(plot.MaxX, origin.Y), axisPaint)
	rec.Line(recording.Pt(origin.X, plot.MinY), recording.Pt(origin.X, plot.MaxY), axisPaint)

	below := recording.Text(a.text, labelSize, recording.AlignCenter)
	for _, v := range a.xTicks {
		x := a.cart.MapX(v)
		rec.Line(recording.Pt(x, origin.Y), recording.Pt(x, origin.Y+tickLength), axisPaint)
		rec.Text(layout.FormatTick(v, a.xStep), recording.Pt(x, origin.Y+tickLength+labelSize+2), below)
	}
	left := recording.Text(a.text, labelSize, recording.AlignRight)
	for _, v := range a.yTicks {
		y := a.cart.MapY(v)
		rec.Line(recording.Pt(origin.X-tickLength, y), recording.Pt(origin.X, y), axisPaint)
		rec.Text(layout.FormatTick(v, a.yStep), recording.Pt(origin.X-tickLength-3, y+labelSize/3), left)
	}
}

// drawSegments strokes each segment; a lone point becomes a dot.
func drawSegments(rec *recording.Recorder, segments []sample.Segment, paint recording.Paint) {
	for _, seg := range segments {
		if len(seg) == 1 {
			rec.Circle(seg[0], math.Max(paint.Width/2, 1), recording.Fill(paint.Color))
			continue
		}
		rec.Polyline(seg, paint)
	}
}
