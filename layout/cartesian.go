package layout

import (
	"math"

	"github.com/gogpu/gg-chart/recording"
)

// Padding is the space between the canvas edge and the plot area, in pixels.
type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Uniform returns a padding of v on every side.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Plot returns the plot rectangle of a width x height canvas.
// A padding larger than the canvas yields an empty rectangle, never an
// inverted one.
func (p Padding) Plot(width, height int) recording.Rect {
	r := recording.Rect{
		MinX: p.Left,
		MinY: p.Top,
		MaxX: float64(width) - p.Right,
		MaxY: float64(height) - p.Bottom,
	}
	r.MaxX = math.Max(r.MaxX, r.MinX)
	r.MaxY = math.Max(r.MaxY, r.MinY)
	return r
}

// Range is a closed interval of data values.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Span returns Max-Min, or 1 when the range is degenerate.
func (r Range) Span() float64 {
	if s := r.Max - r.Min; s != 0 {
		return s
	}
	return 1
}

// Nonflat widens a degenerate range by half a unit on each side so that
// flat data maps to the middle of the plot.
func (r Range) Nonflat() Range {
	if r.Min != r.Max {
		return r
	}
	return Range{Min: r.Min - 0.5, Max: r.Max + 0.5}
}

// Expand grows the range by frac of its span on both ends.
func (r Range) Expand(frac float64) Range {
	d := (r.Max - r.Min) * frac
	return Range{Min: r.Min - d, Max: r.Max + d}
}

// DataRange returns the smallest range holding every value.
// An empty slice yields the zero range.
func DataRange(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}

// Cartesian maps a data rectangle onto a plot rectangle.
type Cartesian struct {
	Plot recording.Rect
	X, Y Range
}

// NewCartesian lays out a plot of the given data ranges on a canvas.
func NewCartesian(width, height int, pad Padding, x, y Range) Cartesian {
	return Cartesian{Plot: pad.Plot(width, height), X: x, Y: y}
}

// MapX maps a data x to a surface x.
func (c Cartesian) MapX(v float64) float64 {
	return c.Plot.MinX + (v-c.X.Min)/c.X.Span()*c.Plot.Width()
}

// MapY maps a data y to a surface y. Larger values are higher on screen.
func (c Cartesian) MapY(v float64) float64 {
	return c.Plot.MaxY - (v-c.Y.Min)/c.Y.Span()*c.Plot.Height()
}

// Map maps a data point to a surface point.
func (c Cartesian) Map(p recording.Point) recording.Point {
	return recording.Pt(c.MapX(p.X), c.MapY(p.Y))
}

// IndexX spaces n items evenly across the plot width, first at the left
// edge and last at the right. A single item sits in the middle.
func (c Cartesian) IndexX(i, n int) float64 {
	if n < 2 {
		return c.Plot.Center().X
	}
	return c.Plot.MinX + float64(i)/float64(n-1)*c.Plot.Width()
}

// Origin returns the surface position of data (0, 0) clamped to the plot,
// where the axes cross.
func (c Cartesian) Origin() recording.Point {
	x := math.Max(c.Plot.MinX, math.Min(c.Plot.MaxX, c.MapX(0)))
	y := math.Max(c.Plot.MinY, math.Min(c.Plot.MaxY, c.MapY(0)))
	return recording.Pt(x, y)
}
