package layout

import (
	"math"

	"github.com/gogpu/gg-chart/recording"
)

// Orientation is the direction bars grow in.
type Orientation string

// Supported orientations. Anything else is treated as Vertical.
const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Headroom is the factor applied to the largest value so the longest bar
// stops short of the plot edge.
const Headroom = 1.1

// Bars lays out n categories. Each bar is one unit wide with half a unit
// of spacing, split evenly before and after it, so the category axis holds
// n*1.5 units.
type Bars struct {
	Plot        recording.Rect
	Orientation Orientation
	N           int
	// Unit is the bar thickness in pixels.
	Unit float64
	// Max is the value that maps to the full plot length.
	Max float64
}

// NewBars lays out values in plot. Values at or below zero draw nothing.
func NewBars(plot recording.Rect, values []float64, o Orientation) Bars {
	if o != Horizontal {
		o = Vertical
	}
	b := Bars{Plot: plot, Orientation: o, N: len(values)}
	if b.N == 0 {
		return b
	}

	axis := plot.Width()
	if o == Horizontal {
		axis = plot.Height()
	}
	b.Unit = axis / (float64(b.N) * 1.5)

	maxV := 0.0
	for _, v := range values {
		maxV = math.Max(maxV, v)
	}
	if maxV <= 0 {
		maxV = 1
	}
	b.Max = maxV * Headroom
	return b
}

// Length returns the bar length in pixels for v.
func (b Bars) Length(v float64) float64 {
	if v <= 0 || b.Max == 0 {
		return 0
	}
	full := b.Plot.Height()
	if b.Orientation == Horizontal {
		full = b.Plot.Width()
	}
	return v / b.Max * full
}

// offset is the leading edge of bar i along the category axis.
func (b Bars) offset(i int) float64 {
	return (float64(i)*1.5 + 0.25) * b.Unit
}

// Bar returns the rectangle of bar i holding v.
func (b Bars) Bar(i int, v float64) recording.Rect {
	l := b.Length(v)
	if b.Orientation == Horizontal {
		y := b.Plot.MinY + b.offset(i)
		return recording.NewRect(b.Plot.MinX, y, l, b.Unit)
	}
	x := b.Plot.MinX + b.offset(i)
	return recording.NewRect(x, b.Plot.MaxY-l, b.Unit, l)
}

// Slot returns the middle of category i on the category axis.
func (b Bars) Slot(i int) float64 {
	mid := b.offset(i) + b.Unit/2
	if b.Orientation == Horizontal {
		return b.Plot.MinY + mid
	}
	return b.Plot.MinX + mid
}

// ValueAxis maps a value to its position on the value axis.
func (b Bars) ValueAxis(v float64) float64 {
	if b.Orientation == Horizontal {
		return b.Plot.MinX + v/b.Max*b.Plot.Width()
	}
	return b.Plot.MaxY - v/b.Max*b.Plot.Height()
}
