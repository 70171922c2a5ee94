package layout

import (
	"math"

	"github.com/gogpu/gg-chart/recording"
)

// Polar maps (r, θ) to surface coordinates around a center.
type Polar struct {
	Center recording.Point
	// Scale is pixels per unit of radius.
	Scale float64
}

// NewPolar fits a circle of data radius maxR inside plot.
// A non-positive maxR is treated as 1.
func NewPolar(plot recording.Rect, maxR float64) Polar {
	if maxR <= 0 {
		maxR = 1
	}
	return Polar{
		Center: plot.Center(),
		Scale:  math.Min(plot.Width(), plot.Height()) / 2 / maxR,
	}
}

// Map converts radius r at angle theta (radians, counterclockwise from the
// positive x axis) to a surface point.
func (p Polar) Map(r, theta float64) recording.Point {
	return recording.Pt(
		p.Center.X+r*math.Cos(theta)*p.Scale,
		p.Center.Y-r*math.Sin(theta)*p.Scale,
	)
}

// Radius returns the surface radius of data radius r.
func (p Polar) Radius(r float64) float64 {
	return r * p.Scale
}
