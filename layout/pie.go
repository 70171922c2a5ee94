package layout

import (
	"math"
	"strings"

	"golang.org/x/text/width"

	"github.com/gogpu/gg-chart/recording"
)

// StartAngle puts the first slice at twelve o'clock.
const StartAngle = -90.0

// Slice is one wedge of a pie, in degrees clockwise from three o'clock.
type Slice struct {
	Start    float64
	Sweep    float64
	Fraction float64
}

// Mid returns the angle halfway through the slice.
func (s Slice) Mid() float64 {
	return s.Start + s.Sweep/2
}

// PieSlices splits 360° among values in proportion. Negative values count
// as zero. It returns nil when the total is not positive.
func PieSlices(values []float64) []Slice {
	total := 0.0
	for _, v := range values {
		total += math.Max(v, 0)
	}
	if total <= 0 {
		return nil
	}

	out := make([]Slice, len(values))
	angle := StartAngle
	for i, v := range values {
		f := math.Max(v, 0) / total
		out[i] = Slice{Start: angle, Sweep: f * 360, Fraction: f}
		angle += out[i].Sweep
	}
	return out
}

// Pie is the square bounding the pie circle.
type Pie struct {
	Bounds recording.Rect
}

// NewPie centers the largest square that fits in area, shrunk by margin.
func NewPie(area recording.Rect, margin float64) Pie {
	side := math.Max(0, math.Min(area.Width(), area.Height())-2*margin)
	c := area.Center()
	return Pie{Bounds: recording.NewRect(c.X-side/2, c.Y-side/2, side, side)}
}

// Radius returns the pie radius.
func (p Pie) Radius() float64 {
	return p.Bounds.Width() / 2
}

// Point returns the point at fraction f of the radius along angle degrees.
func (p Pie) Point(degrees, f float64) recording.Point {
	c := p.Bounds.Center()
	a := degrees * math.Pi / 180
	r := p.Radius() * f
	return recording.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
}

// Legend is a column of fixed-height rows, each a color swatch followed by
// a label.
type Legend struct {
	Origin    recording.Point
	RowHeight float64
	Swatch    float64
	// Cells is the label budget in terminal cells; 0 means unlimited.
	Cells int
}

// Row returns the swatch rectangle and the label baseline of row i.
func (l Legend) Row(i int) (swatch recording.Rect, label recording.Point) {
	y := l.Origin.Y + float64(i)*l.RowHeight
	swatch = recording.NewRect(l.Origin.X, y, l.Swatch, l.Swatch)
	label = recording.Pt(l.Origin.X+l.Swatch+6, y+l.Swatch*0.85)
	return swatch, label
}

// Label returns s truncated to the legend's cell budget.
func (l Legend) Label(s string) string {
	if l.Cells <= 0 {
		return s
	}
	return TruncateLabel(s, l.Cells)
}

// CellWidth returns the display width of s, counting East Asian wide and
// fullwidth runes as two cells.
func CellWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeCells(r)
	}
	return n
}

func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// TruncateLabel shortens s to at most cells display cells, ending it with
// an ellipsis when anything was cut.
func TruncateLabel(s string, cells int) string {
	if cells <= 0 || CellWidth(s) <= cells {
		return s
	}
	if cells == 1 {
		return "…"
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runeCells(r)
		if used+w > cells-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString("…")
	return b.String()
}
