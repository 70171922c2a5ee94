// Package svg provides an SVG surface for the recording system, built on
// github.com/ajstarks/svgo.
//
// Coordinates are rounded to whole pixels. Save/Restore map to nested <g>
// elements; ClipRect emits a <clipPath> and opens a clipped group.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/gg-chart/recording"
)

func init() {
	recording.Register("svg", func() recording.WriterSurface {
		return NewBackend()
	})
}

// ErrNotFinished is returned when output is requested before End.
var ErrNotFinished = errors.New("svg: document not finished")

// Backend writes recordings as an SVG document.
type Backend struct {
	buf           bytes.Buffer
	canvas        *svgo.SVG
	width, height int

	// open counts the <g> elements opened since Begin; stack holds the
	// value of open at each Save.
	open  int
	stack []int
	clips int

	done bool
}

var (
	_ recording.Surface       = (*Backend)(nil)
	_ recording.WriterSurface = (*Backend)(nil)
)

// NewBackend creates a new SVG surface.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts the document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("svg: canvas dimensions must be positive")
	}
	b.buf.Reset()
	b.width, b.height = width, height
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	b.open, b.stack, b.clips, b.done = 0, nil, 0, false
	return nil
}

// End closes all open groups and the document.
func (b *Backend) End() error {
	for ; b.open > 0; b.open-- {
		b.canvas.Gend()
	}
	b.canvas.End()
	b.done = true
	return nil
}

// Close releases the buffered document.
func (b *Backend) Close() error {
	b.buf.Reset()
	b.canvas = nil
	return nil
}

// Save remembers how many groups are open.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.open)
}

// Restore closes the groups opened since the matching Save.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	mark := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	for ; b.open > mark; b.open-- {
		b.canvas.Gend()
	}
}

// ClipRect opens a group clipped to r.
func (b *Backend) ClipRect(r recording.Rect) {
	b.clips++
	id := fmt.Sprintf("clip%d", b.clips)
	b.canvas.ClipPath(fmt.Sprintf(`id="%s"`, id))
	b.canvas.Rect(px(r.MinX), px(r.MinY), px(r.Width()), px(r.Height()))
	b.canvas.ClipEnd()
	b.canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	b.open++
}

// Rotate opens a rotated group.
func (b *Backend) Rotate(degrees float64, pivot recording.Point) {
	b.canvas.Gtransform(fmt.Sprintf("rotate(%g,%g,%g)", degrees, pivot.X, pivot.Y))
	b.open++
}

// Clear paints a full-size background rectangle.
func (b *Backend) Clear(c color.NRGBA) {
	b.canvas.Rect(0, 0, b.width, b.height, fillStyle(c))
}

// StrokeLine draws a <line>.
func (b *Backend) StrokeLine(p1, p2 recording.Point, paint recording.Paint) {
	b.canvas.Line(px(p1.X), px(p1.Y), px(p2.X), px(p2.Y), strokeStyle(paint))
}

// StrokePolyline draws a <polyline>.
func (b *Backend) StrokePolyline(points []recording.Point, paint recording.Paint) {
	xs, ys := split(points)
	b.canvas.Polyline(xs, ys, strokeStyle(paint)+";fill:none")
}

// FillPolygon draws a <polygon>.
func (b *Backend) FillPolygon(points []recording.Point, paint recording.Paint) {
	xs, ys := split(points)
	b.canvas.Polygon(xs, ys, style(paint))
}

// FillCircle draws a <circle>.
func (b *Backend) FillCircle(center recording.Point, radius float64, paint recording.Paint) {
	b.canvas.Circle(px(center.X), px(center.Y), px(radius), style(paint))
}

// FillRect draws a <rect>.
func (b *Backend) FillRect(r recording.Rect, paint recording.Paint) {
	b.canvas.Rect(px(r.MinX), px(r.MinY), px(r.Width()), px(r.Height()), style(paint))
}

// FillArc draws a wedge as a <path>; a full turn becomes a <circle>.
func (b *Backend) FillArc(bounds recording.Rect, startAngle, sweepAngle float64, paint recording.Paint) {
	c := bounds.Center()
	r := math.Min(bounds.Width(), bounds.Height()) / 2
	if math.Abs(sweepAngle) >= 360 {
		b.canvas.Circle(px(c.X), px(c.Y), px(r), style(paint))
		return
	}
	if sweepAngle == 0 {
		return
	}
	a1 := startAngle * math.Pi / 180
	a2 := (startAngle + sweepAngle) * math.Pi / 180
	large, sweep := 0, 1
	if math.Abs(sweepAngle) > 180 {
		large = 1
	}
	if sweepAngle < 0 {
		sweep = 0
	}
	d := fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d,%d %.2f,%.2f Z",
		c.X, c.Y,
		c.X+r*math.Cos(a1), c.Y+r*math.Sin(a1),
		r, r, large, sweep,
		c.X+r*math.Cos(a2), c.Y+r*math.Sin(a2))
	b.canvas.Path(d, style(paint))
}

// DrawText draws a <text> element.
func (b *Backend) DrawText(s string, pos recording.Point, paint recording.Paint) {
	anchor := "start"
	switch paint.Align {
	case recording.AlignCenter:
		anchor = "middle"
	case recording.AlignRight:
		anchor = "end"
	}
	size := paint.TextSize
	if size <= 0 {
		size = 12
	}
	b.canvas.Text(px(pos.X), px(pos.Y), s, fmt.Sprintf(
		"font-family:sans-serif;font-size:%gpx;text-anchor:%s;%s", size, anchor, fillStyle(paint.Color)))
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// Extension implements recording.WriterSurface.
func (b *Backend) Extension() string {
	return ".svg"
}

func px(v float64) int {
	return int(math.Round(v))
}

func split(points []recording.Point) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	return xs, ys
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return math.Round(float64(c.A)/255*1000) / 1000
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%g", rgb(c), opacity(c))
}

func strokeStyle(p recording.Paint) string {
	w := p.Width
	if w <= 0 {
		w = 1
	}
	return fmt.Sprintf("stroke:%s;stroke-opacity:%g;stroke-width:%g", rgb(p.Color), opacity(p.Color), w)
}

func style(p recording.Paint) string {
	if p.Style == recording.StyleStroke {
		return strokeStyle(p) + ";fill:none"
	}
	return fillStyle(p.Color)
}
