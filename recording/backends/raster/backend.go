// Package raster provides a raster surface for the recording system.
// It renders recordings to pixel images using gg.Context and encodes them
// as PNG.
//
// # Supported Features
//
//   - Solid color fills and strokes
//   - Rectangular clipping and Save/Restore
//   - Rotation about a pivot (text anchors follow the rotation, glyphs stay upright)
//   - Text in Go Regular at any pixel size
//   - PNG output
//
// # Example
//
//	// Import to register the surface
//	import _ "github.com/gogpu/gg-chart/recording/backends/raster"
//
//	s, _ := recording.NewSurface("raster")
//	defer s.Close()
//	rec.Playback(s)
//	s.WriteTo(w)
package raster

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg-chart/recording"
)

func init() {
	recording.Register("raster", func() recording.WriterSurface {
		return NewBackend()
	})
}

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: surface not started")

// fontSource parses Go Regular once per process.
var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Backend renders recordings to a pixel image using gg.Context.
// It implements recording.Surface and recording.WriterSurface.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int

	faces map[float64]text.Face
	err   error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Surface       = (*Backend)(nil)
	_ recording.WriterSurface = (*Backend)(nil)
)

// NewBackend creates a new raster surface.
// The surface must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates the pixel canvas.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("raster: canvas dimensions must be positive")
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.faces = make(map[float64]text.Face)
	return nil
}

// End finalizes the rendering and reports the first drawing error.
func (b *Backend) End() error {
	return b.err
}

// Close releases the canvas. It is safe to call more than once.
func (b *Backend) Close() error {
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Close()
	b.ctx = nil
	b.faces = nil
	return err
}

// Save saves the current clip and transform onto a stack.
func (b *Backend) Save() {
	b.ctx.Push()
}

// Restore restores the clip and transform from the stack.
func (b *Backend) Restore() {
	b.ctx.Pop()
}

// ClipRect intersects the clip with r.
func (b *Backend) ClipRect(r recording.Rect) {
	b.ctx.ClipRect(r.MinX, r.MinY, r.Width(), r.Height())
}

// Rotate rotates subsequent drawing about pivot.
func (b *Backend) Rotate(degrees float64, pivot recording.Point) {
	b.ctx.RotateAbout(radians(degrees), pivot.X, pivot.Y)
}

// Clear fills the whole canvas.
func (b *Backend) Clear(c color.NRGBA) {
	b.ctx.ClearWithColor(gg.FromColor(c))
}

// StrokeLine strokes the segment p1-p2.
func (b *Backend) StrokeLine(p1, p2 recording.Point, paint recording.Paint) {
	b.ctx.ClearPath()
	b.ctx.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	b.stroke(paint)
}

// StrokePolyline strokes an open polyline.
func (b *Backend) StrokePolyline(points []recording.Point, paint recording.Paint) {
	if len(points) < 2 {
		return
	}
	b.ctx.ClearPath()
	b.tracePoints(points)
	b.stroke(paint)
}

// FillPolygon fills or strokes a closed polygon.
func (b *Backend) FillPolygon(points []recording.Point, paint recording.Paint) {
	if len(points) < 3 {
		return
	}
	b.ctx.ClearPath()
	b.tracePoints(points)
	b.ctx.ClosePath()
	b.paint(paint)
}

// FillCircle fills or strokes a circle.
func (b *Backend) FillCircle(center recording.Point, radius float64, paint recording.Paint) {
	b.ctx.ClearPath()
	b.ctx.DrawCircle(center.X, center.Y, radius)
	b.paint(paint)
}

// FillRect fills or strokes a rectangle.
func (b *Backend) FillRect(r recording.Rect, paint recording.Paint) {
	b.ctx.ClearPath()
	b.ctx.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	b.paint(paint)
}

// FillArc draws a pie wedge of the circle inscribed in bounds.
func (b *Backend) FillArc(bounds recording.Rect, startAngle, sweepAngle float64, paint recording.Paint) {
	if sweepAngle == 0 {
		return
	}
	c := bounds.Center()
	r := math.Min(bounds.Width(), bounds.Height()) / 2
	a1 := radians(startAngle)
	a2 := radians(startAngle + sweepAngle)
	if a2 < a1 {
		a1, a2 = a2, a1
	}

	b.ctx.ClearPath()
	b.ctx.MoveTo(c.X, c.Y)
	b.ctx.LineTo(c.X+r*math.Cos(a1), c.Y+r*math.Sin(a1))
	b.ctx.DrawArc(c.X, c.Y, r, a1, a2)
	b.ctx.ClosePath()
	b.paint(paint)
}

// DrawText draws s with its baseline at pos.
func (b *Backend) DrawText(s string, pos recording.Point, paint recording.Paint) {
	face, err := b.face(paint.TextSize)
	if err != nil {
		b.fail(err)
		return
	}

	// gg draws glyphs in device space, so only the anchor is transformed.
	x, y := b.ctx.TransformPoint(pos.X, pos.Y)

	var ax float64
	switch paint.Align {
	case recording.AlignCenter:
		ax = 0.5
	case recording.AlignRight:
		ax = 1
	}

	b.ctx.SetFont(face)
	b.ctx.SetColor(paint.Color)
	b.ctx.DrawStringAnchored(s, x, y, ax, 0)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// Extension implements recording.WriterSurface.
func (b *Backend) Extension() string {
	return ".png"
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the surface width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the surface height.
func (b *Backend) Height() int {
	return b.height
}

func (b *Backend) tracePoints(points []recording.Point) {
	b.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.ctx.LineTo(p.X, p.Y)
	}
}

// paint fills or strokes the current path according to paint.Style.
func (b *Backend) paint(paint recording.Paint) {
	if paint.Style == recording.StyleStroke {
		b.stroke(paint)
		return
	}
	b.ctx.SetColor(paint.Color)
	b.fail(b.ctx.Fill())
}

func (b *Backend) stroke(paint recording.Paint) {
	width := paint.Width
	if width <= 0 {
		width = 1
	}
	b.ctx.SetColor(paint.Color)
	b.ctx.SetLineWidth(width)
	b.fail(b.ctx.Stroke())
}

// face returns the Go Regular face for size, creating it on first use.
func (b *Backend) face(size float64) (text.Face, error) {
	if size <= 0 {
		size = 12
	}
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	src, err := fontSource()
	if err != nil {
		return nil, err
	}
	f := src.Face(size)
	b.faces[size] = f
	return f, nil
}

// fail keeps the first error for End.
func (b *Backend) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
