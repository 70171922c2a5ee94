package recording

import (
	"image/color"
	"io"
)

// Surface is the interface that all drawing surfaces must implement.
// Surfaces receive chart drawing commands and translate them to their
// output format (raster pixels, SVG elements, etc.).
//
// A Surface is single use: Begin once, draw, End, write the output, then
// Close. Close must be safe to call on every exit path, including after a
// failed Begin.
//
// # Implementation Contract
//
// Each surface must:
//  1. Register its format in init() with recording.Register
//  2. Handle all Surface methods (even if no-op for some)
//  3. Manage own state stack for Save/Restore
//  4. Honor Paint.Style for circles, rectangles, polygons and arcs
type Surface interface {
	// Lifecycle methods

	// Begin allocates the canvas at the given dimensions.
	Begin(width, height int) error

	// End finalizes rendering. It reports the first drawing error, if any.
	End() error

	// Close releases the canvas. It is idempotent.
	Close() error

	// State management methods

	// Save pushes the current clip and transform.
	Save()

	// Restore pops the state pushed by Save. It is a no-op on an empty stack.
	Restore()

	// ClipRect intersects the clip with r.
	ClipRect(r Rect)

	// Rotate rotates subsequent drawing by degrees about pivot.
	Rotate(degrees float64, pivot Point)

	// Drawing methods

	// Clear fills the whole canvas.
	Clear(c color.NRGBA)

	StrokeLine(p1, p2 Point, paint Paint)
	StrokePolyline(points []Point, paint Paint)
	FillPolygon(points []Point, paint Paint)
	FillCircle(center Point, radius float64, paint Paint)
	FillRect(r Rect, paint Paint)

	// FillArc draws a pie wedge of the circle inscribed in bounds.
	// Angles are in degrees, clockwise from three o'clock.
	FillArc(bounds Rect, startAngle, sweepAngle float64, paint Paint)

	// DrawText draws s with its baseline at pos, anchored by paint.Align.
	DrawText(s string, pos Point, paint Paint)
}

// WriterSurface extends Surface with encoded output.
type WriterSurface interface {
	Surface

	// WriteTo writes the encoded image to w.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)

	// Extension is the file extension of the encoded format, with the dot.
	Extension() string
}
