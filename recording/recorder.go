package recording

import (
	"fmt"
	"image/color"
)

// Recorder captures drawing operations as commands.
// Use Finish to obtain an immutable Recording that can be replayed to
// different surfaces.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.Clear(white)
//	rec.Circle(recording.Pt(100, 100), 50, recording.Fill(red))
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// depth is the number of unmatched Save calls.
	depth int
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns an immutable Recording containing all recorded commands.
// Unmatched Save calls are closed with Restore commands.
// After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	for r.depth > 0 {
		r.Restore()
	}
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save saves the current clip and transform.
func (r *Recorder) Save() {
	r.depth++
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved state.
// If there is no saved state, this is a no-op.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.commands = append(r.commands, RestoreCommand{})
}

// ClipRect intersects the clip with rect until the matching Restore.
func (r *Recorder) ClipRect(rect Rect) {
	r.commands = append(r.commands, ClipRectCommand{Rect: rect})
}

// Rotate rotates subsequent drawing by degrees about pivot.
func (r *Recorder) Rotate(degrees float64, pivot Point) {
	r.commands = append(r.commands, RotateCommand{Degrees: degrees, Pivot: pivot})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Clear fills the whole canvas with c.
func (r *Recorder) Clear(c color.NRGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// Line strokes the segment p1-p2.
func (r *Recorder) Line(p1, p2 Point, paint Paint) {
	r.commands = append(r.commands, LineCommand{P1: p1, P2: p2, Paint: paint})
}

// Polyline strokes an open polyline. Fewer than two points record nothing.
// The slice is copied.
func (r *Recorder) Polyline(points []Point, paint Paint) {
	if len(points) < 2 {
		return
	}
	r.commands = append(r.commands, PolylineCommand{Points: clonePoints(points), Paint: paint})
}

// Polygon records a closed polygon. Fewer than three points record nothing.
// The slice is copied.
func (r *Recorder) Polygon(points []Point, paint Paint) {
	if len(points) < 3 {
		return
	}
	r.commands = append(r.commands, PolygonCommand{Points: clonePoints(points), Paint: paint})
}

// Circle records a circle.
func (r *Recorder) Circle(center Point, radius float64, paint Paint) {
	r.commands = append(r.commands, CircleCommand{Center: center, Radius: radius, Paint: paint})
}

// Rect records an axis-aligned rectangle.
func (r *Recorder) Rect(rect Rect, paint Paint) {
	r.commands = append(r.commands, RectCommand{Rect: rect, Paint: paint})
}

// Arc records a wedge of the circle inscribed in bounds.
// Angles are in degrees, clockwise from three o'clock.
func (r *Recorder) Arc(bounds Rect, startAngle, sweepAngle float64, paint Paint) {
	r.commands = append(r.commands, ArcCommand{
		Bounds:     bounds,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		Paint:      paint,
	})
}

// Text records s with its baseline at pos.
func (r *Recorder) Text(s string, pos Point, paint Paint) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, TextCommand{Text: s, Pos: pos, Paint: paint})
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Surface implementation, and may be shared
// between goroutines.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands in drawing order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Texts returns the strings of all text commands in drawing order.
func (r *Recording) Texts() []string {
	var out []string
	for _, cmd := range r.commands {
		if c, ok := cmd.(TextCommand); ok {
			out = append(out, c.Text)
		}
	}
	return out
}

// Playback replays the recording to the given surface.
// Begin is called first and End last; Close is left to the caller.
func (r *Recording) Playback(s Surface) error {
	if err := s.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin %dx%d: %w", r.width, r.height, err)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			s.Save()
		case RestoreCommand:
			s.Restore()
		case ClipRectCommand:
			s.ClipRect(c.Rect)
		case RotateCommand:
			s.Rotate(c.Degrees, c.Pivot)
		case ClearCommand:
			s.Clear(c.Color)
		case LineCommand:
			s.StrokeLine(c.P1, c.P2, c.Paint)
		case PolylineCommand:
			s.StrokePolyline(c.Points, c.Paint)
		case PolygonCommand:
			s.FillPolygon(c.Points, c.Paint)
		case CircleCommand:
			s.FillCircle(c.Center, c.Radius, c.Paint)
		case RectCommand:
			s.FillRect(c.Rect, c.Paint)
		case ArcCommand:
			s.FillArc(c.Bounds, c.StartAngle, c.SweepAngle, c.Paint)
		case TextCommand:
			s.DrawText(c.Text, c.Pos, c.Paint)
		}
	}

	return s.End()
}
