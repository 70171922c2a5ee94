package recording

import "image/color"

// CommandType identifies the type of a command.
// Each command type corresponds to one Surface call.
type CommandType uint8

const (
	// State commands
	CmdSave     CommandType = iota // Save current state
	CmdRestore                     // Restore previous state
	CmdClipRect                    // Intersect the clip with a rectangle
	CmdRotate                      // Rotate about a pivot

	// Drawing commands
	CmdClear    // Fill the whole surface
	CmdLine     // Stroke a line segment
	CmdPolyline // Stroke an open polyline
	CmdPolygon  // Fill or stroke a closed polygon
	CmdCircle   // Fill or stroke a circle
	CmdRect     // Fill or stroke a rectangle
	CmdArc      // Fill or stroke a pie wedge
	CmdText     // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:     "Save",
	CmdRestore:  "Restore",
	CmdClipRect: "ClipRect",
	CmdRotate:   "Rotate",
	CmdClear:    "Clear",
	CmdLine:     "Line",
	CmdPolyline: "Polyline",
	CmdPolygon:  "Polygon",
	CmdCircle:   "Circle",
	CmdRect:     "Rect",
	CmdArc:      "Arc",
	CmdText:     "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are plain values; a Recording can be replayed any number of times.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current clip and transform.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved clip and transform.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// ClipRectCommand intersects the clipping region with a rectangle.
type ClipRectCommand struct {
	Rect Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// RotateCommand rotates subsequent drawing about a pivot point.
type RotateCommand struct {
	// Degrees is the rotation angle, clockwise on screen.
	Degrees float64
	// Pivot is the fixed point of the rotation.
	Pivot Point
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// ClearCommand fills the whole surface with a color.
type ClearCommand struct {
	Color color.NRGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// LineCommand strokes the segment P1-P2.
type LineCommand struct {
	P1, P2 Point
	Paint  Paint
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// PolylineCommand strokes an open polyline through Points.
type PolylineCommand struct {
	Points []Point
	Paint  Paint
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// PolygonCommand closes Points into a polygon and fills or strokes it.
type PolygonCommand struct {
	Points []Point
	Paint  Paint
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

// CircleCommand draws a circle.
type CircleCommand struct {
	Center Point
	Radius float64
	Paint  Paint
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// RectCommand draws an axis-aligned rectangle.
type RectCommand struct {
	Rect  Rect
	Paint Paint
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// ArcCommand draws a wedge of the circle inscribed in Bounds.
// Angles are in degrees, 0 at three o'clock, growing clockwise on screen.
type ArcCommand struct {
	Bounds     Rect
	StartAngle float64
	SweepAngle float64
	Paint      Paint
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// TextCommand draws Text with its baseline at Pos.
// Paint.Align selects which end of the text sits on Pos.X.
type TextCommand struct {
	Text  string
	Pos   Point
	Paint Paint
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
