package recording

import (
	"image/color"
	"testing"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdRestore, "Restore"},
		{CmdClipRect, "ClipRect"},
		{CmdRotate, "Rotate"},
		{CmdClear, "Clear"},
		{CmdLine, "Line"},
		{CmdPolyline, "Polyline"},
		{CmdPolygon, "Polygon"},
		{CmdCircle, "Circle"},
		{CmdRect, "Rect"},
		{CmdArc, "Arc"},
		{CmdText, "Text"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	black := color.NRGBA{A: 255}
	commands := []Command{
		SaveCommand{},
		RestoreCommand{},
		ClipRectCommand{Rect: NewRect(0, 0, 10, 10)},
		RotateCommand{Degrees: -90},
		ClearCommand{Color: black},
		LineCommand{P1: Pt(0, 0), P2: Pt(1, 1), Paint: Stroke(black, 1)},
		PolylineCommand{Points: []Point{{0, 0}, {1, 1}}},
		PolygonCommand{Points: []Point{{0, 0}, {1, 1}, {0, 1}}},
		CircleCommand{Center: Pt(5, 5), Radius: 2},
		RectCommand{Rect: NewRect(0, 0, 100, 100)},
		ArcCommand{Bounds: NewRect(0, 0, 10, 10), StartAngle: -90, SweepAngle: 90},
		TextCommand{Text: "Hello", Pos: Pt(10, 20)},
	}

	want := []CommandType{
		CmdSave, CmdRestore, CmdClipRect, CmdRotate, CmdClear, CmdLine,
		CmdPolyline, CmdPolygon, CmdCircle, CmdRect, CmdArc, CmdText,
	}

	for i, cmd := range commands {
		if got := cmd.Type(); got != want[i] {
			t.Errorf("command %d: Type() = %v, want %v", i, got, want[i])
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if c := r.Center(); c != Pt(25, 40) {
		t.Errorf("Center() = %v, want (25, 40)", c)
	}
	if !r.Contains(Pt(10, 20)) || r.Contains(Pt(9, 20)) {
		t.Error("Contains() edge handling is wrong")
	}

	n := NewRectFromPoints(5, 5, 1, 1)
	if n.MinX != 1 || n.MaxY != 5 {
		t.Errorf("NewRectFromPoints not normalized: %+v", n)
	}
	if !NewRect(0, 0, 0, 5).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}
