package layout

import (
	"testing"

	"github.com/gogpu/gg-chart/recording"
)

func TestBarsVertical(t *testing.T) {
	plot := recording.NewRect(0, 0, 300, 220)
	b := NewBars(plot, []float64{10, 20}, Vertical)

	if !near(b.Unit, 100) {
		t.Fatalf("Unit = %v, want 100", b.Unit)
	}
	if !near(b.Max, 22) {
		t.Fatalf("Max = %v, want 22", b.Max)
	}

	a, c := b.Bar(0, 10), b.Bar(1, 20)
	if !near(a.MinX, 25) || !near(c.MinX, 175) {
		t.Errorf("bar x = %v, %v, want 25, 175", a.MinX, c.MinX)
	}
	if !near(a.Height(), 100) || !near(c.Height(), 200) {
		t.Errorf("bar heights = %v, %v, want 100, 200", a.Height(), c.Height())
	}
	if a.MaxY != plot.MaxY || c.MaxY != plot.MaxY {
		t.Error("vertical bars must rest on the plot bottom")
	}
	if !near(b.Slot(1), 225) {
		t.Errorf("Slot(1) = %v, want 225", b.Slot(1))
	}
}

func TestBarsHorizontal(t *testing.T) {
	plot := recording.NewRect(10, 0, 110, 150)
	b := NewBars(plot, []float64{5, 10}, Horizontal)

	if !near(b.Unit, 50) {
		t.Fatalf("Unit = %v, want 50", b.Unit)
	}
	r := b.Bar(1, 10)
	if r.MinX != 10 {
		t.Errorf("bar starts at x = %v, want 10", r.MinX)
	}
	if !near(r.Width(), 100) {
		t.Errorf("longest bar width = %v, want 100", r.Width())
	}
	if !near(r.MinY, 87.5) || !near(r.Height(), 50) {
		t.Errorf("bar y, height = %v, %v, want 87.5, 50", r.MinY, r.Height())
	}
}

func TestBarsNonPositive(t *testing.T) {
	b := NewBars(recording.NewRect(0, 0, 100, 100), []float64{-3, 0}, Vertical)
	if b.Max != Headroom {
		t.Errorf("Max = %v, want %v", b.Max, Headroom)
	}
	if l := b.Length(-3); l != 0 {
		t.Errorf("Length(-3) = %v, want 0", l)
	}
}

func TestBarsUnknownOrientation(t *testing.T) {
	b := NewBars(recording.NewRect(0, 0, 100, 100), []float64{1}, "diagonal")
	if b.Orientation != Vertical {
		t.Errorf("Orientation = %q, want vertical", b.Orientation)
	}
}
