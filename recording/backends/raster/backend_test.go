package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gogpu/gg-chart/recording"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestBackendRegistration(t *testing.T) {
	f, ok := recording.ForPath("chart.PNG")
	if !ok || f.Name != "raster" {
		t.Fatalf("ForPath(chart.PNG) = %q, %v; want raster", f.Name, ok)
	}

	s, err := recording.NewSurface("raster")
	if err != nil {
		t.Fatalf("failed to create raster surface: %v", err)
	}
	if _, ok := s.(*Backend); !ok {
		t.Fatalf("surface is %T, want *raster.Backend", s)
	}
}

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 80); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if b.Width() != 100 || b.Height() != 80 {
		t.Errorf("size = %dx%d, want 100x80", b.Width(), b.Height())
	}
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := b.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if bounds := img.Bounds(); bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("Image bounds = %v, want 100x80", bounds)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if b.Image() != nil {
		t.Error("Image() after Close should be nil")
	}
}

func TestBackendRejectsEmptyCanvas(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close after failed Begin = %v", err)
	}
}

func TestBackendFillRect(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.Clear(white)
	rec.Rect(recording.NewRect(10, 10, 50, 50), recording.Fill(red))

	b := NewBackend()
	defer b.Close()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	inside := color.NRGBAModel.Convert(b.Image().At(35, 35)).(color.NRGBA)
	if inside.R < 200 || inside.G > 50 || inside.B > 50 {
		t.Errorf("pixel inside rect = %v, want red", inside)
	}
	outside := color.NRGBAModel.Convert(b.Image().At(80, 80)).(color.NRGBA)
	if outside.R < 200 || outside.G < 200 || outside.B < 200 {
		t.Errorf("pixel outside rect = %v, want white", outside)
	}
}

func TestBackendClipRect(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	rec.Clear(white)
	rec.Save()
	rec.ClipRect(recording.NewRect(0, 0, 50, 100))
	rec.Rect(recording.NewRect(0, 0, 100, 100), recording.Fill(red))
	rec.Restore()

	b := NewBackend()
	defer b.Close()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	clipped := color.NRGBAModel.Convert(b.Image().At(75, 50)).(color.NRGBA)
	if clipped.G < 200 {
		t.Errorf("pixel outside clip = %v, want white", clipped)
	}
}

func TestBackendWriteTo(t *testing.T) {
	rec := recording.NewRecorder(40, 30)
	rec.Clear(white)
	rec.Arc(recording.NewRect(5, 5, 20, 20), -90, 120, recording.Fill(red))
	rec.Polyline([]recording.Point{{0, 0}, {20, 20}, {40, 0}}, recording.Stroke(red, 2))
	rec.Text("42", recording.Pt(20, 28), recording.Text(red, 10, recording.AlignCenter))

	b := NewBackend()
	defer b.Close()
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
	if b.Extension() != ".png" {
		t.Errorf("Extension() = %q, want .png", b.Extension())
	}
}

func TestBackendWriteToBeforeBegin(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewBackend().WriteTo(&buf); err != ErrNotStarted {
		t.Errorf("WriteTo before Begin = %v, want ErrNotStarted", err)
	}
}
