// Package recording captures chart drawing operations as typed commands.
//
// Chart computation never touches pixels. It records an ordered list of
// commands that is later played back to a Surface, which rasterizes or
// serializes them. The same Recording can be played to several surfaces.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures drawing operations as commands
//   - Recording: Stores commands for playback and inspection
//   - Surface: Renders commands to a specific output format
//
// # Commands
//
//   - State: Save, Restore, ClipRect, Rotate
//   - Drawing: Clear, Line, Polyline, Polygon, Circle, Rect, Arc, Text
//
// Every drawing command carries its own Paint (color, width, fill or
// stroke, text size and alignment), so playback needs no style state.
//
// # Output Formats
//
// Each surface package registers one output format: a name and the file
// extension its surfaces encode. Importing the package with a blank
// identifier registers it, and ForPath then resolves an output path to
// its format:
//
//	import (
//	    "github.com/gogpu/gg-chart/recording"
//	    _ "github.com/gogpu/gg-chart/recording/backends/raster" // ".png"
//	    _ "github.com/gogpu/gg-chart/recording/backends/svg"    // ".svg"
//	)
//
//	f, _ := recording.ForPath("chart.svg")
//	s := f.New()
//	defer s.Close()
//	r.Playback(s)
//	s.WriteTo(out)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after Finish and can be played back from multiple goroutines.
package recording
