// Package sample walks a one-dimensional domain and turns a function into
// drawable polylines.
//
// Evaluation failures and non-finite results are not errors here: they end
// the current segment, so asymptotes and undefined regions show up as gaps
// instead of lines drawn across them.
package sample

import (
	"math"

	"github.com/gogpu/gg-chart/recording"
)

// Func maps a domain parameter to a point on the surface.
// An error marks t as a discontinuity.
type Func func(t float64) (recording.Point, error)

// Segment is a maximal run of consecutive valid samples.
type Segment []recording.Point

// Sampler describes the domain to walk.
type Sampler struct {
	// Start and End bound the domain, both inclusive.
	Start, End float64
	// Step is the distance between parameters. It must be positive.
	Step float64
	// Break, if set, reports whether two consecutive valid samples
	// must not be joined.
	Break func(prev, next recording.Point) bool
}

// Count returns the number of parameters the sampler visits.
func (s Sampler) Count() int {
	if s.Step <= 0 || s.End < s.Start || math.IsNaN(s.Start) || math.IsNaN(s.End) {
		return 0
	}
	// The epsilon keeps End itself when the span is an exact multiple
	// of Step up to rounding.
	return int(math.Floor((s.End-s.Start)/s.Step+1e-9)) + 1
}

// Sample evaluates f over the domain and returns its segments in order.
// The i-th parameter is Start + i*Step, so long domains do not drift.
func (s Sampler) Sample(f Func) []Segment {
	n := s.Count()
	var (
		segments []Segment
		current  Segment
	)
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, current)
			current = nil
		}
	}

	for i := 0; i < n; i++ {
		t := s.Start + float64(i)*s.Step
		p, err := f(t)
		if err != nil || !p.IsFinite() {
			flush()
			continue
		}
		if len(current) > 0 && s.Break != nil && s.Break(current[len(current)-1], p) {
			flush()
		}
		current = append(current, p)
	}
	flush()
	return segments
}

// Points returns the total number of samples across segments.
func Points(segments []Segment) int {
	n := 0
	for _, seg := range segments {
		n += len(seg)
	}
	return n
}
