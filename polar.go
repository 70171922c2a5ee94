package chart

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
	"github.com/gogpu/gg-chart/sample"
)

// polarStep is the angular sampling step in degrees.
const polarStep = 0.5

func (c PolarGraphConfig) name() string { return PolarGraph }
func (c PolarGraphConfig) base() Base   { return c.Base }

func (c PolarGraphConfig) validate() error {
	if strings.TrimSpace(c.Formula) == "" {
		return &Error{Kind: MissingField, Chart: PolarGraph, Field: "formula"}
	}
	return nil
}

func (c PolarGraphConfig) plot(r *Renderer, rec *recording.Recorder) error {
	f, err := r.compiler.Compile(c.Formula, c.Variable)
	if err != nil {
		return &Error{Kind: InvalidFormula, Chart: PolarGraph, Field: "formula", Err: err}
	}

	pal := &palette{chart: PolarGraph}
	bg := pal.color("backgroundColor", c.BackgroundColor)
	fg := pal.color("textColor", c.TextColor)
	line := pal.color("lineColor", c.LineColor)
	axis := pal.color("axisColor", c.AxisColor)
	grid := pal.color("gridColor", c.GridColor)
	if pal.err != nil {
		return pal.err
	}

	// Samples hold (θ, r) until the radius scale is known.
	rotations := c.Rotations
	if rotations <= 0 {
		rotations = 1
	}
	failed := 0
	s := sample.Sampler{Start: 0, End: 360 * rotations, Step: polarStep}
	segments := s.Sample(func(deg float64) (recording.Point, error) {
		theta := deg * math.Pi / 180
		v, err := f(theta)
		if err != nil {
			failed++
		}
		return recording.Pt(theta, v), err
	})

	maxR := c.MaxRadius
	if maxR <= 0 {
		for _, seg := range segments {
			for _, p := range seg {
				maxR = math.Max(maxR, math.Abs(p.Y))
			}
		}
	}
	if maxR <= 0 {
		maxR = 1
	}
	Logger().Debug("polar function sampled", "chart", PolarGraph, "formula", c.Formula,
		"segments", len(segments), "failed", failed, "maxRadius", maxR)

	plot := c.Padding.Plot(c.Width, c.Height)
	pol := layout.NewPolar(plot, maxR)

	rec.Clear(bg)
	drawTitle(rec, c.Base, c.Padding.Top, fg)

	if *c.ShowGrid {
		drawPolarGrid(rec, pol, maxR, grid, fg)
	}
	axisPaint := recording.Stroke(axis, 1)
	outer := pol.Radius(maxR)
	rec.Line(recording.Pt(pol.Center.X-outer, pol.Center.Y), recording.Pt(pol.Center.X+outer, pol.Center.Y), axisPaint)
	rec.Line(recording.Pt(pol.Center.X, pol.Center.Y-outer), recording.Pt(pol.Center.X, pol.Center.Y+outer), axisPaint)

	mapped := make([]sample.Segment, len(segments))
	for i, seg := range segments {
		m := make(sample.Segment, len(seg))
		for j, p := range seg {
			m[j] = pol.Map(p.Y, p.X)
		}
		mapped[i] = m
	}

	rec.Save()
	rec.ClipRect(plot)
	drawSegments(rec, mapped, recording.Stroke(line, *c.LineWidth))
	rec.Restore()
	return nil
}

// drawPolarGrid strokes rings at nice radii and spokes every 30°.
func drawPolarGrid(rec *recording.Recorder, pol layout.Polar, maxR float64, grid, text color.NRGBA) {
	paint := recording.Stroke(grid, 1)
	outer := pol.Radius(maxR)
	for deg := 0; deg < 360; deg += 30 {
		rec.Line(pol.Center, pol.Map(maxR, float64(deg)*math.Pi/180), paint)
	}

	step := layout.NiceStep(maxR, 4)
	label := recording.Text(text, labelSize, recording.AlignLeft)
	for _, v := range layout.Ticks(layout.Range{Max: maxR}, 4) {
		if v <= 0 {
			continue
		}
		rec.Circle(pol.Center, pol.Radius(v), paint)
		rec.Text(layout.FormatTick(v, step), recording.Pt(pol.Center.X+pol.Radius(v)+2, pol.Center.Y-3), label)
	}
	rec.Circle(pol.Center, outer, paint)

	angle := recording.Text(text, labelSize, recording.AlignCenter)
	for deg := 0; deg < 360; deg += 90 {
		p := pol.Map(maxR*1.08, float64(deg)*math.Pi/180)
		rec.Text(strconv.Itoa(deg)+"°", recording.Pt(p.X, p.Y+labelSize/3), angle)
	}
}
