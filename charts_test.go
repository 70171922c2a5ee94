package chart

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg-chart/formula"
	"github.com/gogpu/gg-chart/layout"
	"github.com/gogpu/gg-chart/recording"
	"github.com/gogpu/gg-chart/stats"
)

// commandsOf returns the commands of type T in drawing order.
func commandsOf[T recording.Command](r *recording.Recording) []T {
	var out []T
	for _, cmd := range r.Commands() {
		if c, ok := cmd.(T); ok {
			out = append(out, c)
		}
	}
	return out
}

func hasText(r *recording.Recording, s string) bool {
	for _, t := range r.Texts() {
		if t == s {
			return true
		}
	}
	return false
}

func mustColor(t *testing.T, hex string) color.NRGBA {
	t.Helper()
	c, err := HexToARGB(hex)
	if err != nil {
		t.Fatal(err)
	}
	return c.NRGBA()
}

func TestBarChartVertical(t *testing.T) {
	res, err := NewRenderer().ComputeBarChart(BarChartConfig{
		Data: []CategoryDatum{
			{Label: "A", Value: 10},
			{Label: "B", Value: 20},
		},
		Orientation: layout.Vertical,
	})
	if err != nil {
		t.Fatalf("ComputeBarChart() error = %v", err)
	}

	rects := commandsOf[recording.RectCommand](res.Recording)
	if len(rects) != 2 {
		t.Fatalf("got %d rect commands, want 2", len(rects))
	}
	ha, hb := rects[0].Rect.Height(), rects[1].Rect.Height()
	if math.Abs(hb/ha-2) > 1e-9 {
		t.Errorf("bar heights %v, %v are not 1:2", ha, hb)
	}
	if rects[0].Paint.Style != recording.StyleFill {
		t.Error("bars must be filled")
	}

	for _, s := range []string{"A", "10", "B", "20"} {
		if !hasText(res.Recording, s) {
			t.Errorf("texts %q missing %q", res.Recording.Texts(), s)
		}
	}
}

func TestBarChartHorizontal(t *testing.T) {
	res, err := NewRenderer().ComputeBarChart(BarChartConfig{
		Data:        []CategoryDatum{{Label: "x", Value: 3}, {Label: "y", Value: 6}, {Label: "z", Value: -1}},
		Orientation: layout.Horizontal,
	})
	if err != nil {
		t.Fatalf("ComputeBarChart() error = %v", err)
	}
	rects := commandsOf[recording.RectCommand](res.Recording)
	if len(rects) != 2 {
		t.Fatalf("got %d rect commands, want 2 (negative value draws no bar)", len(rects))
	}
	if w0, w1 := rects[0].Rect.Width(), rects[1].Rect.Width(); math.Abs(w1/w0-2) > 1e-9 {
		t.Errorf("bar widths %v, %v are not 1:2", w0, w1)
	}
	if rects[0].Rect.MinX != rects[1].Rect.MinX {
		t.Error("horizontal bars must share a left edge")
	}
	if !hasText(res.Recording, "-1") {
		t.Error("negative value label missing")
	}
}

func TestBarChartColorsCycle(t *testing.T) {
	res, err := NewRenderer().ComputeBarChart(BarChartConfig{
		Data:   []CategoryDatum{{"a", 1}, {"b", 2}, {"c", 3}},
		Colors: []string{"#FF0000", "#00FF00"},
	})
	if err != nil {
		t.Fatal(err)
	}
	rects := commandsOf[recording.RectCommand](res.Recording)
	if rects[2].Paint.Color != mustColor(t, "#FF0000") {
		t.Errorf("third bar color = %+v, want the first color again", rects[2].Paint.Color)
	}
}

func TestPieChartNoData(t *testing.T) {
	res, err := NewRenderer().ComputePieChart(PieChartConfig{
		Data: []CategoryDatum{{Label: "A", Value: 0}, {Label: "B", Value: 0}},
	})
	if err != nil {
		t.Fatalf("ComputePieChart() error = %v", err)
	}
	if n := res.Recording.Count(recording.CmdArc); n != 0 {
		t.Errorf("got %d arcs, want 0", n)
	}
	if !hasText(res.Recording, NoData) {
		t.Errorf("texts %q missing %q", res.Recording.Texts(), NoData)
	}
}

func TestPieChartSlices(t *testing.T) {
	res, err := NewRenderer().ComputePieChart(PieChartConfig{
		Data:       []CategoryDatum{{"A", 1}, {"B", 3}},
		ShowLabels: true,
	})
	if err != nil {
		t.Fatalf("ComputePieChart() error = %v", err)
	}

	var fills []recording.ArcCommand
	for _, a := range commandsOf[recording.ArcCommand](res.Recording) {
		if a.Paint.Style == recording.StyleFill {
			fills = append(fills, a)
		}
	}
	if len(fills) != 2 {
		t.Fatalf("got %d filled arcs, want 2", len(fills))
	}
	if fills[0].StartAngle != -90 || fills[0].SweepAngle != 90 {
		t.Errorf("first slice = %v+%v, want -90+90", fills[0].StartAngle, fills[0].SweepAngle)
	}
	if fills[1].StartAngle != 0 || fills[1].SweepAngle != 270 {
		t.Errorf("second slice = %v+%v, want 0+270", fills[1].StartAngle, fills[1].SweepAngle)
	}
	for _, s := range []string{"25.0%", "75.0%", "A (25.0%)", "B (75.0%)"} {
		if !hasText(res.Recording, s) {
			t.Errorf("texts %q missing %q", res.Recording.Texts(), s)
		}
	}
}

func TestPieChartWithoutLegend(t *testing.T) {
	res, err := NewRenderer().ComputePieChart(PieChartConfig{
		Data:       []CategoryDatum{{"A", 1}},
		ShowLegend: Bool(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := res.Recording.Count(recording.CmdRect); n != 0 {
		t.Errorf("got %d legend swatches, want 0", n)
	}
}

func TestScatterPlotTwoPointsNoBand(t *testing.T) {
	res, err := NewRenderer().ComputeScatterPlot(ScatterPlotConfig{
		Data:                   []DataPoint{{1, 1}, {2, 3}},
		ShowRegressionLine:     true,
		ShowConfidenceInterval: true,
	})
	if err != nil {
		t.Fatalf("ComputeScatterPlot() error = %v", err)
	}
	if n := res.Recording.Count(recording.CmdPolygon); n != 0 {
		t.Errorf("got %d polygons, want no band for two points", n)
	}
	if n := res.Recording.Count(recording.CmdCircle); n != 2 {
		t.Errorf("got %d points, want 2", n)
	}

	reg := mustColor(t, DefaultScatterPlotConfig().RegressionColor)
	found := false
	for _, l := range commandsOf[recording.LineCommand](res.Recording) {
		if l.Paint.Color == reg {
			found = true
		}
	}
	if !found {
		t.Error("regression line missing")
	}
}

func TestScatterPlotBand(t *testing.T) {
	cfg := ScatterPlotConfig{
		Data:                   []DataPoint{{0, 1}, {1, 0}, {2, 1}, {3, 4}, {4, 3}},
		ShowConfidenceInterval: true,
		BandResolution:         20,
	}
	res, err := NewRenderer().ComputeScatterPlot(cfg)
	if err != nil {
		t.Fatalf("ComputeScatterPlot() error = %v", err)
	}
	polys := commandsOf[recording.PolygonCommand](res.Recording)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1 band", len(polys))
	}
	if n := len(polys[0].Points); n != 42 {
		t.Errorf("band has %d vertices, want 42", n)
	}
	if polys[0].Paint.Color != mustColor(t, DefaultScatterPlotConfig().ConfidenceColor) {
		t.Errorf("band color = %+v", polys[0].Paint.Color)
	}
	// Band without the line draws no equation.
	for _, s := range res.Recording.Texts() {
		if len(s) > 2 && s[:2] == "y " {
			t.Errorf("unexpected equation %q", s)
		}
	}
}

func TestScatterPlotVerticalDataSkipsRegression(t *testing.T) {
	res, err := NewRenderer().ComputeScatterPlot(ScatterPlotConfig{
		Data:               []DataPoint{{5, 1}, {5, 2}, {5, 3}},
		ShowRegressionLine: true,
	})
	if err != nil {
		t.Fatalf("ComputeScatterPlot() error = %v", err)
	}
	if n := res.Recording.Count(recording.CmdCircle); n != 3 {
		t.Errorf("got %d points, want 3", n)
	}
	if n := res.Recording.Count(recording.CmdClipRect); n != 0 {
		t.Errorf("regression drawn for vertical data")
	}
}

func statsRegression(slope, intercept, r2 float64) stats.Regression {
	return stats.Regression{Slope: slope, Intercept: intercept, RSquared: r2}
}

func TestEquation(t *testing.T) {
	tests := []struct {
		slope, intercept, r2 float64
		want                 string
	}{
		{1, 0, 1, "y = 1x + 0 (R² = 1.000)"},
		{1.5, -2, 0.98, "y = 1.5x - 2 (R² = 0.980)"},
	}
	for _, tt := range tests {
		r := statsRegression(tt.slope, tt.intercept, tt.r2)
		if got := Equation(r); got != tt.want {
			t.Errorf("Equation() = %q, want %q", got, tt.want)
		}
	}
}

func TestNormalDistributionBandOrder(t *testing.T) {
	res, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
		ConfidenceLevels: []ConfidenceLevel{
			{Level: 0.68, Color: "#800000FF"},
			{Level: 0.95, Color: "#8000FF00"},
			{Level: 0.5, Color: "#80FF0000"},
		},
		ShowFill: Bool(false),
	})
	if err != nil {
		t.Fatalf("ComputeNormalDistribution() error = %v", err)
	}

	polys := commandsOf[recording.PolygonCommand](res.Recording)
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2 (0.5 is unsupported)", len(polys))
	}
	if polys[0].Paint.Color != mustColor(t, "#8000FF00") {
		t.Error("0.95 band must be drawn first")
	}
	if polys[1].Paint.Color != mustColor(t, "#800000FF") {
		t.Error("0.68 band must be drawn second")
	}
	if len(polys[0].Points) <= len(polys[1].Points) {
		t.Errorf("0.95 band (%d vertices) should be wider than 0.68 band (%d)",
			len(polys[0].Points), len(polys[1].Points))
	}

	// Bands precede the curve so the curve stays visible.
	cmds := res.Recording.Commands()
	lastPoly, curve := -1, -1
	for i, c := range cmds {
		switch c.Type() {
		case recording.CmdPolygon:
			lastPoly = i
		case recording.CmdPolyline:
			curve = i
		}
	}
	if curve < lastPoly {
		t.Error("curve drawn before the bands")
	}
	for _, s := range []string{"μ", "μ+1σ", "μ-3σ", "95% (±1.96σ)", "68% (±1σ)"} {
		if !hasText(res.Recording, s) {
			t.Errorf("texts %q missing %q", res.Recording.Texts(), s)
		}
	}
}

func TestNormalDistributionCurvePeak(t *testing.T) {
	for _, o := range []layout.Orientation{layout.Vertical, layout.Horizontal} {
		t.Run(string(o), func(t *testing.T) {
			res, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
				Mean: 100, StdDev: Float(15), Orientation: o, ShowFill: Bool(false),
			})
			if err != nil {
				t.Fatal(err)
			}
			lines := commandsOf[recording.PolylineCommand](res.Recording)
			if len(lines) != 1 {
				t.Fatalf("got %d polylines, want 1", len(lines))
			}
			pts := lines[0].Points
			mid := pts[len(pts)/2]
			for _, p := range pts {
				if o == layout.Vertical && p.Y < mid.Y-1e-9 {
					t.Fatalf("point %v above the peak %v", p, mid)
				}
				if o == layout.Horizontal && p.X > mid.X+1e-9 {
					t.Fatalf("point %v beyond the peak %v", p, mid)
				}
			}
		})
	}
}

func TestNormalDistributionNegativeStdDev(t *testing.T) {
	res, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
		StdDev:           Float(-1),
		ConfidenceLevels: []ConfidenceLevel{{Level: 0.95}},
		ShowFill:         Bool(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := res.Recording.Count(recording.CmdPolygon); n != 0 {
		t.Errorf("got %d bands for a degenerate distribution", n)
	}
	line := commandsOf[recording.PolylineCommand](res.Recording)[0]
	for _, p := range line.Points {
		if p.Y != line.Points[0].Y {
			t.Fatal("curve of a zero density should be flat")
		}
	}
}

func TestNormalDistributionZeroStdDev(t *testing.T) {
	res, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
		StdDev:           Float(0),
		ConfidenceLevels: []ConfidenceLevel{{Level: 0.68}, {Level: 0.95}},
		ShowFill:         Bool(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := res.Recording.Count(recording.CmdPolygon); n != 0 {
		t.Errorf("got %d bands, want none for stdDev 0", n)
	}
	line := commandsOf[recording.PolylineCommand](res.Recording)[0]
	for _, p := range line.Points {
		if p.Y != line.Points[0].Y {
			t.Fatalf("curve not flat: %v vs %v", p, line.Points[0])
		}
	}
	plot := DefaultNormalDistributionConfig().Padding.Plot(800, 600)
	if line.Points[0].Y != plot.MaxY {
		t.Errorf("flat curve at y=%v, want the baseline %v", line.Points[0].Y, plot.MaxY)
	}
	if hasText(res.Recording, "μ+1σ") {
		t.Error("sigma ticks drawn for stdDev 0")
	}
}

func TestNormalDistributionLevelColors(t *testing.T) {
	t.Run("unsupported level color ignored", func(t *testing.T) {
		_, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
			ConfidenceLevels: []ConfidenceLevel{{Level: 0.9, Color: "not-a-color"}},
		})
		if err != nil {
			t.Fatalf("unsupported level failed the chart: %v", err)
		}
	})
	t.Run("near level gets default color", func(t *testing.T) {
		res, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
			ConfidenceLevels: []ConfidenceLevel{{Level: 0.95 + 1e-12}},
			ShowFill:         Bool(false),
		})
		if err != nil {
			t.Fatal(err)
		}
		polys := commandsOf[recording.PolygonCommand](res.Recording)
		if len(polys) != 1 {
			t.Fatalf("got %d bands, want 1", len(polys))
		}
		if got, want := polys[0].Paint.Color, mustColor(t, defaultLevelColors[0.95]); got != want {
			t.Errorf("band color = %v, want %v", got, want)
		}
	})
}

func TestNormalDistributionHorizontalLabelsRotated(t *testing.T) {
	res, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{
		Orientation: layout.Horizontal,
	})
	if err != nil {
		t.Fatal(err)
	}
	rotations := commandsOf[recording.RotateCommand](res.Recording)
	if len(rotations) != 7 {
		t.Fatalf("got %d rotations, want one per sigma tick (7)", len(rotations))
	}
	for _, r := range rotations {
		if r.Degrees != -90 {
			t.Errorf("rotation %v, want -90", r.Degrees)
		}
	}
	if res.Recording.Count(recording.CmdSave) != res.Recording.Count(recording.CmdRestore) {
		t.Error("unbalanced Save/Restore around rotated labels")
	}

	vertical, err := NewRenderer().ComputeNormalDistribution(NormalDistributionConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if n := vertical.Recording.Count(recording.CmdRotate); n != 0 {
		t.Errorf("vertical chart recorded %d rotations", n)
	}
}

func TestExplicitZeroWidthAndPadding(t *testing.T) {
	res, err := NewRenderer().ComputeLineChart(LineChartConfig{
		Data:      []DataPoint{{1, 1}, {2, 2}},
		Padding:   Pad(layout.Padding{}),
		LineWidth: Float(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	line := commandsOf[recording.PolylineCommand](res.Recording)[0]
	if line.Paint.Width != 0 {
		t.Errorf("line width = %v, want explicit 0", line.Paint.Width)
	}
	if first := line.Points[0]; first.X != 0 {
		t.Errorf("first point x = %v, want 0 with no padding", first.X)
	}
}

func TestLineChart(t *testing.T) {
	res, err := NewRenderer().ComputeLineChart(LineChartConfig{
		Data:       []DataPoint{{2000, 1}, {2001, 3}, {2002, 2}},
		ShowPoints: true,
		FillArea:   true,
	})
	if err != nil {
		t.Fatalf("ComputeLineChart() error = %v", err)
	}
	lines := commandsOf[recording.PolylineCommand](res.Recording)
	if len(lines) != 1 || len(lines[0].Points) != 3 {
		t.Fatalf("polylines = %+v, want one with 3 points", lines)
	}
	p := lines[0].Points
	if d1, d2 := p[1].X-p[0].X, p[2].X-p[1].X; math.Abs(d1-d2) > 1e-9 {
		t.Errorf("x spacing %v, %v is not even", d1, d2)
	}
	if !(p[1].Y < p[2].Y && p[2].Y < p[0].Y) {
		t.Errorf("y order wrong: %v", p)
	}
	if n := res.Recording.Count(recording.CmdCircle); n != 3 {
		t.Errorf("got %d point markers, want 3", n)
	}
	if n := res.Recording.Count(recording.CmdPolygon); n != 1 {
		t.Errorf("got %d area polygons, want 1", n)
	}
	if !hasText(res.Recording, "2001") {
		t.Errorf("texts %q missing x label", res.Recording.Texts())
	}
}

func TestLineChartFlatData(t *testing.T) {
	cfg := LineChartConfig{Data: []DataPoint{{0, 5}, {1, 5}}}
	res, err := NewRenderer().ComputeLineChart(cfg)
	if err != nil {
		t.Fatal(err)
	}
	plot := DefaultLineChartConfig().Padding.Plot(800, 600)
	line := commandsOf[recording.PolylineCommand](res.Recording)[0]
	for _, p := range line.Points {
		if math.Abs(p.Y-plot.Center().Y) > 1e-9 {
			t.Errorf("flat point y = %v, want mid-line %v", p.Y, plot.Center().Y)
		}
	}
}

func TestFunctionGraphReciprocal(t *testing.T) {
	res, err := NewRenderer().ComputeFunctionGraph(FunctionGraphConfig{Formula: "1/x"})
	if err != nil {
		t.Fatalf("ComputeFunctionGraph() error = %v", err)
	}
	lines := commandsOf[recording.PolylineCommand](res.Recording)
	if len(lines) < 2 {
		t.Fatalf("got %d segments, want at least 2", len(lines))
	}
	for _, l := range lines {
		for _, p := range l.Points {
			if !p.IsFinite() {
				t.Fatalf("non-finite point %v", p)
			}
		}
	}
	mid := DefaultFunctionGraphConfig().Padding.Plot(800, 600).Center().X
	if last := lines[0].Points[len(lines[0].Points)-1]; last.X > mid {
		t.Errorf("first segment crosses x=0 at %v", last.X)
	}
}

func TestFunctionGraphClipsCurve(t *testing.T) {
	res, err := NewRenderer().ComputeFunctionGraph(FunctionGraphConfig{Formula: "x^2"})
	if err != nil {
		t.Fatal(err)
	}
	cmds := res.Recording.Commands()
	clip := -1
	for i, c := range cmds {
		if c.Type() == recording.CmdClipRect {
			clip = i
		}
	}
	if clip < 1 || cmds[clip-1].Type() != recording.CmdSave {
		t.Fatal("curve is not drawn inside Save/ClipRect")
	}
	if cmds[clip+1].Type() != recording.CmdPolyline {
		t.Errorf("command after clip = %v, want Polyline", cmds[clip+1].Type())
	}
}

func TestFunctionGraphSampleErrorsAreGaps(t *testing.T) {
	calls := 0
	compiler := formula.CompilerFunc(func(src, variable string) (formula.Func, error) {
		return func(x float64) (float64, error) {
			calls++
			if x > -1 && x < 1 {
				return 0, errors.New("undefined")
			}
			return 0, nil
		}, nil
	})
	res, err := NewRenderer(WithCompiler(compiler)).ComputeFunctionGraph(FunctionGraphConfig{Formula: "f"})
	if err != nil {
		t.Fatalf("ComputeFunctionGraph() error = %v", err)
	}
	if n := res.Recording.Count(recording.CmdPolyline); n != 2 {
		t.Errorf("got %d segments, want 2", n)
	}
	if calls != 701 {
		t.Errorf("evaluated %d samples, want one per plot column (701)", calls)
	}
}

func TestPolarGraphCircle(t *testing.T) {
	res, err := NewRenderer().ComputePolarGraph(PolarGraphConfig{Formula: "2", ShowGrid: Bool(false)})
	if err != nil {
		t.Fatalf("ComputePolarGraph() error = %v", err)
	}
	lines := commandsOf[recording.PolylineCommand](res.Recording)
	if len(lines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(lines))
	}
	pts := lines[0].Points
	if len(pts) != 721 {
		t.Errorf("got %d samples, want 721", len(pts))
	}

	plot := DefaultPolarGraphConfig().Padding.Plot(600, 600)
	c, want := plot.Center(), plot.Width()/2
	for _, p := range pts {
		if r := math.Hypot(p.X-c.X, p.Y-c.Y); math.Abs(r-want) > 1e-6 {
			t.Fatalf("point %v at radius %v, want %v", p, r, want)
		}
	}
	if top := pts[180]; math.Abs(top.Y-plot.MinY) > 1e-6 {
		t.Errorf("θ=90° maps to y=%v, want the top %v", top.Y, plot.MinY)
	}
}

func TestPolarGraphRotations(t *testing.T) {
	res, err := NewRenderer().ComputePolarGraph(PolarGraphConfig{Formula: "theta", Rotations: 2})
	if err != nil {
		t.Fatal(err)
	}
	lines := commandsOf[recording.PolylineCommand](res.Recording)
	if n := len(lines[0].Points); n != 1441 {
		t.Errorf("got %d samples, want 1441", n)
	}
}

func TestValidation(t *testing.T) {
	r := NewRenderer()
	tests := []struct {
		name  string
		run   func() error
		kind  Kind
		field string
	}{
		{"function without formula", func() error {
			_, err := r.ComputeFunctionGraph(FunctionGraphConfig{})
			return err
		}, MissingField, "formula"},
		{"polar without formula", func() error {
			_, err := r.ComputePolarGraph(PolarGraphConfig{Formula: "  "})
			return err
		}, MissingField, "formula"},
		{"line with one point", func() error {
			_, err := r.ComputeLineChart(LineChartConfig{Data: []DataPoint{{1, 1}}})
			return err
		}, MissingField, "data"},
		{"pie without data", func() error {
			_, err := r.ComputePieChart(PieChartConfig{})
			return err
		}, MissingField, "data"},
		{"bar with empty data", func() error {
			_, err := r.ComputeBarChart(BarChartConfig{Data: []CategoryDatum{}})
			return err
		}, MissingField, "data"},
		{"scatter without data", func() error {
			_, err := r.ComputeScatterPlot(ScatterPlotConfig{})
			return err
		}, MissingField, "data"},
		{"bad formula", func() error {
			_, err := r.ComputeFunctionGraph(FunctionGraphConfig{Formula: "sin("})
			return err
		}, InvalidFormula, "formula"},
		{"bad color", func() error {
			_, err := r.ComputeBarChart(BarChartConfig{Data: []CategoryDatum{{"a", 1}}, AxisColor: "#12"})
			return err
		}, InvalidColor, "axisColor"},
		{"bad level color", func() error {
			_, err := r.ComputeNormalDistribution(NormalDistributionConfig{
				ConfidenceLevels: []ConfidenceLevel{{Level: 0.95, Color: "blue"}},
			})
			return err
		}, InvalidColor, "confidenceLevels[0].color"},
		{"negative width", func() error {
			_, err := r.ComputeScatterPlot(ScatterPlotConfig{Base: Base{Width: -5}, Data: []DataPoint{{1, 1}}})
			return err
		}, ResourceFailure, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if e.Kind != tt.kind || e.Field != tt.field {
				t.Errorf("error = %v (kind %v, field %q), want kind %v field %q", e, e.Kind, e.Field, tt.kind, tt.field)
			}
			if e.Chart == "" {
				t.Error("error has no chart name")
			}
		})
	}
}

func TestFailuresAreLogged(t *testing.T) {
	buf := captureLogs(t)
	_, _ = NewRenderer().ComputePieChart(PieChartConfig{})
	out := buf.String()
	for _, want := range []string{"level=ERROR", "chart=pie_chart", `kind="missing field"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestTitle(t *testing.T) {
	res, err := NewRenderer().ComputeBarChart(BarChartConfig{
		Base: Base{Title: "Sales"},
		Data: []CategoryDatum{{"a", 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	texts := commandsOf[recording.TextCommand](res.Recording)
	if texts[0].Text != "Sales" || texts[0].Paint.Align != recording.AlignCenter || texts[0].Pos.X != 400 {
		t.Errorf("first text = %+v, want the centered title", texts[0])
	}
}
