package chart

import (
	"reflect"
	"time"

	"github.com/gogpu/gg-chart/layout"
)

// Chart names. They prefix synthesized output file names and label errors
// and log records.
const (
	FunctionGraph      = "function_graph"
	PolarGraph         = "polar_graph"
	LineChart          = "line_chart"
	PieChart           = "pie_chart"
	BarChart           = "bar_chart"
	ScatterPlot        = "scatter_plot"
	NormalDistribution = "normal_distribution"
)

// DefaultDeleteDelay is how long an auto-deleted image lives.
const DefaultDeleteDelay = time.Minute

// Base holds the settings shared by every chart.
//
// A zero field means "use the default" when a config is merged over its
// defaults with Merge. Fields where zero is a meaningful setting (widths,
// padding, the standard deviation, toggles that default to on) are
// pointers instead: nil keeps the default and any non-nil value wins.
type Base struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Path is the output file. When empty a path is synthesized as
	// {baseDir}/{chart}_{epochMillis}.png. A ".svg" path selects SVG output.
	Path  string `yaml:"path"`
	Title string `yaml:"title"`

	BackgroundColor string `yaml:"backgroundColor"`
	TextColor       string `yaml:"textColor"`

	// AutoDelete removes the written file after DeleteDelay.
	AutoDelete  bool          `yaml:"autoDelete"`
	DeleteDelay time.Duration `yaml:"deleteDelay"`

	// Extra carries keys no chart recognizes. They are kept, not validated.
	Extra map[string]any `yaml:",inline"`
}

// DataPoint is one (x, y) observation.
type DataPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CategoryDatum is one labelled value of a bar or pie chart.
type CategoryDatum struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// ConfidenceLevel is a band drawn on a normal distribution chart.
// Supported levels are 0.68, 0.95 and 0.99; others are skipped.
type ConfidenceLevel struct {
	Level float64 `yaml:"level"`
	Color string  `yaml:"color"`
}

// DefaultColors is the series palette of bar and pie charts.
var DefaultColors = []string{
	"#4285F4", "#EA4335", "#FBBC05", "#34A853",
	"#FF6D01", "#46BDC6", "#7BAAF7", "#F07B72",
}

// Bool returns a pointer to v, for the optional fields of a config.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v, for the optional fields of a config.
func Float(v float64) *float64 { return &v }

// Pad returns a pointer to p, for a config's Padding.
func Pad(p layout.Padding) *layout.Padding { return &p }

func defaultBase() Base {
	return Base{
		Width:           800,
		Height:          600,
		BackgroundColor: "#FFFFFF",
		TextColor:       "#333333",
		DeleteDelay:     DefaultDeleteDelay,
	}
}

// FunctionGraphConfig plots y = f(x).
type FunctionGraphConfig struct {
	Base `yaml:",inline"`

	// Formula is required, for example "sin(x) / x".
	Formula  string `yaml:"formula"`
	Variable string `yaml:"variable"`

	XRange  layout.Range    `yaml:"xRange"`
	YRange  layout.Range    `yaml:"yRange"`
	Padding *layout.Padding `yaml:"padding"`

	LineColor string   `yaml:"lineColor"`
	LineWidth *float64 `yaml:"lineWidth"`
	AxisColor string   `yaml:"axisColor"`
	GridColor string   `yaml:"gridColor"`
	ShowGrid  *bool    `yaml:"showGrid"`
}

// DefaultFunctionGraphConfig returns the function graph defaults.
func DefaultFunctionGraphConfig() FunctionGraphConfig {
	return FunctionGraphConfig{
		Base:      defaultBase(),
		Variable:  "x",
		XRange:    layout.Range{Min: -10, Max: 10},
		YRange:    layout.Range{Min: -10, Max: 10},
		Padding:   Pad(layout.Uniform(50)),
		LineColor: "#2196F3",
		LineWidth: Float(2),
		AxisColor: "#333333",
		GridColor: "#E0E0E0",
		ShowGrid:  Bool(false),
	}
}

// PolarGraphConfig plots r = f(θ), θ in radians.
type PolarGraphConfig struct {
	Base `yaml:",inline"`

	Formula  string `yaml:"formula"`
	Variable string `yaml:"variable"`

	// Rotations is how many full turns θ sweeps.
	Rotations float64 `yaml:"rotations"`
	// MaxRadius fixes the outer ring. Zero fits the curve.
	MaxRadius float64         `yaml:"maxRadius"`
	Padding   *layout.Padding `yaml:"padding"`

	LineColor string   `yaml:"lineColor"`
	LineWidth *float64 `yaml:"lineWidth"`
	AxisColor string   `yaml:"axisColor"`
	GridColor string   `yaml:"gridColor"`
	// ShowGrid draws the rings and spokes. It defaults to on.
	ShowGrid *bool `yaml:"showGrid"`
}

// DefaultPolarGraphConfig returns the polar graph defaults.
func DefaultPolarGraphConfig() PolarGraphConfig {
	b := defaultBase()
	b.Width = 600
	return PolarGraphConfig{
		Base:      b,
		Variable:  "theta",
		Rotations: 1,
		Padding:   Pad(layout.Uniform(40)),
		LineColor: "#E91E63",
		LineWidth: Float(2),
		AxisColor: "#333333",
		GridColor: "#E0E0E0",
		ShowGrid:  Bool(true),
	}
}

// LineChartConfig connects data points in order. X values label the
// points; they are spaced evenly by index.
type LineChartConfig struct {
	Base `yaml:",inline"`

	// Data is required and needs at least two points.
	Data    []DataPoint     `yaml:"data"`
	Padding *layout.Padding `yaml:"padding"`

	LineColor   string   `yaml:"lineColor"`
	LineWidth   *float64 `yaml:"lineWidth"`
	PointColor  string   `yaml:"pointColor"`
	PointRadius float64  `yaml:"pointRadius"`
	FillColor   string   `yaml:"fillColor"`
	AxisColor   string   `yaml:"axisColor"`
	GridColor   string   `yaml:"gridColor"`

	ShowPoints bool  `yaml:"showPoints"`
	ShowGrid   *bool `yaml:"showGrid"`
	// FillArea shades the area between the line and the plot bottom.
	FillArea bool `yaml:"fillArea"`
}

// DefaultLineChartConfig returns the line chart defaults.
func DefaultLineChartConfig() LineChartConfig {
	return LineChartConfig{
		Base:        defaultBase(),
		Padding:     Pad(layout.Uniform(60)),
		LineColor:   "#2196F3",
		LineWidth:   Float(2),
		PointColor:  "#1976D2",
		PointRadius: 4,
		FillColor:   "#402196F3",
		AxisColor:   "#333333",
		GridColor:   "#E0E0E0",
		ShowGrid:    Bool(false),
	}
}

// PieChartConfig draws one slice per datum.
type PieChartConfig struct {
	Base `yaml:",inline"`

	// Data is required. Negative values count as zero.
	Data []CategoryDatum `yaml:"data"`
	// Colors are assigned to slices in order, cycling.
	Colors  []string        `yaml:"colors"`
	Padding *layout.Padding `yaml:"padding"`

	BorderColor string `yaml:"borderColor"`
	// ShowLabels writes percentages on the slices.
	ShowLabels bool `yaml:"showLabels"`
	// ShowLegend draws the legend column. It defaults to on.
	ShowLegend *bool `yaml:"showLegend"`
	// LegendCells caps legend labels, in display cells.
	LegendCells int `yaml:"legendCells"`
}

// DefaultPieChartConfig returns the pie chart defaults.
func DefaultPieChartConfig() PieChartConfig {
	return PieChartConfig{
		Base:        defaultBase(),
		Colors:      DefaultColors,
		Padding:     Pad(layout.Uniform(30)),
		BorderColor: "#FFFFFF",
		ShowLegend:  Bool(true),
		LegendCells: 24,
	}
}

// BarChartConfig draws one bar per datum.
type BarChartConfig struct {
	Base `yaml:",inline"`

	// Data is required. Values at or below zero draw no bar.
	Data        []CategoryDatum    `yaml:"data"`
	Orientation layout.Orientation `yaml:"orientation"`
	Colors      []string           `yaml:"colors"`
	Padding     *layout.Padding    `yaml:"padding"`

	AxisColor string `yaml:"axisColor"`
	GridColor string `yaml:"gridColor"`
	ShowGrid  *bool  `yaml:"showGrid"`
	// ShowValues writes each value next to its bar. It defaults to on.
	ShowValues *bool `yaml:"showValues"`
}

// DefaultBarChartConfig returns the bar chart defaults.
func DefaultBarChartConfig() BarChartConfig {
	return BarChartConfig{
		Base:        defaultBase(),
		Orientation: layout.Vertical,
		Colors:      DefaultColors,
		Padding:     Pad(layout.Uniform(60)),
		AxisColor:   "#333333",
		GridColor:   "#E0E0E0",
		ShowGrid:    Bool(false),
		ShowValues:  Bool(true),
	}
}

// ScatterPlotConfig draws points with an optional least-squares line and
// its 95% confidence band.
type ScatterPlotConfig struct {
	Base `yaml:",inline"`

	// Data is required.
	Data    []DataPoint     `yaml:"data"`
	Padding *layout.Padding `yaml:"padding"`

	PointColor      string  `yaml:"pointColor"`
	PointRadius     float64 `yaml:"pointRadius"`
	RegressionColor string  `yaml:"regressionColor"`
	ConfidenceColor string  `yaml:"confidenceColor"`
	AxisColor       string  `yaml:"axisColor"`
	GridColor       string  `yaml:"gridColor"`

	ShowRegressionLine     bool  `yaml:"showRegressionLine"`
	ShowConfidenceInterval bool  `yaml:"showConfidenceInterval"`
	ShowGrid               *bool `yaml:"showGrid"`
	// ShowEquation writes the fitted equation and R² next to the
	// regression line. It defaults to on.
	ShowEquation *bool `yaml:"showEquation"`

	// BandResolution is the number of intervals the band is sampled at.
	BandResolution int `yaml:"bandResolution"`
}

// DefaultScatterPlotConfig returns the scatter plot defaults.
func DefaultScatterPlotConfig() ScatterPlotConfig {
	return ScatterPlotConfig{
		Base:            defaultBase(),
		Padding:         Pad(layout.Uniform(60)),
		PointColor:      "#2196F3",
		PointRadius:     5,
		RegressionColor: "#F44336",
		ConfidenceColor: "#40F44336",
		AxisColor:       "#333333",
		GridColor:       "#E0E0E0",
		ShowGrid:        Bool(false),
		ShowEquation:    Bool(true),
		BandResolution:  100,
	}
}

// NormalDistributionConfig draws a Gaussian density curve.
type NormalDistributionConfig struct {
	Base `yaml:",inline"`

	Mean float64 `yaml:"mean"`
	// StdDev is the standard deviation, 1 when unset. Zero or a negative
	// value draws a flat curve with no bands.
	StdDev *float64 `yaml:"stdDev"`

	// Orientation "vertical" puts values on the x axis; "horizontal" on
	// the y axis.
	Orientation layout.Orientation `yaml:"orientation"`
	Padding     *layout.Padding    `yaml:"padding"`

	CurveColor string   `yaml:"curveColor"`
	CurveWidth *float64 `yaml:"curveWidth"`
	FillColor  string   `yaml:"fillColor"`
	AxisColor  string   `yaml:"axisColor"`

	ConfidenceLevels []ConfidenceLevel `yaml:"confidenceLevels"`

	// ShowFill, ShowSigmaTicks and ShowLegend default to on.
	ShowFill       *bool `yaml:"showFill"`
	ShowSigmaTicks *bool `yaml:"showSigmaTicks"`
	ShowLegend     *bool `yaml:"showLegend"`
}

// DefaultNormalDistributionConfig returns the normal distribution defaults.
func DefaultNormalDistributionConfig() NormalDistributionConfig {
	return NormalDistributionConfig{
		Base:           defaultBase(),
		StdDev:         Float(1),
		Orientation:    layout.Vertical,
		Padding:        Pad(layout.Uniform(60)),
		CurveColor:     "#3F51B5",
		CurveWidth:     Float(2),
		FillColor:      "#203F51B5",
		AxisColor:      "#333333",
		ShowFill:       Bool(true),
		ShowSigmaTicks: Bool(true),
		ShowLegend:     Bool(true),
	}
}

// Merge returns defaults with every set field of override applied. A field
// is set when it is non-zero; for pointer fields that means non-nil, so
// Float(0) or Bool(false) override a default.
//
// Embedded structs such as Base are merged field by field. Every other
// field is replaced whole, so a Padding, Range, slice or map in override
// wins outright without being merged with the default. Merge of a zero
// override returns defaults unchanged.
func Merge[T any](defaults, override T) T {
	out := defaults
	dst := reflect.ValueOf(&out).Elem()
	src := reflect.ValueOf(&override).Elem()
	if dst.Kind() != reflect.Struct {
		if !src.IsZero() {
			return override
		}
		return defaults
	}
	mergeStruct(dst, src)
	return out
}

func mergeStruct(dst, src reflect.Value) {
	t := dst.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		sv := src.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			mergeStruct(dst.Field(i), sv)
			continue
		}
		if !sv.IsZero() {
			dst.Field(i).Set(sv)
		}
	}
}
