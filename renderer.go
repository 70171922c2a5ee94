package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gogpu/gg-chart/formula"
	"github.com/gogpu/gg-chart/recording"

	// Surfaces selected by output extension.
	_ "github.com/gogpu/gg-chart/recording/backends/raster"
	_ "github.com/gogpu/gg-chart/recording/backends/svg"
)

// Result is a computed chart: its resolved output path and the drawing
// commands that render it.
type Result struct {
	Chart     string
	Path      string
	Recording *recording.Recording

	autoDelete  bool
	deleteDelay time.Duration
}

// Renderer computes charts and writes them out. Its settings are fixed at
// construction, so one Renderer may serve concurrent calls.
//
// Example:
//
//	r := chart.NewRenderer(chart.WithBaseDir("out"))
//	path, err := r.CreateBarChart(chart.BarChartConfig{
//	    Data: []chart.CategoryDatum{{Label: "A", Value: 10}, {Label: "B", Value: 20}},
//	})
type Renderer struct {
	surface   string
	sink      ImageSink
	scheduler Scheduler
	compiler  formula.Compiler
	baseDir   string
	now       func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSurface forces the named surface (see recording.Formats) instead
// of choosing one from the output extension. Synthesized paths then take
// that surface's extension.
func WithSurface(name string) Option {
	return func(r *Renderer) {
		r.surface = name
	}
}

// WithSink sets where encoded images are stored. The default is FileSink.
func WithSink(s ImageSink) Option {
	return func(r *Renderer) {
		r.sink = s
	}
}

// WithScheduler sets the deletion scheduler used for AutoDelete.
func WithScheduler(s Scheduler) Option {
	return func(r *Renderer) {
		r.scheduler = s
	}
}

// WithCompiler sets the formula compiler of function and polar graphs.
// The default is formula.Expr.
func WithCompiler(c formula.Compiler) Option {
	return func(r *Renderer) {
		r.compiler = c
	}
}

// WithBaseDir sets the directory of synthesized output paths.
func WithBaseDir(dir string) Option {
	return func(r *Renderer) {
		r.baseDir = dir
	}
}

// WithClock sets the time source of synthesized output paths.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// DefaultBaseDir is where charts without a Path are written.
func DefaultBaseDir() string {
	return filepath.Join(os.TempDir(), "gg-chart")
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		sink:      FileSink{},
		scheduler: TimerScheduler{},
		compiler:  formula.Expr{},
		baseDir:   DefaultBaseDir(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = sync.OnceValue(func() *Renderer { return NewRenderer() })

// plotter is a chart config merged over its defaults.
type plotter interface {
	name() string
	base() Base
	validate() error
	plot(r *Renderer, rec *recording.Recorder) error
}

// compute runs one chart invocation up to the finished recording.
func (r *Renderer) compute(p plotter) (*Result, error) {
	res, err := r.record(p)
	if err != nil {
		return nil, r.fail(p.name(), err)
	}
	return res, nil
}

func (r *Renderer) record(p plotter) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	b := p.base()
	if b.Width <= 0 || b.Height <= 0 {
		return nil, &Error{Kind: ResourceFailure, Chart: p.name(),
			Err: fmt.Errorf("canvas %dx%d", b.Width, b.Height)}
	}
	path := b.Path
	if path == "" {
		path = filepath.Join(r.baseDir, fmt.Sprintf("%s_%d%s", p.name(), r.now().UnixMilli(), r.defaultExtension()))
	}

	rec := recording.NewRecorder(b.Width, b.Height)
	if err := p.plot(r, rec); err != nil {
		return nil, err
	}
	out := rec.Finish()
	Logger().Debug("chart computed", "chart", p.name(), "path", path, "commands", len(out.Commands()))

	return &Result{
		Chart:       p.name(),
		Path:        path,
		Recording:   out,
		autoDelete:  b.AutoDelete,
		deleteDelay: max(b.DeleteDelay, 0),
	}, nil
}

// create computes and writes a chart.
func (r *Renderer) create(p plotter) (string, error) {
	res, err := r.compute(p)
	if err != nil {
		return "", err
	}
	if err := r.Write(res); err != nil {
		return "", err
	}
	return res.Path, nil
}

// Write renders res on a surface and stores the encoded image at
// res.Path. When the chart asked for AutoDelete, deletion is scheduled.
func (r *Renderer) Write(res *Result) error {
	if err := r.write(res); err != nil {
		return r.fail(res.Chart, err)
	}
	Logger().Info("chart written", "chart", res.Chart, "path", res.Path)

	if res.autoDelete && r.scheduler != nil {
		r.scheduler.ScheduleAfter(res.Path, res.deleteDelay)
		Logger().Debug("delete scheduled", "path", res.Path, "delay", res.deleteDelay)
	}
	return nil
}

func (r *Renderer) write(res *Result) error {
	name := r.surfaceName(res.Path)
	s, err := recording.NewSurface(name)
	if err != nil {
		return &Error{Kind: ResourceFailure, Chart: res.Chart, Err: err}
	}
	defer func() {
		if err := s.Close(); err != nil {
			Logger().Warn("surface release failed", "surface", name, "err", err)
		}
	}()

	if err := res.Recording.Playback(s); err != nil {
		return &Error{Kind: ResourceFailure, Chart: res.Chart, Err: err}
	}
	if err := r.sink.Write(res.Path, s); err != nil {
		return &Error{Kind: ResourceFailure, Chart: res.Chart, Err: err}
	}
	return nil
}

// defaultSurface encodes paths whose extension no format claims.
const defaultSurface = "raster"

// surfaceName picks the forced surface, else the format registered for
// the path's extension, else the default.
func (r *Renderer) surfaceName(path string) string {
	if r.surface != "" {
		return r.surface
	}
	if f, ok := recording.ForPath(path); ok {
		return f.Name
	}
	return defaultSurface
}

// defaultExtension is the extension of synthesized paths: the forced
// surface's when it has one, else ".png".
func (r *Renderer) defaultExtension() string {
	if f, ok := recording.Lookup(r.surface); ok && f.Extension != "" {
		return f.Extension
	}
	return ".png"
}

// fail stamps err with the chart name and logs it.
func (r *Renderer) fail(chart string, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: ResourceFailure, Err: err}
	}
	if e.Chart == "" {
		e.Chart = chart
	}
	Logger().Error("chart failed", "chart", chart, "kind", e.Kind.String(), "err", e)
	return e
}

// --------------------------------------------------------------------------
// Entry points
// --------------------------------------------------------------------------

// ComputeFunctionGraph computes a function graph without writing it.
func (r *Renderer) ComputeFunctionGraph(cfg FunctionGraphConfig) (*Result, error) {
	return r.compute(Merge(DefaultFunctionGraphConfig(), cfg))
}

// CreateFunctionGraph writes a function graph and returns its path.
func (r *Renderer) CreateFunctionGraph(cfg FunctionGraphConfig) (string, error) {
	return r.create(Merge(DefaultFunctionGraphConfig(), cfg))
}

// ComputePolarGraph computes a polar graph without writing it.
func (r *Renderer) ComputePolarGraph(cfg PolarGraphConfig) (*Result, error) {
	return r.compute(Merge(DefaultPolarGraphConfig(), cfg))
}

// CreatePolarGraph writes a polar graph and returns its path.
func (r *Renderer) CreatePolarGraph(cfg PolarGraphConfig) (string, error) {
	return r.create(Merge(DefaultPolarGraphConfig(), cfg))
}

// ComputeLineChart computes a line chart without writing it.
func (r *Renderer) ComputeLineChart(cfg LineChartConfig) (*Result, error) {
	return r.compute(Merge(DefaultLineChartConfig(), cfg))
}

// CreateLineChart writes a line chart and returns its path.
func (r *Renderer) CreateLineChart(cfg LineChartConfig) (string, error) {
	return r.create(Merge(DefaultLineChartConfig(), cfg))
}

// ComputePieChart computes a pie chart without writing it.
func (r *Renderer) ComputePieChart(cfg PieChartConfig) (*Result, error) {
	return r.compute(Merge(DefaultPieChartConfig(), cfg))
}

// CreatePieChart writes a pie chart and returns its path.
func (r *Renderer) CreatePieChart(cfg PieChartConfig) (string, error) {
	return r.create(Merge(DefaultPieChartConfig(), cfg))
}

// ComputeBarChart computes a bar chart without writing it.
func (r *Renderer) ComputeBarChart(cfg BarChartConfig) (*Result, error) {
	return r.compute(Merge(DefaultBarChartConfig(), cfg))
}

// CreateBarChart writes a bar chart and returns its path.
func (r *Renderer) CreateBarChart(cfg BarChartConfig) (string, error) {
	return r.create(Merge(DefaultBarChartConfig(), cfg))
}

// ComputeScatterPlot computes a scatter plot without writing it.
func (r *Renderer) ComputeScatterPlot(cfg ScatterPlotConfig) (*Result, error) {
	return r.compute(Merge(DefaultScatterPlotConfig(), cfg))
}

// CreateScatterPlot writes a scatter plot and returns its path.
func (r *Renderer) CreateScatterPlot(cfg ScatterPlotConfig) (string, error) {
	return r.create(Merge(DefaultScatterPlotConfig(), cfg))
}

// ComputeNormalDistribution computes a normal distribution chart without
// writing it.
func (r *Renderer) ComputeNormalDistribution(cfg NormalDistributionConfig) (*Result, error) {
	return r.compute(Merge(DefaultNormalDistributionConfig(), cfg))
}

// CreateNormalDistribution writes a normal distribution chart and returns
// its path.
func (r *Renderer) CreateNormalDistribution(cfg NormalDistributionConfig) (string, error) {
	return r.create(Merge(DefaultNormalDistributionConfig(), cfg))
}

// CreateFunctionGraph writes a function graph with the default Renderer.
func CreateFunctionGraph(cfg FunctionGraphConfig) (string, error) {
	return defaultRenderer().CreateFunctionGraph(cfg)
}

// CreatePolarGraph writes a polar graph with the default Renderer.
func CreatePolarGraph(cfg PolarGraphConfig) (string, error) {
	return defaultRenderer().CreatePolarGraph(cfg)
}

// CreateLineChart writes a line chart with the default Renderer.
func CreateLineChart(cfg LineChartConfig) (string, error) {
	return defaultRenderer().CreateLineChart(cfg)
}

// CreatePieChart writes a pie chart with the default Renderer.
func CreatePieChart(cfg PieChartConfig) (string, error) {
	return defaultRenderer().CreatePieChart(cfg)
}

// CreateBarChart writes a bar chart with the default Renderer.
func CreateBarChart(cfg BarChartConfig) (string, error) {
	return defaultRenderer().CreateBarChart(cfg)
}

// CreateScatterPlot writes a scatter plot with the default Renderer.
func CreateScatterPlot(cfg ScatterPlotConfig) (string, error) {
	return defaultRenderer().CreateScatterPlot(cfg)
}

// CreateNormalDistribution writes a normal distribution chart with the
// default Renderer.
func CreateNormalDistribution(cfg NormalDistributionConfig) (string, error) {
	return defaultRenderer().CreateNormalDistribution(cfg)
}
