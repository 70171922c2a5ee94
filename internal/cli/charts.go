package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	chart "github.com/gogpu/gg-chart"
	"github.com/gogpu/gg-chart/layout"
)

func (a *App) newFunctionCmd() *cobra.Command {
	var (
		base    baseOptions
		formula string
		xr, yr  []float64
		grid    bool
	)

	cmd := &cobra.Command{
		Use:   "function",
		Short: "Plot y = f(x)",
		Long: `Plot a single-variable formula over an x range.

Examples:
  ggchart function -f "sin(x) / x" -o sinc.png
  ggchart function -f "1 / x" --x-range -5,5 --y-range -10,10 --grid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.FunctionGraphConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("formula") {
				cfg.Formula = formula
			}
			if f.Changed("x-range") {
				r, err := toRange("x-range", xr)
				if err != nil {
					return err
				}
				cfg.XRange = r
			}
			if f.Changed("y-range") {
				r, err := toRange("y-range", yr)
				if err != nil {
					return err
				}
				cfg.YRange = r
			}
			if f.Changed("grid") {
				cfg.ShowGrid = chart.Bool(grid)
			}
			return a.report(a.renderer().CreateFunctionGraph(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().StringVarP(&formula, "formula", "f", "", "Formula in x, for example \"x^2 - 3\"")
	cmd.Flags().Float64SliceVar(&xr, "x-range", nil, "X range as min,max")
	cmd.Flags().Float64SliceVar(&yr, "y-range", nil, "Y range as min,max")
	cmd.Flags().BoolVar(&grid, "grid", false, "Draw grid lines")
	return cmd
}

func (a *App) newPolarCmd() *cobra.Command {
	var (
		base      baseOptions
		formula   string
		rotations float64
		maxRadius float64
	)

	cmd := &cobra.Command{
		Use:   "polar",
		Short: "Plot r = f(theta)",
		Long: `Plot a polar formula in theta (radians).

Examples:
  ggchart polar -f "cos(4 * theta)" -o rose.svg
  ggchart polar -f "theta / 6" --rotations 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.PolarGraphConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("formula") {
				cfg.Formula = formula
			}
			if f.Changed("rotations") {
				cfg.Rotations = rotations
			}
			if f.Changed("max-radius") {
				cfg.MaxRadius = maxRadius
			}
			return a.report(a.renderer().CreatePolarGraph(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().StringVarP(&formula, "formula", "f", "", "Formula in theta")
	cmd.Flags().Float64Var(&rotations, "rotations", 0, "Full turns to sweep (default 1)")
	cmd.Flags().Float64Var(&maxRadius, "max-radius", 0, "Outer ring radius (default: fit the curve)")
	return cmd
}

func (a *App) newLineCmd() *cobra.Command {
	var (
		base   baseOptions
		points []string
		fill   bool
		marks  bool
	)

	cmd := &cobra.Command{
		Use:   "line",
		Short: "Draw a line chart",
		Long: `Connect data points in order.

Examples:
  ggchart line -p 1,3 -p 2,5 -p 3,4 --points --fill`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.LineChartConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("point") {
				data, err := parsePoints(points)
				if err != nil {
					return err
				}
				cfg.Data = data
			}
			if f.Changed("fill") {
				cfg.FillArea = fill
			}
			if f.Changed("points") {
				cfg.ShowPoints = marks
			}
			return a.report(a.renderer().CreateLineChart(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().StringArrayVarP(&points, "point", "p", nil, "Data point as x,y (repeatable)")
	cmd.Flags().BoolVar(&fill, "fill", false, "Shade the area under the line")
	cmd.Flags().BoolVar(&marks, "points", false, "Mark each data point")
	return cmd
}

func (a *App) newPieCmd() *cobra.Command {
	var (
		base     baseOptions
		items    []string
		labels   bool
		noLegend bool
	)

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Draw a pie chart",
		Long: `Draw one slice per labelled value.

Examples:
  ggchart pie -i Go=45 -i Rust=30 -i Zig=25 --labels`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.PieChartConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("item") {
				data, err := parseItems(items)
				if err != nil {
					return err
				}
				cfg.Data = data
			}
			if f.Changed("labels") {
				cfg.ShowLabels = labels
			}
			if f.Changed("no-legend") {
				cfg.ShowLegend = chart.Bool(!noLegend)
			}
			return a.report(a.renderer().CreatePieChart(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "Slice as label=value (repeatable)")
	cmd.Flags().BoolVar(&labels, "labels", false, "Write percentages on the slices")
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "Omit the legend")
	return cmd
}

func (a *App) newBarCmd() *cobra.Command {
	var (
		base        baseOptions
		items       []string
		orientation string
		grid        bool
	)

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Draw a bar chart",
		Long: `Draw one bar per labelled value.

Examples:
  ggchart bar -i A=10 -i B=20 -o bars.png
  ggchart bar -i A=10 -i B=20 --orientation horizontal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.BarChartConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("item") {
				data, err := parseItems(items)
				if err != nil {
					return err
				}
				cfg.Data = data
			}
			if f.Changed("orientation") {
				cfg.Orientation = layout.Orientation(orientation)
			}
			if f.Changed("grid") {
				cfg.ShowGrid = chart.Bool(grid)
			}
			return a.report(a.renderer().CreateBarChart(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "Bar as label=value (repeatable)")
	cmd.Flags().StringVar(&orientation, "orientation", "", "vertical or horizontal")
	cmd.Flags().BoolVar(&grid, "grid", false, "Draw grid lines")
	return cmd
}

func (a *App) newScatterCmd() *cobra.Command {
	var (
		base       baseOptions
		points     []string
		regression bool
		band       bool
	)

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Draw a scatter plot",
		Long: `Draw data points with an optional least-squares fit.

Examples:
  ggchart scatter -p 1,2 -p 2,4.1 -p 3,5.9 --regression --band`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.ScatterPlotConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("point") {
				data, err := parsePoints(points)
				if err != nil {
					return err
				}
				cfg.Data = data
			}
			if f.Changed("regression") {
				cfg.ShowRegressionLine = regression
			}
			if f.Changed("band") {
				cfg.ShowConfidenceInterval = band
			}
			return a.report(a.renderer().CreateScatterPlot(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().StringArrayVarP(&points, "point", "p", nil, "Data point as x,y (repeatable)")
	cmd.Flags().BoolVar(&regression, "regression", false, "Draw the regression line")
	cmd.Flags().BoolVar(&band, "band", false, "Draw the 95% confidence band")
	return cmd
}

func (a *App) newNormalCmd() *cobra.Command {
	var (
		base        baseOptions
		mean, sd    float64
		levels      []float64
		orientation string
	)

	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Draw a normal distribution",
		Long: `Draw a Gaussian density curve with optional confidence bands.

Examples:
  ggchart normal --mean 100 --stddev 15 --level 0.68 --level 0.95`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg chart.NormalDistributionConfig
			if err := loadConfig(base.configPath, &cfg); err != nil {
				return err
			}
			base.apply(cmd, &cfg.Base)
			f := cmd.Flags()
			if f.Changed("mean") {
				cfg.Mean = mean
			}
			if f.Changed("stddev") {
				cfg.StdDev = chart.Float(sd)
			}
			if f.Changed("level") {
				cfg.ConfidenceLevels = cfg.ConfidenceLevels[:0]
				for _, l := range levels {
					cfg.ConfidenceLevels = append(cfg.ConfidenceLevels, chart.ConfidenceLevel{Level: l})
				}
			}
			if f.Changed("orientation") {
				cfg.Orientation = layout.Orientation(orientation)
			}
			return a.report(a.renderer().CreateNormalDistribution(cfg))
		},
	}

	base.register(cmd)
	cmd.Flags().Float64Var(&mean, "mean", 0, "Mean")
	cmd.Flags().Float64Var(&sd, "stddev", 0, "Standard deviation (default 1; 0 draws a flat curve)")
	cmd.Flags().Float64SliceVar(&levels, "level", nil, "Confidence level: 0.68, 0.95 or 0.99 (repeatable)")
	cmd.Flags().StringVar(&orientation, "orientation", "", "vertical or horizontal")
	return cmd
}

// toRange converts a min,max flag.
func toRange(flag string, v []float64) (layout.Range, error) {
	if len(v) != 2 {
		return layout.Range{}, fmt.Errorf("--%s: want min,max, got %d values", flag, len(v))
	}
	return layout.Range{Min: v[0], Max: v[1]}, nil
}
