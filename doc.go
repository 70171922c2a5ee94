// Package chart computes charts as ordered drawing commands and renders
// them to PNG or SVG files.
//
// # Overview
//
// Seven chart types are supported:
//
//   - Function graph: y = f(x) for a formula such as "sin(x) / x"
//   - Polar graph: r = f(θ) over one or more turns
//   - Line chart: data points joined in order
//   - Pie chart: labelled values as slices, with a legend
//   - Bar chart: labelled values as vertical or horizontal bars
//   - Scatter plot: points with an optional least-squares line and 95%
//     confidence band
//   - Normal distribution: a Gaussian density with confidence bands
//
// # Quick Start
//
//	path, err := chart.CreateBarChart(chart.BarChartConfig{
//	    Data: []chart.CategoryDatum{
//	        {Label: "A", Value: 10},
//	        {Label: "B", Value: 20},
//	    },
//	})
//
// Every config is merged over its Default*Config with Merge, so only the
// fields that differ from the defaults need to be set. Settings where zero
// means something, such as StdDev or Padding, are pointers so that an
// explicit zero survives the merge:
//
//	cfg := chart.NormalDistributionConfig{StdDev: chart.Float(0)}
//
// When Path is empty
// the image is written under DefaultBaseDir.
//
// # Computing Without Output
//
// A Renderer's Compute methods stop at the recording, a list of typed
// drawing commands that can be inspected or played back to any
// recording.Surface:
//
//	res, err := chart.NewRenderer().ComputeScatterPlot(cfg)
//	for _, cmd := range res.Recording.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Errors
//
// Failures are returned as *Error carrying a Kind. Use errors.Is with
// ErrMissingField, ErrInvalidFormula, ErrInvalidColor or ErrResource.
// Problems with single samples, such as 1/x at zero, are not errors: the
// curve gets a gap instead.
//
// # Logging
//
// The package logs nothing unless SetLogger is called.
package chart
