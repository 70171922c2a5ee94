// Package layout maps data values to surface coordinates.
//
// There is one mapper per chart family:
//
//   - Cartesian: linear x/y plots (function graph, line chart, scatter plot)
//   - Polar: polar function graphs
//   - Bars: categorical bar charts, vertical or horizontal
//   - Pie: radial slices and their legend
//
// All mappers are plain values computed from the canvas size and padding.
// Surface coordinates put the origin at the top-left corner with y growing
// downward, so every mapper inverts the data y axis.
package layout
