package stats

import "github.com/gogpu/gg-chart/recording"

// Critical95 is the two-sided 95% critical value used for regression bands.
// It is the normal approximation for every sample size, not a t quantile.
const Critical95 = 1.96

// Band is a confidence region around a regression line, in data space.
type Band struct {
	Upper []recording.Point
	Lower []recording.Point
}

// Polygon returns the closed outline: Upper left to right, then Lower
// right to left.
func (b Band) Polygon() []recording.Point {
	out := make([]recording.Point, 0, len(b.Upper)+len(b.Lower))
	out = append(out, b.Upper...)
	for i := len(b.Lower) - 1; i >= 0; i-- {
		out = append(out, b.Lower[i])
	}
	return out
}

// RegressionBand samples resolution+1 x values across [xMin, xMax] and
// bounds the fitted line by ±critical standard errors of the mean.
// It reports false when the regression cannot support a band.
func RegressionBand(r Regression, xMin, xMax, critical float64, resolution int) (Band, bool) {
	if !r.CanBand() || resolution < 1 {
		return Band{}, false
	}
	b := Band{
		Upper: make([]recording.Point, resolution+1),
		Lower: make([]recording.Point, resolution+1),
	}
	step := (xMax - xMin) / float64(resolution)
	for i := 0; i <= resolution; i++ {
		x := xMin + float64(i)*step
		y := r.Predict(x)
		margin := critical * r.StdErrAt(x)
		b.Upper[i] = recording.Pt(x, y+margin)
		b.Lower[i] = recording.Pt(x, y-margin)
	}
	return b, true
}
