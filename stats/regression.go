// Package stats holds the numerical machinery behind the scatter and
// normal-distribution charts: least-squares regression, Gaussian densities
// and confidence bands.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/gg-chart/recording"
)

// Regression is an ordinary least-squares fit y = Slope*x + Intercept.
//
// Sxx and ResidualStdErr are only computed for N >= 3; below that they are
// zero and no confidence band can be built.
type Regression struct {
	Slope     float64
	Intercept float64
	N         int

	MeanX          float64
	Sxx            float64
	ResidualStdErr float64

	// RSquared is the coefficient of determination, 1 when y is constant.
	RSquared float64
}

// LinearRegression fits a line through pts.
// It reports false when there are fewer than two points or all x values
// are identical.
func LinearRegression(pts []recording.Point) (Regression, bool) {
	n := len(pts)
	if n < 2 {
		return Regression{}, false
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	xy := make([]float64, n)
	xx := make([]float64, n)
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
		xy[i] = p.X * p.Y
		xx[i] = p.X * p.X
	}

	fn := float64(n)
	sumX, sumY := floats.Sum(xs), floats.Sum(ys)
	denom := fn*floats.Sum(xx) - sumX*sumX
	if denom == 0 {
		return Regression{}, false
	}

	slope := (fn*floats.Sum(xy) - sumX*sumY) / denom
	meanX, meanY := stat.Mean(xs, nil), stat.Mean(ys, nil)
	r := Regression{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		N:         n,
		MeanX:     meanX,
	}

	var ssRes, ssTot float64
	for i := range xs {
		d := ys[i] - r.Predict(xs[i])
		ssRes += d * d
		m := ys[i] - meanY
		ssTot += m * m
	}
	r.RSquared = 1
	if ssTot > 0 {
		r.RSquared = 1 - ssRes/ssTot
	}

	if n >= 3 {
		for _, x := range xs {
			d := x - meanX
			r.Sxx += d * d
		}
		r.ResidualStdErr = math.Sqrt(ssRes / float64(n-2))
	}
	return r, true
}

// Predict returns the fitted y at x.
func (r Regression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// CanBand reports whether a confidence band is defined for the fit.
func (r Regression) CanBand() bool {
	return r.N > 2 && r.Sxx > 0
}

// StdErrAt is the standard error of the mean prediction at x.
func (r Regression) StdErrAt(x float64) float64 {
	d := x - r.MeanX
	return r.ResidualStdErr * math.Sqrt(1/float64(r.N)+d*d/r.Sxx)
}
