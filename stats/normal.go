package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalPDF is the Gaussian density at x. It is 0 when sd <= 0.
func NormalPDF(x, mean, sd float64) float64 {
	if sd <= 0 {
		return 0
	}
	return distuv.Normal{Mu: mean, Sigma: sd}.Prob(x)
}

// zScores maps the supported two-sided confidence levels to their
// standard normal critical values.
var zScores = []struct {
	level, z float64
}{
	{0.68, 1.0},
	{0.95, 1.96},
	{0.99, 2.576},
}

// CanonicalLevel maps level onto the supported level within 1e-9 of it.
func CanonicalLevel(level float64) (float64, bool) {
	for _, e := range zScores {
		if math.Abs(e.level-level) < 1e-9 {
			return e.level, true
		}
	}
	return 0, false
}

// ZScore returns the critical value for a supported confidence level.
func ZScore(level float64) (float64, bool) {
	for _, e := range zScores {
		if math.Abs(e.level-level) < 1e-9 {
			return e.z, true
		}
	}
	return 0, false
}

// Interval is the slab mean ± Z·sd for one confidence level.
type Interval struct {
	Level  float64
	Z      float64
	Lo, Hi float64
}

// NormalBands returns the intervals for the supported levels, widest first,
// so that narrower bands are drawn over wider ones. Interval.Level is the
// canonical level. Unsupported levels are skipped.
func NormalBands(levels []float64, mean, sd float64) []Interval {
	out := make([]Interval, 0, len(levels))
	for _, l := range levels {
		level, ok := CanonicalLevel(l)
		if !ok {
			continue
		}
		z, _ := ZScore(level)
		out = append(out, Interval{Level: level, Z: z, Lo: mean - z*sd, Hi: mean + z*sd})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Level > out[j].Level
	})
	return out
}

// PDFCache holds densities for evenly spaced x values, one per pixel column
// (or row) of the plotted axis. The curve and every band read the same
// values.
type PDFCache struct {
	x0, dx float64
	values []float64
	max    float64
}

// NewPDFCache evaluates the density at n points from xMin to xMax inclusive.
func NewPDFCache(n int, xMin, xMax, mean, sd float64) *PDFCache {
	if n < 2 {
		n = 2
	}
	c := &PDFCache{
		x0:     xMin,
		dx:     (xMax - xMin) / float64(n-1),
		values: make([]float64, n),
	}
	for i := range c.values {
		v := NormalPDF(c.X(i), mean, sd)
		c.values[i] = v
		c.max = math.Max(c.max, v)
	}
	return c
}

// Len returns the number of cached samples.
func (c *PDFCache) Len() int { return len(c.values) }

// At returns the density of sample i.
func (c *PDFCache) At(i int) float64 { return c.values[i] }

// X returns the x value of sample i.
func (c *PDFCache) X(i int) float64 { return c.x0 + float64(i)*c.dx }

// Max returns the largest cached density.
func (c *PDFCache) Max() float64 { return c.max }

// Index returns the sample nearest to x, clamped to the cache.
func (c *PDFCache) Index(x float64) int {
	if c.dx == 0 {
		return 0
	}
	i := int(math.Round((x - c.x0) / c.dx))
	return max(0, min(len(c.values)-1, i))
}
