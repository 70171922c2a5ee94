package layout

import (
	"math"
	"strconv"
)

// NiceStep returns a step of 1, 2 or 5 times a power of ten that splits
// span into about n intervals.
func NiceStep(span float64, n int) float64 {
	if span <= 0 || n < 1 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 1
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var f float64
	switch r := raw / mag; {
	case r <= 1:
		f = 1
	case r <= 2:
		f = 2
	case r <= 5:
		f = 5
	default:
		f = 10
	}
	return f * mag
}

// Ticks returns the multiples of a nice step that fall inside r.
func Ticks(r Range, n int) []float64 {
	step := NiceStep(r.Max-r.Min, n)
	first := math.Ceil(r.Min/step - 1e-9)
	last := math.Floor(r.Max/step + 1e-9)
	if last < first {
		return nil
	}
	out := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		v := k * step
		if v == 0 {
			v = 0 // no negative zero
		}
		out = append(out, v)
	}
	return out
}

// FormatTick formats v with as many decimals as step needs.
func FormatTick(v, step float64) string {
	dec := 0
	if step > 0 && step < 1 {
		dec = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	s := strconv.FormatFloat(v, 'f', dec, 64)
	if s == "-0" || (len(s) > 2 && s[:2] == "-0" && isZero(s[1:])) {
		s = s[1:]
	}
	return s
}

func isZero(s string) bool {
	for _, c := range s {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}
