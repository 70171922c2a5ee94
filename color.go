package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ARGB is an 8-bit color with straight (non-premultiplied) alpha.
type ARGB struct {
	A, R, G, B uint8
}

// HexToARGB decodes "#RRGGBB" (fully opaque) or "#AARRGGBB".
// The leading '#' is optional. Any other length or a non-hex digit
// yields an InvalidColor error.
//
// Example:
//
//	c, _ := chart.HexToARGB("#80112233") // ARGB{A: 128, R: 17, G: 34, B: 51}
func HexToARGB(hex string) (ARGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return ARGB{}, &Error{Kind: InvalidColor, Err: fmt.Errorf("%q: want #RRGGBB or #AARRGGBB", hex)}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return ARGB{}, &Error{Kind: InvalidColor, Err: fmt.Errorf("%q: not hexadecimal", hex)}
	}
	if len(digits) == 6 {
		v |= 0xFF000000
	}
	return ARGB{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// NRGBA converts c to the standard library color type.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String formats c as "#AARRGGBB".
func (c ARGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// palette decodes configured colors for one invocation. The first failure
// is kept and later lookups return the zero color.
type palette struct {
	chart string
	err   error
}

func (p *palette) color(field, hex string) color.NRGBA {
	if p.err != nil {
		return color.NRGBA{}
	}
	c, err := HexToARGB(hex)
	if err != nil {
		e := *err.(*Error)
		e.Chart, e.Field = p.chart, field
		p.err = &e
		return color.NRGBA{}
	}
	return c.NRGBA()
}

// colors decodes a list field; entry i is reported as field[i].
func (p *palette) colors(field string, hexes []string) []color.NRGBA {
	out := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		out[i] = p.color(fmt.Sprintf("%s[%d]", field, i), h)
	}
	return out
}
