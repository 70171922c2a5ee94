package recording

import "image/color"

// Style selects whether a shape is filled or outlined.
type Style uint8

const (
	// StyleFill fills the interior of the shape.
	StyleFill Style = iota
	// StyleStroke outlines the shape with the paint width.
	StyleStroke
)

// Align is the horizontal anchor of text relative to its position.
type Align uint8

const (
	// AlignLeft places the text start at the position.
	AlignLeft Align = iota
	// AlignCenter centers the text on the position.
	AlignCenter
	// AlignRight places the text end at the position.
	AlignRight
)

// Paint describes how a command is drawn.
// It is the only styling information a Surface receives.
type Paint struct {
	// Color is the non-premultiplied color.
	Color color.NRGBA
	// Width is the stroke width in pixels.
	Width float64
	// Style is fill or stroke. Lines and polylines are always stroked.
	Style Style
	// TextSize is the font size in pixels for text commands.
	TextSize float64
	// Align is the horizontal text anchor.
	Align Align
	// AntiAlias requests smoothed edges where the surface supports it.
	AntiAlias bool
}

// Fill returns an anti-aliased fill paint.
func Fill(c color.NRGBA) Paint {
	return Paint{Color: c, Style: StyleFill, AntiAlias: true}
}

// Stroke returns an anti-aliased stroke paint of the given width.
func Stroke(c color.NRGBA, width float64) Paint {
	return Paint{Color: c, Width: width, Style: StyleStroke, AntiAlias: true}
}

// Text returns a text paint of the given size and alignment.
func Text(c color.NRGBA, size float64, align Align) Paint {
	return Paint{Color: c, Style: StyleFill, TextSize: size, Align: align, AntiAlias: true}
}
