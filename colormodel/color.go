// Package colormodel parses hex and rgb()/rgba() color strings and computes
// the derived colors cshade shows: invert, shade and shade of the invert.
//
// All values are immutable, transforms return new [Color] values with the same
// [Space] as their source.
package colormodel // import "fortio.org/cshade/colormodel"

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"fortio.org/safecast"
)

// Space is the maximum representable value of a channel.
type Space int

const (
	// Space15 is the single hex digit per channel encoding (#rgb, #rgba).
	Space15 Space = 0xf
	// Space255 is the two hex digits per channel encoding (#rrggbb, #rrggbbaa, rgb()).
	Space255 Space = 0xff
)

func (s Space) String() string {
	switch s {
	case Space15:
		return "15"
	case Space255:
		return "255"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// Color is a red, green, blue and optional alpha value within a [Space].
// When HasAlpha is false the alpha channel is not tracked (fully opaque) and A is ignored.
// Scaled colors are single digit colors whose R, G, B hold the digit multiplied
// by 16 (the historical short hex convention), A always holds the literal digit.
type Color struct {
	R, G, B  int
	A        int
	HasAlpha bool
	Space    Space
	Scaled   bool
}

// New returns an opaque, alpha untracked, color in the given space.
func New(space Space, r, g, b int) Color {
	return Color{R: r, G: g, B: b, Space: space}
}

// WithAlpha returns a copy of c tracking the given alpha value.
func (c Color) WithAlpha(a int) Color {
	c.A = a
	c.HasAlpha = true
	return c
}

// WithoutAlpha returns a copy of c with the alpha channel no longer tracked.
func (c Color) WithoutAlpha() Color {
	c.A = 0
	c.HasAlpha = false
	return c
}

// Ceiling is the value channels are complemented against: the space in the
// units the channels are stored in.
func (c Color) Ceiling() int {
	if c.Scaled {
		return int(c.Space) * 0x10
	}
	return int(c.Space)
}

// Lightest is max(R, G, B).
func (c Color) Lightest() int {
	return max(c.R, c.G, c.B)
}

// Darkest is min(R, G, B).
func (c Color) Darkest() int {
	return min(c.R, c.G, c.B)
}

// Invert returns the complement of each color channel (rgb <-> cmy).
func (c Color) Invert() Color {
	return c.InvertAround(c.Ceiling())
}

// InvertAround is Invert with an explicit base: each channel becomes base - channel.
func (c Color) InvertAround(base int) Color {
	c.R = base - c.R
	c.G = base - c.G
	c.B = base - c.B
	return c
}

// Shade shifts the lightness of c around its own ceiling, keeping the spread
// between channels (the hue) intact.
func (c Color) Shade() Color {
	return c.ShadeAround(c.Ceiling())
}

// ShadeAround is Shade with an explicit base: each channel becomes
// channel + base - darkest - lightest.
func (c Color) ShadeAround(base int) Color {
	shift := base - c.Darkest() - c.Lightest()
	c.R += shift
	c.G += shift
	c.B += shift
	return c
}

// Hex returns the #rgb[a] or #rrggbb[aa] form of c. Out of range channels are clamped.
func (c Color) Hex() string {
	var sb strings.Builder
	sb.Grow(9)
	sb.WriteByte('#')
	space := int(c.Space)
	if c.Space == Space255 {
		for _, v := range [3]int{c.R, c.G, c.B} {
			fmt.Fprintf(&sb, "%02x", clamp(v, space))
		}
		if c.HasAlpha {
			fmt.Fprintf(&sb, "%02x", clamp(c.A, space))
		}
		return sb.String()
	}
	for _, v := range [3]int{c.R, c.G, c.B} {
		if c.Scaled {
			v = int(math.RoundToEven(float64(v) / 0x10))
		}
		fmt.Fprintf(&sb, "%x", clamp(v, space))
	}
	if c.HasAlpha {
		fmt.Fprintf(&sb, "%x", clamp(c.A, space))
	}
	return sb.String()
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA returns the color projected onto 0-255 channels, alpha is 255 when not tracked.
func (c Color) RGBA() [4]uint8 {
	r, g, b := c.R, c.G, c.B
	if c.Space == Space15 && !c.Scaled {
		r, g, b = clamp(r, 0xf)*0x11, clamp(g, 0xf)*0x11, clamp(b, 0xf)*0x11
	}
	a := 0xff
	if c.HasAlpha {
		a = clamp(c.A, int(c.Space))
		if c.Space == Space15 {
			a *= 0x11
		}
	}
	return [4]uint8{
		safecast.MustConv[uint8](clamp(r, 0xff)),
		safecast.MustConv[uint8](clamp(g, 0xff)),
		safecast.MustConv[uint8](clamp(b, 0xff)),
		safecast.MustConv[uint8](a),
	}
}

// NRGBA is RGBA as an image/color value.
func (c Color) NRGBA() color.NRGBA {
	v := c.RGBA()
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
