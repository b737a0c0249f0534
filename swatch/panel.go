// Package swatch holds the display side of cshade: the four labeled color
// panels, their 2x2 layout, a PNG rendering of them and clipboard output.
// It only consumes [colormodel.Color] values.
package swatch // import "fortio.org/cshade/swatch"

import (
	"fortio.org/cshade/colormodel"
)

// Canonical labels, in display order.
const (
	Original    = "Original"
	Invert      = "Invert"
	Shade       = "Shade"
	ShadeInvert = "Shade Invert"
)

// Labels lists the panel labels in display order.
var Labels = [4]string{Original, Invert, Shade, ShadeInvert}

type Panel struct {
	Label string
	Color colormodel.Color
}

// Hex is the string copied to the clipboard for this panel.
func (p Panel) Hex() string {
	return p.Color.Hex()
}

type Panels [4]Panel

// FromDerived orders the derived colors as Original, Invert, Shade, Shade Invert.
func FromDerived(d colormodel.Derived) Panels {
	return Panels{
		{Original, d.Original},
		{Invert, d.Invert},
		{Shade, d.Shade},
		{ShadeInvert, d.ShadeInvert},
	}
}

// Contrast returns black or white, whichever reads better on top of c.
func Contrast(c colormodel.Color) colormodel.Color {
	v := c.RGBA()
	// Rec. 601 luma, integer form.
	luma := 299*int(v[0]) + 587*int(v[1]) + 114*int(v[2])
	if luma >= 128*1000 {
		return colormodel.New(colormodel.Space255, 0, 0, 0)
	}
	return colormodel.New(colormodel.Space255, 0xff, 0xff, 0xff)
}
