package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// MinSize is the smallest sheet edge, in pixels, that still fits the labels.
const MinSize = 64

var ErrTooSmall = errors.New("swatch image too small")

// Draw renders the panels on a size x size image laid out with [Grid].
// Each panel shows its label and hex value in a contrasting color;
// translucent colors are blended onto white.
func Draw(panels Panels, size int) (image.Image, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooSmall, size, MinSize)
	}
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	lineHeight := dc.FontHeight()
	for i, r := range Grid(size, size) {
		p := panels[i]
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		dc.SetColor(p.Color.NRGBA())
		dc.Fill()
		cx := float64(r.X) + float64(r.W)/2
		cy := float64(r.Y) + float64(r.H)/2
		dc.SetColor(Contrast(p.Color).NRGBA())
		dc.DrawStringAnchored(p.Label, cx, cy-lineHeight/2, 0.5, 0.5)
		dc.DrawStringAnchored(p.Hex(), cx, cy+lineHeight/2, 0.5, 0.5)
	}
	return dc.Image(), nil
}

// WritePNG encodes the sheet produced by [Draw] as PNG.
func WritePNG(w io.Writer, panels Panels, size int) error {
	img, err := Draw(panels, size)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

// SavePNG writes the sheet produced by [Draw] to path.
func SavePNG(path string, panels Panels, size int) error {
	img, err := Draw(panels, size)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
