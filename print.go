package main

import (
	"fmt"
	"io"

	"fortio.org/terminal/ansipixels/tcolor"

	"fortio.org/cshade/swatch"
)

// tcolorOf converts to the terminal color used for swatches and panels.
func tcolorOf(p swatch.Panel) tcolor.Color {
	v := p.Color.RGBA()
	return tcolor.RGBColor{R: v[0], G: v[1], B: v[2]}.Color()
}

func printPanels(w io.Writer, colorOutput tcolor.ColorOutput, withSwatch bool, panels swatch.Panels) {
	for _, p := range panels {
		if withSwatch {
			fmt.Fprintf(w, "%s    %s ", colorOutput.Background(tcolorOf(p)), tcolor.Reset)
		}
		fmt.Fprintf(w, "%s: %s\n", p.Label, p.Hex())
	}
}
