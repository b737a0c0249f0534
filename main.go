// Cshade inverts and shades a color, e.g. to convert stylesheets to/from dark mode.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/terminal/ansipixels/tcolor"

	"fortio.org/cshade/colormodel"
	"fortio.org/cshade/swatch"
)

// ErrDisplayUnavailable is returned when the interactive display can't be used.
var ErrDisplayUnavailable = errors.New("display unavailable")

const colorHelp = ` COLOR
Shows, for COLOR: its invert, its shade and the shade of its invert.
Useful while converting style sheets to/from dark mode.

COLOR formats (remember to quote '#' and '()'):
	[#]RGB[A]         one hex digit per channel
	[#]RRGGBB[AA]     two hex digits per channel
	rgb(r, g, b)      decimal 0-255
	rgba(r, g, b, a)  decimal 0-255`

type Config struct {
	Options     colormodel.Options
	Interactive bool
	PNG         string // write a swatch sheet there when set
	Size        int
	Swatch      bool
	Colors      tcolor.ColorOutput
	Clipboard   swatch.ClipboardMode
	FPS         float64
}

func main() {
	os.Exit(Main())
}

func Main() int {
	cli.ArgsHelp = colorHelp
	cli.MinArgs = 1
	cli.MaxArgs = 1
	var opts colormodel.Options
	flag.Var(&opts.MissingAlpha, "alpha", "missing alpha `policy`: untracked (no alpha in output) or opaque (alpha set to max)")
	flag.Var(&opts.ShortHex, "short-hex", "single digit hex `mode`: literal (0-f) or scaled (digit x 16)")
	flag.Var(&opts.InvertBase, "invert-base", "invert formula `base`: space (15 or 255 per color) or 255 (always)")
	flag.Var(&opts.ShadeBase, "shade-base", "shade formula `base`: space (15 or 255 per color) or 255 (always)")
	flag.Var(&opts.Order, "order", "shade invert composition `order`: invert-shade or shade-invert")
	fLegacy := flag.Bool("legacy", false,
		"Start from the historical behavior (scaled short hex, invert and shade base 255), explicit flags still apply")
	fInteractive := flag.Bool("i", false, "Interactive terminal display of the colors, click or 1-4 to copy")
	fGtk := flag.Bool("gtk", false, "Same as -i")
	fPNG := flag.String("png", "", "Also write the 4 colors as a PNG swatch sheet to this `file`")
	fSize := flag.Int("size", 400, "Edge in pixels of the PNG swatch sheet")
	fSwatch := flag.Bool("swatch", false, "Prefix each text output line with a colored block")
	defaultTrueColor := false
	if os.Getenv("COLORTERM") != "" {
		defaultTrueColor = true
	}
	fTrueColor := flag.Bool("true-color", defaultTrueColor,
		"Use true color (24-bit RGB) instead of 8-bit ANSI colors (default is true if COLORTERM is set)")
	clipboardMode := swatch.ClipboardAuto
	flag.Var(&clipboardMode, "clipboard", "Clipboard `mode` used by -i: auto, system or osc52")
	fFps := flag.Float64("fps", 60, "Frames per second for the terminal refresh rate (-i)")
	cli.Main()
	if *fLegacy {
		opts = legacyWithOverrides(flag.CommandLine, opts)
	}
	cfg := Config{
		Options:     opts,
		Interactive: *fInteractive || *fGtk,
		PNG:         *fPNG,
		Size:        *fSize,
		Swatch:      *fSwatch,
		Colors:      tcolor.ColorOutput{TrueColor: *fTrueColor},
		Clipboard:   clipboardMode,
		FPS:         *fFps,
	}
	log.Debugf("Options: %v", cfg.Options)
	return Run(cfg, flag.Arg(0), os.Stdout)
}

// legacyWithOverrides starts from [colormodel.LegacyOptions] and keeps the
// options explicitly set in fs.
func legacyWithOverrides(fs *flag.FlagSet, set colormodel.Options) colormodel.Options {
	o := colormodel.LegacyOptions()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alpha":
			o.MissingAlpha = set.MissingAlpha
		case "short-hex":
			o.ShortHex = set.ShortHex
		case "invert-base":
			o.InvertBase = set.InvertBase
		case "shade-base":
			o.ShadeBase = set.ShadeBase
		case "order":
			o.Order = set.Order
		}
	})
	return o
}

// Run parses input and outputs the derived colors according to cfg.
// Returns the process exit code.
func Run(cfg Config, input string, out io.Writer) int {
	m := colormodel.NewModel(cfg.Options)
	c, err := m.Parse(input)
	if err != nil {
		return log.FErrf("%v", err)
	}
	panels := swatch.FromDerived(m.Derive(c))
	if cfg.PNG != "" {
		if err = swatch.SavePNG(cfg.PNG, panels, cfg.Size); err != nil {
			return log.FErrf("Error writing %s: %v", cfg.PNG, err)
		}
		log.Infof("Wrote %dx%d swatch sheet to %s", cfg.Size, cfg.Size, cfg.PNG)
	}
	if !cfg.Interactive {
		printPanels(out, cfg.Colors, cfg.Swatch, panels)
		return 0
	}
	if err = interactive(cfg, panels); err != nil {
		printPanels(out, cfg.Colors, cfg.Swatch, panels)
		return log.FErrf("Error displaying colors: %v", err)
	}
	return 0
}
