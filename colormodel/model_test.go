package colormodel

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedVariants(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		input string
		want  [4]string // original, invert, shade, shade invert
	}{
		// legacy rows match the output of the historical color_shade_invert script.
		{"legacy white", LegacyOptions(), "#fff", [4]string{"#fff", "#111", "#111", "#fff"}},
		{"legacy white alpha", LegacyOptions(), "#fff8", [4]string{"#fff8", "#1118", "#1118", "#fff8"}},
		{"legacy short", LegacyOptions(), "#369", [4]string{"#369", "#da7", "#7ad", "#963"}},
		{"legacy long", LegacyOptions(), "#ff8000", [4]string{"#ff8000", "#007fff", "#ff8000", "#007fff"}},
		{"base 255 short", Options{ShadeBase: ShadeBase255}, "#369", [4]string{"#369", "#c96", "#fff", "#fff"}},
		{"invert base 255 short", Options{InvertBase: InvertBase255}, "#369", [4]string{"#369", "#fff", "#69c", "#000"}},
		{"invert base 255 long", Options{InvertBase: InvertBase255}, "#336699", [4]string{"#336699", "#cc9966", "#6699cc", "#996633"}},
		{
			"base 255 shade then invert", Options{ShadeBase: ShadeBase255, Order: ShadeThenInvert},
			"#369", [4]string{"#369", "#c96", "#fff", "#000"},
		},
		{"shade then invert", Options{Order: ShadeThenInvert}, "#336699", [4]string{"#336699", "#cc9966", "#6699cc", "#996633"}},
		{"opaque", Options{MissingAlpha: AlphaOpaque}, "#369", [4]string{"#369f", "#c96f", "#69cf", "#963f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(tt.opts)
			d := m.Derive(mustParse(t, m, tt.input))
			got := [4]string{d.Original.Hex(), d.Invert.Hex(), d.Shade.Hex(), d.ShadeInvert.Hex()}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivePreservesSpace(t *testing.T) {
	for _, opts := range []Options{DefaultOptions(), LegacyOptions()} {
		m := NewModel(opts)
		for _, s := range []string{"#123", "#112233", "rgb(1, 2, 3)"} {
			c := mustParse(t, m, s)
			d := m.Derive(c)
			for _, x := range []Color{d.Invert, d.Shade, d.ShadeInvert} {
				assert.Equal(t, c.Space, x.Space, s)
				assert.Equal(t, c.Scaled, x.Scaled, s)
			}
		}
	}
}

func TestOptionFlags(t *testing.T) {
	var o Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&o.MissingAlpha, "alpha", "")
	fs.Var(&o.ShortHex, "short-hex", "")
	fs.Var(&o.InvertBase, "invert-base", "")
	fs.Var(&o.ShadeBase, "shade-base", "")
	fs.Var(&o.Order, "order", "")
	require.NoError(t, fs.Parse([]string{"-alpha", "Opaque", "-short-hex", "scaled", "-invert-base", "255", "-shade-base", "255", "-order", "shade-invert"}))
	assert.Equal(t, Options{
		MissingAlpha: AlphaOpaque,
		ShortHex:     ShortHexScaled,
		InvertBase:   InvertBase255,
		ShadeBase:    ShadeBase255,
		Order:        ShadeThenInvert,
	}, o)
	assert.Equal(t, "alpha=opaque short-hex=scaled invert-base=255 shade-base=255 order=shade-invert", o.String())
	assert.Equal(t, "alpha=untracked short-hex=literal invert-base=space shade-base=space order=invert-shade", DefaultOptions().String())

	err := o.Order.Set("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invert-shade, shade-invert")
	assert.Equal(t, ShadeThenInvert, o.Order, "failed Set must leave the value alone")
	assert.Equal(t, "invalid(7)", AlphaPolicy(7).String())
}

func TestModelInvertIsSelfInverse(t *testing.T) {
	for _, opts := range []Options{DefaultOptions(), LegacyOptions(), {InvertBase: InvertBase255}} {
		m := NewModel(opts)
		for _, s := range []string{"#369", "#fff8", "#ff8000", "rgb(10, 20, 30)"} {
			c := mustParse(t, m, s)
			assert.Equal(t, c, m.Invert(m.Invert(c)), "%s with %v", s, opts)
		}
	}
}

func TestInvertAround(t *testing.T) {
	c := Color{R: 48, G: 96, B: 144, Space: Space15, Scaled: true}
	assert.Equal(t, "#c96", c.Invert().Hex())
	assert.Equal(t, "#da7", c.InvertAround(255).Hex())
	assert.Equal(t, c.Space, c.InvertAround(255).Space)
}
