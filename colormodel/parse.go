package colormodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errComponents = errors.New("wrong number of components")
	errHexLength  = errors.New("hex color must have 3, 4, 6 or 8 digits")
)

// Parse parses input with [DefaultOptions].
func Parse(input string) (Color, error) {
	return Model{}.Parse(input)
}

// Parse accepts, in this order, rgb(r, g, b) / rgba(r, g, b, a) with base 10
// integers, and [#]RGB[A] / [#]RRGGBB[AA] hex. Failures are [*FormatError].
func (m Model) Parse(input string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	var (
		c   Color
		err error
	)
	if strings.HasPrefix(s, "rgb") {
		c, err = m.parseFunctional(s)
	} else {
		c, err = m.parseHex(s)
	}
	if err != nil {
		return Color{}, formatError(input, err)
	}
	return c, nil
}

func (m Model) parseFunctional(s string) (Color, error) {
	want := 3
	args, ok := strings.CutPrefix(s, "rgba")
	if ok {
		want = 4
	} else {
		args, _ = strings.CutPrefix(s, "rgb")
	}
	args = strings.TrimSpace(args)
	args, ok = strings.CutPrefix(args, "(")
	if !ok {
		return Color{}, errors.New("missing (")
	}
	args, ok = strings.CutSuffix(args, ")")
	if !ok {
		return Color{}, errors.New("missing )")
	}
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: got %d, want %d", errComponents, len(parts), want)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Color{}, err
		}
		v[i] = n
	}
	c := New(Space255, v[0], v[1], v[2])
	if want == 4 {
		return c.WithAlpha(v[3]), nil
	}
	return m.defaultAlpha(c), nil
}

func (m Model) parseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	var width int
	var space Space
	switch len(s) {
	case 3, 4:
		width, space = 1, Space15
	case 6, 8:
		width, space = 2, Space255
	default:
		return Color{}, errHexLength
	}
	var v [4]int
	for i := range len(s) / width {
		n, err := strconv.ParseUint(s[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return Color{}, err
		}
		v[i] = int(n)
	}
	c := New(space, v[0], v[1], v[2])
	if space == Space15 && m.Options.ShortHex == ShortHexScaled {
		c = Color{R: v[0] * 0x10, G: v[1] * 0x10, B: v[2] * 0x10, Space: space, Scaled: true}
	}
	if len(s) == 4 || len(s) == 8 {
		return c.WithAlpha(v[3]), nil
	}
	return m.defaultAlpha(c), nil
}

func (m Model) defaultAlpha(c Color) Color {
	if m.Options.MissingAlpha == AlphaOpaque {
		return c.WithAlpha(int(c.Space))
	}
	return c
}
