package colormodel

import (
	"fmt"
	"strings"
)

// AlphaPolicy decides what a color without alpha digits/component gets.
type AlphaPolicy int

const (
	// AlphaUntracked leaves the alpha channel out: no alpha suffix in Hex().
	AlphaUntracked AlphaPolicy = iota
	// AlphaOpaque sets alpha to the maximum of the color's space.
	AlphaOpaque
)

// ShortHexMode decides how single digit (#rgb, #rgba) channels are stored.
type ShortHexMode int

const (
	// ShortHexLiteral keeps the digit value, 0-15.
	ShortHexLiteral ShortHexMode = iota
	// ShortHexScaled multiplies color digits by 16, projecting them onto 0-240.
	ShortHexScaled
)

// InvertBase is what channels are complemented against.
type InvertBase int

const (
	// InvertBaseSpace inverts around the color's own ceiling.
	InvertBaseSpace InvertBase = iota
	// InvertBase255 always computes 255 - channel, whatever the space.
	InvertBase255
)

// ShadeBase is the target term of the shade formula.
type ShadeBase int

const (
	// ShadeBaseSpace shades around the color's own ceiling.
	ShadeBaseSpace ShadeBase = iota
	// ShadeBase255 always uses 255, whatever the space.
	ShadeBase255
)

// Order is the composition order of the shade-invert color.
type Order int

const (
	// InvertThenShade is Shade(Invert(c)).
	InvertThenShade Order = iota
	// ShadeThenInvert is Invert(Shade(c)).
	ShadeThenInvert
)

// Options selects between the behaviors that historical versions of the tool
// disagreed on. The zero value is [DefaultOptions].
type Options struct {
	MissingAlpha AlphaPolicy
	ShortHex     ShortHexMode
	InvertBase   InvertBase
	ShadeBase    ShadeBase
	Order        Order
}

func DefaultOptions() Options {
	return Options{}
}

// LegacyOptions reproduces the most complete historical script: short hex
// scaled by 16, inverts and shades computed around 255.
func LegacyOptions() Options {
	return Options{
		MissingAlpha: AlphaUntracked,
		ShortHex:     ShortHexScaled,
		InvertBase:   InvertBase255,
		ShadeBase:    ShadeBase255,
		Order:        InvertThenShade,
	}
}

func (o Options) String() string {
	return fmt.Sprintf("alpha=%s short-hex=%s invert-base=%s shade-base=%s order=%s",
		o.MissingAlpha, o.ShortHex, o.InvertBase, o.ShadeBase, o.Order)
}

// The option types below are flag.Value so the command line can bind them directly.

var alphaNames = []string{"untracked", "opaque"}

func (a AlphaPolicy) String() string { return enumName(alphaNames, int(a)) }

func (a *AlphaPolicy) Set(s string) error { return enumSet(alphaNames, (*int)(a), s) }

var shortHexNames = []string{"literal", "scaled"}

func (m ShortHexMode) String() string { return enumName(shortHexNames, int(m)) }

func (m *ShortHexMode) Set(s string) error { return enumSet(shortHexNames, (*int)(m), s) }

var invertBaseNames = []string{"space", "255"}

func (b InvertBase) String() string { return enumName(invertBaseNames, int(b)) }

func (b *InvertBase) Set(s string) error { return enumSet(invertBaseNames, (*int)(b), s) }

var shadeBaseNames = []string{"space", "255"}

func (b ShadeBase) String() string { return enumName(shadeBaseNames, int(b)) }

func (b *ShadeBase) Set(s string) error { return enumSet(shadeBaseNames, (*int)(b), s) }

var orderNames = []string{"invert-shade", "shade-invert"}

func (o Order) String() string { return enumName(orderNames, int(o)) }

func (o *Order) Set(s string) error { return enumSet(orderNames, (*int)(o), s) }

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("invalid(%d)", v)
	}
	return names[v]
}

func enumSet(names []string, v *int, s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			*v = i
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, must be one of: %s", s, strings.Join(names, ", "))
}
