package colormodel

// Model applies a set of [Options] to parsing and transforms.
type Model struct {
	Options Options
}

func NewModel(o Options) Model {
	return Model{Options: o}
}

// Derived is the original color and the three colors computed from it.
type Derived struct {
	Original    Color
	Invert      Color
	Shade       Color
	ShadeInvert Color
}

func (m Model) Invert(c Color) Color {
	if m.Options.InvertBase == InvertBase255 {
		return c.InvertAround(int(Space255))
	}
	return c.Invert()
}

func (m Model) Shade(c Color) Color {
	if m.Options.ShadeBase == ShadeBase255 {
		return c.ShadeAround(int(Space255))
	}
	return c.Shade()
}

// ShadeInvert is the shade of the inverted color, or the inverse of the shade
// when Options.Order is [ShadeThenInvert].
func (m Model) ShadeInvert(c Color) Color {
	if m.Options.Order == ShadeThenInvert {
		return m.Invert(m.Shade(c))
	}
	return m.Shade(m.Invert(c))
}

func (m Model) Derive(c Color) Derived {
	return Derived{
		Original:    c,
		Invert:      m.Invert(c),
		Shade:       m.Shade(c),
		ShadeInvert: m.ShadeInvert(c),
	}
}
