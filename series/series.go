// SPDX-License-Identifier: MIT

package series

const panicEmptyPalette = "series: WithPalette: palette must not be empty"

// Option configures an Assembler.
type Option func(*Assembler)

// WithPalette replaces the fallback palette. Panics on an empty palette.
func WithPalette(colors ...string) Option {
	if len(colors) == 0 {
		panic(panicEmptyPalette)
	}
	p := append([]string(nil), colors...)

	return func(a *Assembler) { a.palette = p }
}

// Assembler builds series with a fixed fallback palette. The zero value is
// not usable; construct with NewAssembler. An Assembler is immutable and
// safe for concurrent use.
type Assembler struct {
	palette []string
}

// NewAssembler returns an Assembler using DefaultPalette unless overridden.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{palette: append([]string(nil), DefaultPalette...)}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// Palette returns a copy of the fallback colors.
func (a *Assembler) Palette() []string {
	return append([]string(nil), a.palette...)
}

// Color returns the fallback color of group index i.
func (a *Assembler) Color(i int) string {
	if i < 0 {
		i = -i
	}

	return a.palette[i%len(a.palette)]
}

// Build maps groups to series in order, then appends markers on top.
//
// Ordinary groups: missing color → palette[i % len], z = BaseZ, symbol size PointSize.
// Markers: missing color → CenterColor, symbol MarkerSymbol, size MarkerSize, z = MarkerZ.
func (a *Assembler) Build(groups []Group, markers ...Group) []Series {
	out := make([]Series, 0, len(groups)+len(markers))
	for i, g := range groups {
		s := newSeries(g)
		if s.Color == "" {
			s.Color = a.Color(i)
		}
		if s.SymbolSize == 0 && s.Kind == Scatter {
			s.SymbolSize = PointSize
		}
		s.Z = BaseZ
		out = append(out, s)
	}
	for _, m := range markers {
		s := newSeries(m)
		if s.Color == "" {
			s.Color = CenterColor
		}
		if s.Symbol == "" {
			s.Symbol = MarkerSymbol
		}
		if s.SymbolSize == 0 {
			s.SymbolSize = MarkerSize
		}
		s.Z = MarkerZ
		out = append(out, s)
	}

	return out
}

// Build assembles with the default palette.
func Build(groups []Group, markers ...Group) []Series {
	return defaultAssembler.Build(groups, markers...)
}

var defaultAssembler = NewAssembler()

func newSeries(g Group) Series {
	kind := g.Kind
	if kind == "" {
		kind = Scatter
	}

	return Series{
		Name:       g.Label,
		Kind:       kind,
		Color:      g.Color,
		Symbol:     g.Symbol,
		SymbolSize: g.SymbolSize,
		Smooth:     g.Smooth,
		Dashed:     g.Dashed,
		Marks:      append([]Mark(nil), g.Marks...),
		Data:       copyPoints(g.Data),
	}
}

// copyPoints deep-copies point data; nil input yields an empty, non-nil slice
// so encoded series always carry "data": [].
func copyPoints(pts [][]float64) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = append([]float64(nil), p...)
	}

	return out
}

// ConstantLine builds a dashed horizontal line at y spanning xs.
func ConstantLine(label, color string, xs []float64, y float64) Group {
	data := make([][]float64, len(xs))
	for i, x := range xs {
		data[i] = []float64{x, y}
	}

	return Group{Label: label, Color: color, Kind: Line, Symbol: "none", Dashed: true, Data: data}
}

// Pairs converts [x, y] tuples to point rows.
func Pairs(pts [][2]float64) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p[0], p[1]}
	}

	return out
}
