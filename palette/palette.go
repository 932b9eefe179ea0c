/*
Package palette holds fixed, named reference palettes and answers
nearest-color queries against them.

A Palette is immutable once constructed. Lookup is a linear scan over
squared distance in 8-bit RGB space; when two entries are equidistant the
one listed first wins, which keeps grid output reproducible regardless of
palette contents.
*/
package palette

import (
	"fmt"
	"math"
)

// Color is one palette entry. The name is a display label only.
type Color struct {
	Name    string
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is an ordered, immutable set of named colors.
type Palette struct {
	name   string
	colors []Color
}

// New builds a palette from an ordered color list. The slice is copied.
func New(name string, colors []Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return &Palette{
		name:   name,
		colors: append([]Color(nil), colors...),
	}, nil
}

func (p *Palette) Name() string {
	return p.name
}

func (p *Palette) Len() int {
	return len(p.colors)
}

// Color returns the entry at index i. The index must come from Nearest or
// be below Len.
func (p *Palette) Color(i int) Color {
	return p.colors[i]
}

// Colors returns a copy of the entries in palette order.
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// Nearest returns the index of the entry closest to the given sample by
// squared Euclidean distance in RGB space. Ties resolve to the
// first-listed entry.
func (p *Palette) Nearest(r, g, b uint8) int {
	ret, bestSum := 0, math.MaxInt
	for i, v := range p.colors {
		dr := int(v.R) - int(r)
		dg := int(v.G) - int(g)
		db := int(v.B) - int(b)
		sum := dr*dr + dg*dg + db*db
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}
