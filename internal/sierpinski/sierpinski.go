// Package sierpinski generates the Sierpinski triangle. Each level keeps the
// three corner triangles and leaves the inverted middle one empty.
package sierpinski

import (
	"errors"
	"fmt"

	"fractals/internal/geometry"
)

// DefaultDepth is the number of subdivision levels the demo renders.
const DefaultDepth = 2

// ErrEmptyPalette is returned when there is no color to pick for a leaf.
var ErrEmptyPalette = errors.New("sierpinski: empty palette")

// Seed spans the whole viewport in normalized device coordinates.
var Seed = [3]geometry.Point2{
	{-1.0, -1.0},
	{0.0, 1.0},
	{1.0, -1.0},
}

// Palette returns the default leaf colors: red, green, blue.
func Palette() []geometry.Color {
	return []geometry.Color{
		{1.0, 0.0, 0.0, 1.0},
		{0.0, 1.0, 0.0, 1.0},
		{0.0, 0.0, 1.0, 1.0},
	}
}

// Source picks leaf colors. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// LeafCount returns 3^depth.
func LeafCount(depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= 3
	}
	return n
}

// Subdivide splits (p1, p2, p3) depth times and emits every leaf as a single-colored triangle.
// emit may collect the triangle or draw it right away.
func Subdivide(p1, p2, p3 geometry.Point2, depth int, palette []geometry.Color, src Source, emit func(geometry.Triangle)) error {
	if depth < 0 {
		return fmt.Errorf("sierpinski: depth %d: %w", depth, geometry.ErrNegativeDepth)
	}
	if len(palette) == 0 {
		return ErrEmptyPalette
	}
	subdivide(p1, p2, p3, depth, palette, src, emit)
	return nil
}

func subdivide(p1, p2, p3 geometry.Point2, depth int, palette []geometry.Color, src Source, emit func(geometry.Triangle)) {
	if depth == 0 {
		col := palette[src.Intn(len(palette))]
		emit(geometry.Flat(p1.XYZ(), p2.XYZ(), p3.XYZ(), col))
		return
	}
	m12 := p1.Mid(p2)
	m23 := p2.Mid(p3)
	m13 := p1.Mid(p3)
	subdivide(p1, m12, m13, depth-1, palette, src, emit)
	subdivide(m12, p2, m23, depth-1, palette, src, emit)
	subdivide(m13, m23, p3, depth-1, palette, src, emit)
}

// Build subdivides seed depth times and returns the leaves in emission order.
func Build(seed [3]geometry.Point2, depth int, palette []geometry.Color, src Source) (*geometry.Buffer, error) {
	if depth < 0 {
		return nil, fmt.Errorf("sierpinski: depth %d: %w", depth, geometry.ErrNegativeDepth)
	}
	buf := geometry.NewBuffer(LeafCount(depth))
	if err := Subdivide(seed[0], seed[1], seed[2], depth, palette, src, buf.Append); err != nil {
		return nil, err
	}
	return buf, nil
}
