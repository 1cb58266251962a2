package tetra

import (
	"fmt"

	"fractals/internal/geometry"
)

// DefaultDepth is the number of subdivision levels the demo renders.
const DefaultDepth = 2

// Seed is the tetrahedron the demo starts from, centered near the origin.
var Seed = [4]geometry.Point3{
	{0.0, -0.15, -1.0},
	{0.0, 0.8428, 0.3333},
	{-0.8165, -0.5714, 0.3333},
	{0.8165, -0.5714, 0.3333},
}

// Palette colors the four faces of every leaf tetrahedron, indexed by face.
var Palette = [4]geometry.Color{
	geometry.RGB(1.0, 0.0, 0.36),  // red
	geometry.RGB(0.61, 1.0, 0.3),  // green
	geometry.RGB(1.0, 0.52, 0.14), // orange
	geometry.RGB(1.0, 0.0, 1.0),   // magenta
}

// vertexScale is applied to the first two vertex colors of each face.
const vertexScale = 1.0

// LeafCount returns the number of triangles Divide emits at depth: four faces per leaf tetrahedron.
func LeafCount(depth int) int {
	n := 4
	for i := 0; i < depth; i++ {
		n *= 4
	}
	return n
}

// Divide splits the tetrahedron (a, b, c, d) count times and emits the faces of every leaf.
// Each level keeps the four corner tetrahedra only; the central octahedron is dropped.
func Divide(a, b, c, d geometry.Point3, count int, palette [4]geometry.Color, emit func(geometry.Triangle)) error {
	if count < 0 {
		return fmt.Errorf("tetra: depth %d: %w", count, geometry.ErrNegativeDepth)
	}
	divide(a, b, c, d, count, &palette, emit)
	return nil
}

func divide(a, b, c, d geometry.Point3, count int, palette *[4]geometry.Color, emit func(geometry.Triangle)) {
	if count == 0 {
		faces(a, b, c, d, palette, emit)
		return
	}
	ab := a.Mid(b)
	ac := a.Mid(c)
	ad := a.Mid(d)
	bc := b.Mid(c)
	bd := b.Mid(d)
	cd := c.Mid(d)
	count--
	divide(a, ab, ac, ad, count, palette, emit)
	divide(ab, b, bc, bd, count, palette, emit)
	divide(ac, bc, c, cd, count, palette, emit)
	divide(ad, bd, cd, d, count, palette, emit)
}

// faces emits the four faces of one leaf tetrahedron in palette order.
func faces(a, b, c, d geometry.Point3, palette *[4]geometry.Color, emit func(geometry.Triangle)) {
	emit(face(a, c, b, palette[0]))
	emit(face(a, c, d, palette[1]))
	emit(face(a, b, d, palette[2]))
	emit(face(b, c, d, palette[3]))
}

// face colors all three vertices alike while vertexScale is 1; renderers draw one color per
// triangle and rely on that.
func face(a, b, c geometry.Point3, col geometry.Color) geometry.Triangle {
	return geometry.Triangle{
		V: [3]geometry.Point3{a, b, c},
		C: [3]geometry.Color{col.Scale(vertexScale), col.Scale(vertexScale), col},
	}
}

// Build subdivides seed count times and returns the collected faces.
func Build(seed [4]geometry.Point3, count int, palette [4]geometry.Color) (*geometry.Buffer, error) {
	if count < 0 {
		return nil, fmt.Errorf("tetra: depth %d: %w", count, geometry.ErrNegativeDepth)
	}
	buf := geometry.NewBuffer(LeafCount(count))
	if err := Divide(seed[0], seed[1], seed[2], seed[3], count, palette, buf.Append); err != nil {
		return nil, err
	}
	return buf, nil
}
