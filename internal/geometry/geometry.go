// Package geometry holds the value types shared by the fractal subdividers and
// the renderers: points, colors, triangles and the geometry buffer they fill.
package geometry

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrNegativeDepth is returned by the subdividers when asked to recurse a negative number of levels.
var ErrNegativeDepth = errors.New("geometry: negative subdivision depth")

// Point3 is a position in normalized device coordinates (x, y, z).
type Point3 [3]float32

// Point2 is a position on the z = 0 plane.
type Point2 [2]float32

// Color is RGBA with components in [0, 1].
type Color [4]float32

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// Mid returns the component-wise mean of p and q.
func (p Point3) Mid(q Point3) Point3 {
	return Point3{0.5 * (p[0] + q[0]), 0.5 * (p[1] + q[1]), 0.5 * (p[2] + q[2])}
}

// Mid returns the component-wise mean of p and q.
func (p Point2) Mid(q Point2) Point2 {
	return Point2{0.5 * (p[0] + q[0]), 0.5 * (p[1] + q[1])}
}

// XYZ lifts p onto the z = 0 plane.
func (p Point2) XYZ() Point3 {
	return Point3{p[0], p[1], 0}
}

// Scale multiplies the RGB components by s. Alpha is kept.
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s, c[3]}
}

// Triangle is one leaf primitive: three vertices with one color each.
type Triangle struct {
	V [3]Point3
	C [3]Color
}

// Flat returns a triangle whose three vertices share color c.
func Flat(a, b, c Point3, col Color) Triangle {
	return Triangle{V: [3]Point3{a, b, c}, C: [3]Color{col, col, col}}
}

// Depth is the mean z of the vertices. Larger values are farther from the viewer.
func (t Triangle) Depth() float32 {
	return (t.V[0][2] + t.V[1][2] + t.V[2][2]) / 3
}

// Area is the unsigned area of the triangle projected onto the xy plane.
func (t Triangle) Area() float32 {
	a, b, c := t.V[0], t.V[1], t.V[2]
	cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	return math32.Abs(cross) / 2
}
