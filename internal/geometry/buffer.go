package geometry

import (
	"sort"

	"github.com/chewxy/math32"
)

const (
	// PositionSize is the number of floats per vertex in Positions.
	PositionSize = 3
	// ColorSize is the number of floats per vertex in Colors.
	ColorSize = 4
)

// Buffer is an ordered list of triangles. Subdividers append to it while building;
// once handed to a renderer it is only read.
type Buffer struct {
	tris []Triangle
}

// NewBuffer returns an empty buffer with room for capacity triangles.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{tris: make([]Triangle, 0, capacity)}
}

// Append adds t at the end. It has the signature of an emit callback so builders can pass b.Append.
func (b *Buffer) Append(t Triangle) {
	b.tris = append(b.tris, t)
}

// Len returns the number of triangles.
func (b *Buffer) Len() int {
	return len(b.tris)
}

// VertexCount returns the number of vertices (three per triangle).
func (b *Buffer) VertexCount() int {
	return 3 * len(b.tris)
}

// At returns the i-th triangle in insertion order.
func (b *Buffer) At(i int) Triangle {
	return b.tris[i]
}

// Triangles returns a copy of the triangles in insertion order.
func (b *Buffer) Triangles() []Triangle {
	out := make([]Triangle, len(b.tris))
	copy(out, b.tris)
	return out
}

// Positions flattens vertex positions as [x0,y0,z0, x1,y1,z1, ...].
func (b *Buffer) Positions() []float32 {
	out := make([]float32, 0, b.VertexCount()*PositionSize)
	for _, t := range b.tris {
		for _, v := range t.V {
			out = append(out, v[0], v[1], v[2])
		}
	}
	return out
}

// Colors flattens vertex colors as [r0,g0,b0,a0, ...], parallel to Positions.
func (b *Buffer) Colors() []float32 {
	out := make([]float32, 0, b.VertexCount()*ColorSize)
	for _, t := range b.tris {
		for _, c := range t.C {
			out = append(out, c[0], c[1], c[2], c[3])
		}
	}
	return out
}

// Bounds returns the axis-aligned box around every vertex. An empty buffer returns zero points.
func (b *Buffer) Bounds() (min, max Point3) {
	if len(b.tris) == 0 {
		return min, max
	}
	min = b.tris[0].V[0]
	max = min
	for _, t := range b.tris {
		for _, v := range t.V {
			for i := range v {
				min[i] = math32.Min(min[i], v[i])
				max[i] = math32.Max(max[i], v[i])
			}
		}
	}
	return min, max
}

// Area returns the summed xy-projected area of the triangles.
func (b *Buffer) Area() float32 {
	var sum float32
	for _, t := range b.tris {
		sum += t.Area()
	}
	return sum
}

// BackToFront returns a new buffer ordered farthest first. Triangles at equal depth keep
// insertion order, so flat geometry draws exactly as it was emitted.
func (b *Buffer) BackToFront() *Buffer {
	out := b.Triangles()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth() > out[j].Depth()
	})
	return &Buffer{tris: out}
}

// Vertex returns vertex i of a Positions array.
func Vertex(positions []float32, i int) Point3 {
	p := positions[i*PositionSize:]
	return Point3{p[0], p[1], p[2]}
}

// VertexColor returns vertex i of a Colors array.
func VertexColor(colors []float32, i int) Color {
	c := colors[i*ColorSize:]
	return Color{c[0], c[1], c[2], c[3]}
}
