package render

import "fractals/internal/geometry"

// ToScreen maps a point in normalized device coordinates to pixel coordinates on a
// width x height surface with the origin at the top-left corner.
func ToScreen(p geometry.Point3, width, height float32) (x, y float32) {
	x = (p[0] + 1) * 0.5 * width
	y = (1 - p[1]) * 0.5 * height
	return x, y
}

// Byte converts a [0,1] color component to 0..255, clamping out-of-range values.
func Byte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RGBA8 converts c to 8-bit components.
func RGBA8(c geometry.Color) (r, g, b, a uint8) {
	return Byte(c[0]), Byte(c[1]), Byte(c[2]), Byte(c[3])
}

// ScreenTriangle maps v to pixel coordinates and orders the vertices counter-clockwise as
// seen on screen (y down), the winding raylib needs to draw a 2D triangle.
func ScreenTriangle(v [3]geometry.Point3, width, height float32) [3][2]float32 {
	var out [3][2]float32
	for i, p := range v {
		out[i][0], out[i][1] = ToScreen(p, width, height)
	}
	a, b, c := out[0], out[1], out[2]
	cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	if cross > 0 {
		out[1], out[2] = out[2], out[1]
	}
	return out
}
