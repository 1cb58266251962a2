// Package graphics is the on-screen render target, backed by a raylib window.
// Geometry arrives in normalized device coordinates and is drawn without any
// camera: the viewport maps [-1,1] on both axes to the full window.
package graphics
