// Package scene turns configuration into ready-to-render fractal scenes. A scene
// is built once, before any window exists, and its geometry buffer is never
// changed afterwards.
package scene
