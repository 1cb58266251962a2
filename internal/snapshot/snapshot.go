// Package snapshot is a headless render target. It rasterizes the geometry
// buffer into an image and writes it as PNG, so scenes can be rendered where no
// window or GPU is available.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"

	"fractals/internal/geometry"
	"fractals/internal/render"
)

// program records that both shader sources were present; the rasterizer itself is fixed-function.
type program struct{ ok bool }

func (p program) Valid() bool { return p.ok }

// handle keeps the flattened vertex arrays, three vertices per triangle.
type handle struct {
	positions []float32
	colors    []float32
}

func (h *handle) TriangleCount() int { return len(h.positions) / (3 * geometry.PositionSize) }

// Target draws into an in-memory RGBA canvas. Supersample > 1 renders at a multiple of the
// output size and downsamples on Image.
type Target struct {
	width, height int
	supersample   int
	canvas        *image.RGBA
	raster        *vector.Rasterizer
	prog          render.Program
}

// New returns a target producing width x height images.
func New(width, height, supersample int) (*Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snapshot: size %dx%d: %w", width, height, render.ErrUnsupportedContext)
	}
	if supersample < 1 {
		supersample = 1
	}
	w, h := width*supersample, height*supersample
	return &Target{
		width:       width,
		height:      height,
		supersample: supersample,
		canvas:      image.NewRGBA(image.Rect(0, 0, w, h)),
		raster:      vector.NewRasterizer(w, h),
	}, nil
}

// CompileProgram accepts any pair of non-empty shader sources that define main.
func (t *Target) CompileProgram(vertexSrc, fragmentSrc string) (render.Program, error) {
	for _, src := range []string{vertexSrc, fragmentSrc} {
		if !strings.Contains(src, "void main") {
			return nil, render.ErrShaderCompile
		}
	}
	return program{ok: true}, nil
}

// UseProgram makes p current. Draw is a no-op until a valid program is in use.
func (t *Target) UseProgram(p render.Program) {
	t.prog = p
}

// Upload orders the triangles back to front once and keeps their vertex arrays, so Draw is a
// single pass.
func (t *Target) Upload(buf *geometry.Buffer) (render.Handle, error) {
	sorted := buf.BackToFront()
	return &handle{positions: sorted.Positions(), colors: sorted.Colors()}, nil
}

// Clear fills the canvas with c.
func (t *Target) Clear(c geometry.Color) {
	draw.Draw(t.canvas, t.canvas.Bounds(), image.NewUniform(nrgba(c)), image.Point{}, draw.Src)
}

// Draw fills every triangle of h over the canvas. Vertex colors are averaged per triangle.
func (t *Target) Draw(h render.Handle) {
	hd, ok := h.(*handle)
	if !ok || t.prog == nil || !t.prog.Valid() {
		return
	}
	w, ht := float32(t.canvas.Bounds().Dx()), float32(t.canvas.Bounds().Dy())
	for i := 0; i < hd.TriangleCount(); i++ {
		t.raster.Reset(t.canvas.Bounds().Dx(), t.canvas.Bounds().Dy())
		var cs [3]geometry.Color
		for k := 0; k < 3; k++ {
			x, y := render.ToScreen(geometry.Vertex(hd.positions, 3*i+k), w, ht)
			if k == 0 {
				t.raster.MoveTo(x, y)
			} else {
				t.raster.LineTo(x, y)
			}
			cs[k] = geometry.VertexColor(hd.colors, 3*i+k)
		}
		t.raster.ClosePath()
		t.raster.Draw(t.canvas, t.canvas.Bounds(), image.NewUniform(nrgba(average(cs))), image.Point{})
	}
}

// Image returns the rendered frame at the output size.
func (t *Target) Image() image.Image {
	if t.supersample == 1 {
		return t.canvas
	}
	return transform.Resize(t.canvas, t.width, t.height, transform.Linear)
}

// Encode writes the rendered frame as PNG.
func (t *Target) Encode(w io.Writer) error {
	if err := imgio.PNGEncoder()(w, t.Image()); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// Save writes the rendered frame as a PNG file at path.
func (t *Target) Save(path string) error {
	if err := imgio.Save(path, t.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

func average(cs [3]geometry.Color) geometry.Color {
	if cs[0] == cs[1] && cs[1] == cs[2] {
		return cs[0]
	}
	var out geometry.Color
	for _, c := range cs {
		for i := range c {
			out[i] += c[i] / 3
		}
	}
	return out
}

func nrgba(c geometry.Color) color.NRGBA {
	r, g, b, a := render.RGBA8(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
