package graphics

import (
	"fractals/internal/geometry"
	"fractals/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Window is a raylib window used as a render.Target. The scene is static, so geometry is
// converted to screen space once on Upload and replayed every frame.
type Window struct {
	shader    rl.Shader
	hasShader bool
}

type program struct {
	shader rl.Shader
}

func (p program) Valid() bool {
	return rl.IsShaderValid(p.shader) && render.ProgramStatus(p.shader.ID, rl.GetShaderIdDefault()) == nil
}

type triangle struct {
	a, b, c rl.Vector2
	col     rl.Color
}

type handle struct {
	tris []triangle
}

func (h *handle) TriangleCount() int { return len(h.tris) }

// Open creates the window. A zero width or height opens a window the size of the monitor.
// Returns render.ErrUnsupportedContext when raylib could not create an OpenGL context.
func Open(width, height int32, title string) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	rl.InitWindow(width, height, title)
	if !rl.IsWindowReady() {
		return nil, render.ErrUnsupportedContext
	}
	rl.SetTargetFPS(targetFPS)
	return &Window{}, nil
}

// Close unloads the program and closes the window.
func (w *Window) Close() {
	if w.hasShader {
		rl.UnloadShader(w.shader)
		w.hasShader = false
	}
	rl.CloseWindow()
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (width, height int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Run calls frame between BeginDrawing and EndDrawing until the window is closed.
func (w *Window) Run(frame func()) {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		frame()
		rl.EndDrawing()
	}
}

// CompileProgram compiles and links a GLSL program from source.
func (w *Window) CompileProgram(vertexSrc, fragmentSrc string) (render.Program, error) {
	shader := rl.LoadShaderFromMemory(vertexSrc, fragmentSrc)
	// A failed link comes back as raylib's default shader, which IsShaderValid accepts.
	if err := render.ProgramStatus(shader.ID, rl.GetShaderIdDefault()); err != nil {
		return nil, err
	}
	if !rl.IsShaderValid(shader) {
		return nil, render.ErrShaderCompile
	}
	return program{shader: shader}, nil
}

// UseProgram makes p the program Draw renders with.
func (w *Window) UseProgram(p render.Program) {
	prog, ok := p.(program)
	if !ok {
		return
	}
	if w.hasShader && w.shader.ID != prog.shader.ID {
		rl.UnloadShader(w.shader)
	}
	w.shader = prog.shader
	w.hasShader = true
}

// Upload maps buf to the current window size, farthest triangles first.
func (w *Window) Upload(buf *geometry.Buffer) (render.Handle, error) {
	if !rl.IsWindowReady() {
		return nil, render.ErrUnsupportedContext
	}
	sw, sh := w.Size()
	sorted := buf.BackToFront()
	pos, cols := sorted.Positions(), sorted.Colors()
	h := &handle{tris: make([]triangle, 0, sorted.Len())}
	for i := 0; i < sorted.Len(); i++ {
		v := [3]geometry.Point3{
			geometry.Vertex(pos, 3*i),
			geometry.Vertex(pos, 3*i+1),
			geometry.Vertex(pos, 3*i+2),
		}
		s := render.ScreenTriangle(v, float32(sw), float32(sh))
		// rl.DrawTriangle takes one color. Both builders give a face the same color on all
		// three vertices, so the first is the face color.
		r, g, b, a := render.RGBA8(geometry.VertexColor(cols, 3*i))
		h.tris = append(h.tris, triangle{
			a:   rl.NewVector2(s[0][0], s[0][1]),
			b:   rl.NewVector2(s[1][0], s[1][1]),
			c:   rl.NewVector2(s[2][0], s[2][1]),
			col: rl.NewColor(r, g, b, a),
		})
	}
	return h, nil
}

// Clear fills the window with c.
func (w *Window) Clear(c geometry.Color) {
	r, g, b, a := render.RGBA8(c)
	rl.ClearBackground(rl.NewColor(r, g, b, a))
}

// Draw renders every uploaded triangle with the current program.
func (w *Window) Draw(h render.Handle) {
	hd, ok := h.(*handle)
	if !ok {
		return
	}
	if w.hasShader {
		rl.BeginShaderMode(w.shader)
		defer rl.EndShaderMode()
	}
	for _, t := range hd.tris {
		rl.DrawTriangle(t.a, t.b, t.c, t.col)
	}
}
