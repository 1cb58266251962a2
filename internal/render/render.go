// Package render defines the rendering collaborator the fractal scenes hand
// their geometry to, and the compile/upload/draw sequence shared by every
// target (the raylib window and the headless snapshot).
package render

import (
	"errors"
	"fmt"

	"fractals/internal/geometry"
)

var (
	// ErrShaderCompile is returned when a vertex or fragment shader does not compile.
	ErrShaderCompile = errors.New("render: shader compilation failed")

	// ErrProgramLink is returned when compiled shaders do not link into a program.
	ErrProgramLink = errors.New("render: program link failed")

	// ErrUnsupportedContext is returned when no rendering context can be created.
	ErrUnsupportedContext = errors.New("render: rendering context not supported")
)

// Background is the clear color of every scene: slate (15, 23, 42).
var Background = geometry.Color{15.0 / 255, 23.0 / 255, 42.0 / 255, 1.0}

// Program is a compiled shader program owned by a Target.
type Program interface {
	Valid() bool
}

// Handle is geometry uploaded to a Target, ready to draw with one call.
type Handle interface {
	TriangleCount() int
}

// Target is a surface that can compile shaders, take a geometry buffer and draw it.
type Target interface {
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	UseProgram(p Program)
	Upload(buf *geometry.Buffer) (Handle, error)
	Clear(c geometry.Color)
	Draw(h Handle)
}

// ProgramStatus classifies the id a backend returned for a newly loaded program. Id 0 means
// a shader did not compile. A backend that falls back to its built-in program when linking
// fails returns that program's id, fallbackID.
func ProgramStatus(id, fallbackID uint32) error {
	switch {
	case id == 0:
		return ErrShaderCompile
	case id == fallbackID:
		return ErrProgramLink
	}
	return nil
}

// Logger receives diagnostics. *logger.Logger satisfies it.
type Logger interface {
	Logf(format string, args ...any)
}

// Prepare compiles the default program, makes it current and uploads buf.
func Prepare(t Target, buf *geometry.Buffer) (Handle, error) {
	prog, err := t.CompileProgram(VertexShader, FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("render: compile program: %w", err)
	}
	if !prog.Valid() {
		return nil, fmt.Errorf("render: compile program: %w", ErrProgramLink)
	}
	t.UseProgram(prog)
	h, err := t.Upload(buf)
	if err != nil {
		return nil, fmt.Errorf("render: upload geometry: %w", err)
	}
	return h, nil
}

// Frame clears t to bg and draws h.
func Frame(t Target, bg geometry.Color, h Handle) {
	t.Clear(bg)
	t.Draw(h)
}

// Present prepares buf and draws one frame over bg. On failure it logs the diagnostic and
// returns false without drawing.
func Present(t Target, buf *geometry.Buffer, bg geometry.Color, log Logger) bool {
	h, err := Prepare(t, buf)
	if err != nil {
		log.Logf("%v", err)
		return false
	}
	Frame(t, bg, h)
	return true
}
