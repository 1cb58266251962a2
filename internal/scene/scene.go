package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"fractals/internal/config"
	"fractals/internal/geometry"
	"fractals/internal/sierpinski"
	"fractals/internal/tetra"
)

// Names of the scenes, as used on the command line.
const (
	TetrahedronName = "tetrahedron"
	SierpinskiName  = "sierpinski"
)

// Scene is one finished fractal: its window settings and the geometry to hand to a renderer.
// Width/Height 0 ask the window renderer for the monitor size.
type Scene struct {
	Name       string
	Title      string
	Width      int32
	Height     int32
	Depth      int
	Background geometry.Color
	Buffer     *geometry.Buffer
}

// Tetrahedron builds the subdivided tetrahedron described by cfg at depth.
func Tetrahedron(cfg config.Config, depth int) (*Scene, error) {
	t := cfg.Tetrahedron
	buf, err := tetra.Build(t.TetraSeed(), depth, t.FacePalette())
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", TetrahedronName, err)
	}
	return &Scene{
		Name:       TetrahedronName,
		Title:      fmt.Sprintf("Tetrahedron (depth %d)", depth),
		Width:      t.Width,
		Height:     t.Height,
		Depth:      depth,
		Background: cfg.Background,
		Buffer:     buf,
	}, nil
}

// Sierpinski builds the Sierpinski triangle described by cfg at depth. Leaf colors come from src.
func Sierpinski(cfg config.Config, depth int, src sierpinski.Source) (*Scene, error) {
	s := cfg.Sierpinski
	buf, err := sierpinski.Build(s.TriangleSeed(), depth, s.Palette, src)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", SierpinskiName, err)
	}
	return &Scene{
		Name:       SierpinskiName,
		Title:      fmt.Sprintf("Sierpinski triangle (depth %d)", depth),
		Width:      s.Width,
		Height:     s.Height,
		Depth:      depth,
		Background: cfg.Background,
		Buffer:     buf,
	}, nil
}

// NewSource returns a color picker seeded with seed, or with the clock when seed is 0.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ErrUnknown is returned by Build for a name other than TetrahedronName or SierpinskiName.
var ErrUnknown = errors.New("scene: unknown scene")

// Build dispatches on name.
func Build(cfg config.Config, name string, depth int, seed int64) (*Scene, error) {
	switch name {
	case TetrahedronName:
		return Tetrahedron(cfg, depth)
	case SierpinskiName:
		return Sierpinski(cfg, depth, NewSource(seed))
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, name)
}

// ConfiguredDepth returns the depth cfg sets for the named scene.
func ConfiguredDepth(cfg config.Config, name string) int {
	if name == SierpinskiName {
		return cfg.Sierpinski.Depth
	}
	return cfg.Tetrahedron.Depth
}
