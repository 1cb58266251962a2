package scene

import (
	"errors"
	"testing"

	"fractals/internal/config"
	"fractals/internal/geometry"
)

func TestBuild(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name   string
		scene  string
		depth  int
		tris   int
		width  int32
		height int32
	}{
		{"tetrahedron configured depth", TetrahedronName, cfg.Tetrahedron.Depth, 64, 150, 150},
		{"tetrahedron depth 0", TetrahedronName, 0, 4, 150, 150},
		{"sierpinski configured depth", SierpinskiName, cfg.Sierpinski.Depth, 9, 0, 0},
		{"sierpinski depth 3", SierpinskiName, 3, 27, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Build(cfg, tt.scene, tt.depth, 1)
			if err != nil {
				t.Fatal(err)
			}
			if sc.Name != tt.scene {
				t.Errorf("Name = %q, want %q", sc.Name, tt.scene)
			}
			if sc.Buffer.Len() != tt.tris {
				t.Errorf("Buffer.Len() = %d, want %d", sc.Buffer.Len(), tt.tris)
			}
			if sc.Width != tt.width || sc.Height != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", sc.Width, sc.Height, tt.width, tt.height)
			}
			if sc.Background != cfg.Background {
				t.Errorf("Background = %v", sc.Background)
			}
		})
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := Build(config.Default(), "mandelbrot", 1, 0); !errors.Is(err, ErrUnknown) {
		t.Errorf("Build(unknown) error = %v, want ErrUnknown", err)
	}
	cfg := config.Default()
	cfg.Sierpinski.Depth = 5
	if got := ConfiguredDepth(cfg, SierpinskiName); got != 5 {
		t.Errorf("ConfiguredDepth(sierpinski) = %d, want 5", got)
	}
	if got := ConfiguredDepth(cfg, TetrahedronName); got != 2 {
		t.Errorf("ConfiguredDepth(tetrahedron) = %d, want 2", got)
	}
}

func TestNegativeDepthFromCaller(t *testing.T) {
	if _, err := Tetrahedron(config.Default(), -3); !errors.Is(err, geometry.ErrNegativeDepth) {
		t.Errorf("Tetrahedron(-3) error = %v", err)
	}
	if _, err := Sierpinski(config.Default(), -1, NewSource(1)); !errors.Is(err, geometry.ErrNegativeDepth) {
		t.Errorf("Sierpinski(-1) error = %v", err)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	cfg := config.Default()
	a, err := Build(cfg, SierpinskiName, 3, 99)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(cfg, SierpinskiName, 3, 99)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < a.Buffer.Len(); i++ {
		if a.Buffer.At(i) != b.Buffer.At(i) {
			t.Fatalf("leaf %d differs for the same seed", i)
		}
	}
}
