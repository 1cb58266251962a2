package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"fractals/internal/config"
	"fractals/internal/geometry"
	"fractals/internal/sierpinski"
)

func TestRequestApply(t *testing.T) {
	cfg := config.Default()
	cfg.Tetrahedron.Depth = 1
	cfg.Sierpinski.Depth = 3
	cfg.Sierpinski.Seed = 5

	tests := []struct {
		name      string
		req       Request
		tetDepth  int
		sierDepth int
		seed      int64
		err       error
	}{
		{"no overrides keep configured values", Request{Name: TetrahedronName, Depth: 0}, 1, 3, 5, nil},
		{"unset depth ignores flag value", Request{Name: SierpinskiName, Depth: 7}, 1, 3, 5, nil},
		{"tetrahedron depth", Request{Name: TetrahedronName, Depth: 4, DepthSet: true}, 4, 3, 5, nil},
		{"explicit depth 0", Request{Name: SierpinskiName, Depth: 0, DepthSet: true}, 1, 0, 5, nil},
		{"sierpinski depth and seed", Request{Name: SierpinskiName, Depth: 2, DepthSet: true, Seed: 9, SeedSet: true}, 1, 2, 9, nil},
		{"depth above max", Request{Name: TetrahedronName, Depth: config.MaxDepth + 1, DepthSet: true}, 0, 0, 0, config.ErrInvalid},
		{"negative depth", Request{Name: SierpinskiName, Depth: -1, DepthSet: true}, 0, 0, 0, geometry.ErrNegativeDepth},
		{"unknown scene", Request{Name: "mandelbrot"}, 0, 0, 0, ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Apply(cfg)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Apply() error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Tetrahedron.Depth != tt.tetDepth || got.Sierpinski.Depth != tt.sierDepth || got.Sierpinski.Seed != tt.seed {
				t.Errorf("Apply() depths %d/%d seed %d, want %d/%d seed %d",
					got.Tetrahedron.Depth, got.Sierpinski.Depth, got.Sierpinski.Seed, tt.tetDepth, tt.sierDepth, tt.seed)
			}
		})
	}
	if cfg.Tetrahedron.Depth != 1 || cfg.Sierpinski.Depth != 3 || cfg.Sierpinski.Seed != 5 {
		t.Errorf("Apply modified the source config: %+v", cfg)
	}
}

func TestRequestApplyDoesNotShareSlices(t *testing.T) {
	cfg := config.Default()
	got, err := Request{Name: TetrahedronName}.Apply(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got.Tetrahedron.Palette[0] = geometry.RGB(0, 0, 0)
	got.Sierpinski.Vertices[0] = geometry.Point2{9, 9}
	if cfg.Tetrahedron.Palette[0] == got.Tetrahedron.Palette[0] || cfg.Sierpinski.Vertices[0] == got.Sierpinski.Vertices[0] {
		t.Error("applied config shares slices with the source")
	}
}

func TestRequestBuild(t *testing.T) {
	cfg := config.Default()
	cfg.Tetrahedron.Depth = 1
	tests := []struct {
		name  string
		req   Request
		depth int
		tris  int
	}{
		{"configured depth", Request{Name: TetrahedronName}, 1, 16},
		{"flag depth", Request{Name: TetrahedronName, Depth: 0, DepthSet: true}, 0, 4},
		{"sierpinski configured depth", Request{Name: SierpinskiName, Seed: 3, SeedSet: true}, cfg.Sierpinski.Depth, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := tt.req.Build(cfg)
			if err != nil {
				t.Fatal(err)
			}
			if sc.Depth != tt.depth || sc.Buffer.Len() != tt.tris {
				t.Errorf("Build() depth %d with %d triangles, want %d with %d", sc.Depth, sc.Buffer.Len(), tt.depth, tt.tris)
			}
		})
	}
}

func TestSnapshotOutput(t *testing.T) {
	snap := config.Default().Snapshot
	tests := []struct {
		name string
		sc   *Scene
		path string
		want Output
	}{
		{
			"fixed window size wins",
			&Scene{Name: TetrahedronName, Width: 150, Height: 150},
			"",
			Output{filepath.Join("out", "tetrahedron.png"), 150, 150, 2},
		},
		{
			"monitor-sized scene uses snapshot size",
			&Scene{Name: SierpinskiName},
			"",
			Output{filepath.Join("out", "sierpinski.png"), 600, 600, 2},
		},
		{
			"one zero dimension uses snapshot size",
			&Scene{Name: SierpinskiName, Width: 300},
			"",
			Output{filepath.Join("out", "sierpinski.png"), 600, 600, 2},
		},
		{
			"explicit path kept",
			&Scene{Name: SierpinskiName},
			"shots/s.png",
			Output{"shots/s.png", 600, 600, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapshotOutput(snap, tt.sc, tt.path); got != tt.want {
				t.Errorf("SnapshotOutput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	buf, err := sierpinski.Build(sierpinski.Seed, 1, sierpinski.Palette(), NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	sc := &Scene{Name: SierpinskiName, Depth: 1, Buffer: buf}
	want := []string{
		"sierpinski depth 1",
		"Triangles: 3",
		"Vertices: 9",
		"Bounds: (-1.00, -1.00, 0.00) to (1.00, 1.00, 0.00)",
		"Area: 1.500",
	}
	got := sc.Stats()
	if len(got) != len(want) {
		t.Fatalf("Stats() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
