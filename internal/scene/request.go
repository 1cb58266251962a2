package scene

import (
	"fmt"
	"path/filepath"

	"fractals/internal/config"
)

// Request names a scene and the command-line overrides for it. An override whose Set field is
// false leaves the configured value in place.
type Request struct {
	Name     string
	Depth    int
	DepthSet bool
	Seed     int64
	SeedSet  bool
}

// Apply returns a copy of cfg with r's overrides written into the scene's section. cfg and
// its slices are left untouched.
func (r Request) Apply(cfg config.Config) (config.Config, error) {
	if r.Name != TetrahedronName && r.Name != SierpinskiName {
		return config.Config{}, fmt.Errorf("%w %q", ErrUnknown, r.Name)
	}
	out, err := cfg.Clone()
	if err != nil {
		return config.Config{}, err
	}
	if r.DepthSet {
		if r.Name == SierpinskiName {
			out.Sierpinski.Depth = r.Depth
		} else {
			out.Tetrahedron.Depth = r.Depth
		}
	}
	if r.SeedSet {
		out.Sierpinski.Seed = r.Seed
	}
	if err := config.CheckDepth(r.Name, ConfiguredDepth(out, r.Name)); err != nil {
		return config.Config{}, err
	}
	return out, nil
}

// Build applies r to cfg and builds the scene at the resulting depth and seed.
func (r Request) Build(cfg config.Config) (*Scene, error) {
	applied, err := r.Apply(cfg)
	if err != nil {
		return nil, err
	}
	return Build(applied, r.Name, ConfiguredDepth(applied, r.Name), applied.Sierpinski.Seed)
}

// Output is where a snapshot of a scene is written and at what size.
type Output struct {
	Path        string
	Width       int
	Height      int
	Supersample int
}

// SnapshotOutput resolves the snapshot of sc. An empty path becomes <dir>/<scene>.png. A scene
// with a fixed window size is rendered at that size, otherwise at the configured snapshot size.
func SnapshotOutput(cfg config.Snapshot, sc *Scene, path string) Output {
	out := Output{Path: path, Width: cfg.Width, Height: cfg.Height, Supersample: cfg.Supersample}
	if out.Path == "" {
		out.Path = filepath.Join(cfg.Dir, sc.Name+".png")
	}
	if sc.Width > 0 && sc.Height > 0 {
		out.Width, out.Height = int(sc.Width), int(sc.Height)
	}
	return out
}

// Stats returns the overlay text for sc.
func (s *Scene) Stats() []string {
	min, max := s.Buffer.Bounds()
	return []string{
		fmt.Sprintf("%s depth %d", s.Name, s.Depth),
		fmt.Sprintf("Triangles: %d", s.Buffer.Len()),
		fmt.Sprintf("Vertices: %d", s.Buffer.VertexCount()),
		fmt.Sprintf("Bounds: (%.2f, %.2f, %.2f) to (%.2f, %.2f, %.2f)", min[0], min[1], min[2], max[0], max[1], max[2]),
		fmt.Sprintf("Area: %.3f", s.Buffer.Area()),
	}
}
