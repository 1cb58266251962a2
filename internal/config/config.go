package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"fractals/internal/geometry"
	"fractals/internal/logger"
	"fractals/internal/render"
	"fractals/internal/sierpinski"
	"fractals/internal/tetra"
)

// Path is the config file, relative to the process working directory.
const Path = "config/fractals.yaml"

// MaxDepth bounds the subdivision depth accepted from config or flags. Depth 8 is already
// 262144 tetrahedron faces.
const MaxDepth = 8

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Tetrahedron configures the tetrahedron scene.
type Tetrahedron struct {
	Depth    int              `yaml:"depth"`
	Width    int32            `yaml:"width"`
	Height   int32            `yaml:"height"`
	Vertices []geometry.Point3 `yaml:"vertices"`
	Palette  []geometry.Color  `yaml:"palette"`
}

// Sierpinski configures the Sierpinski scene. Width/Height 0 mean the monitor size.
// Seed 0 seeds the color picker from the clock.
type Sierpinski struct {
	Depth    int              `yaml:"depth"`
	Width    int32            `yaml:"width"`
	Height   int32            `yaml:"height"`
	Seed     int64            `yaml:"seed"`
	Vertices []geometry.Point2 `yaml:"vertices"`
	Palette  []geometry.Color  `yaml:"palette"`
}

// Snapshot configures headless PNG output.
type Snapshot struct {
	Dir         string `yaml:"dir"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
}

// Config is the whole file.
type Config struct {
	LogFile     string         `yaml:"log_file"`
	ShowStats   bool           `yaml:"show_stats"`
	Background  geometry.Color `yaml:"background"`
	Tetrahedron Tetrahedron    `yaml:"tetrahedron"`
	Sierpinski  Sierpinski     `yaml:"sierpinski"`
	Snapshot    Snapshot       `yaml:"snapshot"`
}

// Default returns the demo settings: depth 2 for both scenes, a 150x150 tetrahedron window and a
// monitor-sized Sierpinski window.
func Default() Config {
	return Config{
		LogFile:    logger.DefaultPath,
		ShowStats:  false,
		Background: render.Background,
		Tetrahedron: Tetrahedron{
			Depth:    tetra.DefaultDepth,
			Width:    150,
			Height:   150,
			Vertices: append([]geometry.Point3(nil), tetra.Seed[:]...),
			Palette:  append([]geometry.Color(nil), tetra.Palette[:]...),
		},
		Sierpinski: Sierpinski{
			Depth:    sierpinski.DefaultDepth,
			Vertices: append([]geometry.Point2(nil), sierpinski.Seed[:]...),
			Palette:  sierpinski.Palette(),
		},
		Snapshot: Snapshot{
			Dir:         "out",
			Width:       600,
			Height:      600,
			Supersample: 2,
		},
	}
}

// Load reads the config at path on top of Default, so the file only needs the fields it changes.
// A missing file is not an error. On any other failure Load returns Default() and the error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	// Sequences replace the defaults wholesale rather than merging element by element.
	c.Tetrahedron.Vertices, c.Tetrahedron.Palette = nil, nil
	c.Sierpinski.Vertices, c.Sierpinski.Palette = nil, nil
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	d := Default()
	if c.Tetrahedron.Vertices == nil {
		c.Tetrahedron.Vertices = d.Tetrahedron.Vertices
	}
	if c.Tetrahedron.Palette == nil {
		c.Tetrahedron.Palette = d.Tetrahedron.Palette
	}
	if c.Sierpinski.Vertices == nil {
		c.Sierpinski.Vertices = d.Sierpinski.Vertices
	}
	if c.Sierpinski.Palette == nil {
		c.Sierpinski.Palette = d.Sierpinski.Palette
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c as YAML to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks depths, palettes, seed vertices and sizes.
func (c Config) Validate() error {
	if err := CheckDepth("tetrahedron", c.Tetrahedron.Depth); err != nil {
		return err
	}
	if err := CheckDepth("sierpinski", c.Sierpinski.Depth); err != nil {
		return err
	}
	if n := len(c.Tetrahedron.Vertices); n != 4 {
		return fmt.Errorf("%w: tetrahedron needs 4 vertices, got %d", ErrInvalid, n)
	}
	if n := len(c.Tetrahedron.Palette); n != 4 {
		return fmt.Errorf("%w: tetrahedron needs 4 palette colors, got %d", ErrInvalid, n)
	}
	if n := len(c.Sierpinski.Vertices); n != 3 {
		return fmt.Errorf("%w: sierpinski needs 3 vertices, got %d", ErrInvalid, n)
	}
	if len(c.Sierpinski.Palette) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, sierpinski.ErrEmptyPalette)
	}
	for _, pal := range [][]geometry.Color{c.Tetrahedron.Palette, c.Sierpinski.Palette, {c.Background}} {
		for _, col := range pal {
			for _, v := range col {
				if v < 0 || v > 1 {
					return fmt.Errorf("%w: color %v outside [0,1]", ErrInvalid, col)
				}
			}
		}
	}
	if c.Tetrahedron.Width < 0 || c.Tetrahedron.Height < 0 || c.Sierpinski.Width < 0 || c.Sierpinski.Height < 0 {
		return fmt.Errorf("%w: negative window size", ErrInvalid)
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return fmt.Errorf("%w: snapshot size %dx%d", ErrInvalid, c.Snapshot.Width, c.Snapshot.Height)
	}
	return nil
}

// CheckDepth rejects negative depths and depths above MaxDepth.
func CheckDepth(scene string, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %s depth %d: %w", ErrInvalid, scene, depth, geometry.ErrNegativeDepth)
	}
	if depth > MaxDepth {
		return fmt.Errorf("%w: %s depth %d exceeds %d", ErrInvalid, scene, depth, MaxDepth)
	}
	return nil
}

// Clone returns a deep copy of c; slices in the copy can be modified freely.
func (c Config) Clone() (Config, error) {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		return Config{}, fmt.Errorf("config: clone: %w", err)
	}
	return out, nil
}

// TetraSeed returns the configured tetrahedron vertices as an array. Validate guarantees the length.
func (t Tetrahedron) TetraSeed() [4]geometry.Point3 {
	var s [4]geometry.Point3
	copy(s[:], t.Vertices)
	return s
}

// FacePalette returns the configured face colors as an array.
func (t Tetrahedron) FacePalette() [4]geometry.Color {
	var p [4]geometry.Color
	copy(p[:], t.Palette)
	return p
}

// TriangleSeed returns the configured Sierpinski vertices as an array.
func (s Sierpinski) TriangleSeed() [3]geometry.Point2 {
	var v [3]geometry.Point2
	copy(v[:], s.Vertices)
	return v
}
