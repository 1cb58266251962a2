package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fractals/internal/commands"
	"fractals/internal/config"
	"fractals/internal/debug"
	"fractals/internal/graphics"
	"fractals/internal/logger"
	"fractals/internal/render"
	"fractals/internal/scene"
	"fractals/internal/snapshot"
)

// register adds the window subcommands (one per scene) and snapshot.
func register(reg *commands.Registry, cfg config.Config, log *logger.Logger) {
	tfs := flag.NewFlagSet(scene.TetrahedronName, flag.ContinueOnError)
	tdepth := tfs.Int("depth", cfg.Tetrahedron.Depth, "subdivision depth")
	reg.Register(scene.TetrahedronName, "open a window with the subdivided tetrahedron", tfs, func() error {
		return show(cfg, scene.Request{
			Name:     scene.TetrahedronName,
			Depth:    *tdepth,
			DepthSet: commands.IsSet(tfs, "depth"),
		}, log)
	})

	sfs := flag.NewFlagSet(scene.SierpinskiName, flag.ContinueOnError)
	sdepth := sfs.Int("depth", cfg.Sierpinski.Depth, "subdivision depth")
	sseed := sfs.Int64("seed", cfg.Sierpinski.Seed, "color seed (0 = clock)")
	reg.Register(scene.SierpinskiName, "open a window with the Sierpinski triangle", sfs, func() error {
		return show(cfg, scene.Request{
			Name:     scene.SierpinskiName,
			Depth:    *sdepth,
			DepthSet: commands.IsSet(sfs, "depth"),
			Seed:     *sseed,
			SeedSet:  commands.IsSet(sfs, "seed"),
		}, log)
	})

	pfs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	name := pfs.String("scene", scene.TetrahedronName, "scene to render: tetrahedron or sierpinski")
	pdepth := pfs.Int("depth", 0, "subdivision depth (default from config)")
	pseed := pfs.Int64("seed", cfg.Sierpinski.Seed, "color seed (0 = clock)")
	out := pfs.String("o", "", "output PNG (default <snapshot dir>/<scene>.png)")
	reg.Register("snapshot", "render a scene to a PNG file without a window", pfs, func() error {
		return snap(cfg, scene.Request{
			Name:     *name,
			Depth:    *pdepth,
			DepthSet: commands.IsSet(pfs, "depth"),
			Seed:     *pseed,
			SeedSet:  commands.IsSet(pfs, "seed"),
		}, *out, log)
	})
}

// show opens a window and draws the scene until it is closed. Rendering failures are logged
// and end the command without an error.
func show(cfg config.Config, req scene.Request, log *logger.Logger) error {
	sc, err := req.Build(cfg)
	if err != nil {
		return err
	}
	win, err := graphics.Open(sc.Width, sc.Height, sc.Title)
	if err != nil {
		log.Logf("graphics: %v", err)
		return nil
	}
	defer win.Close()

	h, err := render.Prepare(win, sc.Buffer)
	if err != nil {
		log.Logf("%v", err)
		return nil
	}
	overlay := debug.New()
	overlay.SetShowStats(cfg.ShowStats)
	overlay.SetStats(sc.Stats())

	win.Run(func() {
		render.Frame(win, sc.Background, h)
		overlay.Draw()
	})
	return nil
}

// snap renders the scene headless and writes it to path, or to the default snapshot path when
// path is empty.
func snap(cfg config.Config, req scene.Request, path string, log *logger.Logger) error {
	sc, err := req.Build(cfg)
	if err != nil {
		return err
	}
	o := scene.SnapshotOutput(cfg.Snapshot, sc, path)
	target, err := snapshot.New(o.Width, o.Height, o.Supersample)
	if err != nil {
		return err
	}
	if !render.Present(target, sc.Buffer, sc.Background, log) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(o.Path), 0755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := target.Save(o.Path); err != nil {
		return err
	}
	log.Logf("snapshot: wrote %s (%s depth %d, %d triangles, area %.3f)", o.Path, sc.Name, sc.Depth, sc.Buffer.Len(), sc.Buffer.Area())
	return nil
}
