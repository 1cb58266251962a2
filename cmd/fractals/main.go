package main

import (
	"errors"
	"flag"
	"os"

	"fractals/internal/commands"
	"fractals/internal/config"
	"fractals/internal/logger"
)

func main() {
	cfg, cfgErr := config.Load(config.Path)
	log := logger.New(cfg.LogFile, os.Stderr)
	if cfgErr != nil {
		log.Logf("%v; using defaults", cfgErr)
	}

	reg := commands.NewRegistry()
	register(reg, cfg, log)
	err := reg.Execute(os.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, commands.ErrUsage):
		log.Log(err.Error())
		reg.Usage(os.Stderr)
		os.Exit(2)
	default:
		log.Log(err.Error())
		os.Exit(1)
	}
}
