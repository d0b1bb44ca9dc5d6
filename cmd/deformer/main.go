// deformer animates a mesh by displacing its vertices along their normals
// with scrolling fractal noise.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/normal-deformer/internal/config"
	"github.com/Faultbox/normal-deformer/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	rest := args[1:]

	switch command {
	case "run":
		err = cmdRun(cfg, rest)
	case "info":
		err = cmdInfo(cfg, rest)
	case "sample":
		err = cmdSample(cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`deformer - noise-driven normal displacement for static meshes

Usage:
  deformer [flags] <command> [args]

Commands:
  run [mesh.obj]       Deform for N frames, optionally writing frame OBJs
  info [mesh.obj]      Show mesh and topology information
  sample <x> <y> <z>   Print noise values at a coordinate

Flags:
  -config <file>   YAML config (default $DEFORMER_CONFIG, then ./deformer.yaml)
  -smooth / -flat  Shading mode
  -noise, -scale, -speed, -basis
  -frames, -fps, -out <dir>
  -debug

Examples:
  deformer -frames 120 -out frames run sphere.obj
  deformer -smooth info sphere.obj
  deformer sample 0.25 0.5 0.75`)
}
