package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSmooth = flag.Bool("smooth", false, "Use smooth shading (shared vertices)")
	flagFlat   = flag.Bool("flat", false, "Use flat shading (split vertices)")
	flagNoise  = flag.Float64("noise", 0.5, "Displacement amplitude (negative pushes inward)")
	flagScale  = flag.Float64("scale", 0.5, "Noise spatial frequency")
	flagSpeed  = flag.Float64("speed", 0.5, "Noise scroll speed (negative reverses)")
	flagBasis  = flag.String("basis", "", "Noise basis: perlin or simplex")
	flagFrames = flag.Int("frames", 60, "Number of frames to run")
	flagFPS    = flag.Int("fps", 60, "Frames per second of the fixed clock")
	flagOutput = flag.String("out", "", "Directory for per-frame OBJ output")
)

// flagWasSet reports whether a flag was given on the command line, as
// opposed to holding its default.
var flagWasSet = func(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSmooth {
		cfg.Deform.Smooth = true
	}
	if *flagFlat {
		cfg.Deform.Smooth = false
	}
	if flagWasSet("noise") {
		cfg.Deform.Noise = float32(*flagNoise)
	}
	if flagWasSet("scale") {
		cfg.Deform.Scale = float32(*flagScale)
	}
	if flagWasSet("speed") {
		cfg.Deform.Speed = float32(*flagSpeed)
	}
	if *flagBasis != "" {
		cfg.Deform.Basis = *flagBasis
	}
	if flagWasSet("frames") {
		cfg.Run.Frames = *flagFrames
	}
	if flagWasSet("fps") {
		cfg.Run.FPS = *flagFPS
	}
	if *flagOutput != "" {
		cfg.Run.OutputDir = *flagOutput
	}
}
