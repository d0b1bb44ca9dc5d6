package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test deform defaults
	if cfg.Deform.Smooth {
		t.Error("expected smooth to be false by default")
	}
	if cfg.Deform.Noise != 0.5 {
		t.Errorf("expected noise 0.5, got %f", cfg.Deform.Noise)
	}
	if cfg.Deform.Scale != 0.5 {
		t.Errorf("expected scale 0.5, got %f", cfg.Deform.Scale)
	}
	if cfg.Deform.Speed != 0.5 {
		t.Errorf("expected speed 0.5, got %f", cfg.Deform.Speed)
	}
	if cfg.Deform.Basis != "perlin" {
		t.Errorf("expected basis 'perlin', got %s", cfg.Deform.Basis)
	}
	if !cfg.Deform.Bounds {
		t.Error("expected bounds to be true by default")
	}
	if cfg.Deform.Axis != [3]float32{0, 0, 1} {
		t.Errorf("expected forward axis, got %v", cfg.Deform.Axis)
	}

	// Test run defaults
	if cfg.Run.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", cfg.Run.Frames)
	}
	if cfg.Run.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Run.FPS)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "deformer.yaml")

	yamlContent := `
deform:
  smooth: true
  noise: 1.25
  scale: 2
  speed: 0.1
  basis: simplex
  seed: 7
  bounds: false
  axis: [0, 1, 0]

run:
  input: "bunny.obj"
  output_dir: "frames"
  frames: 120
  fps: 30
  scale: 0.01

logging:
  level: "debug"
  log_file: "deformer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if !cfg.Deform.Smooth {
		t.Error("expected smooth to be true")
	}
	if cfg.Deform.Noise != 1.25 {
		t.Errorf("expected noise 1.25, got %f", cfg.Deform.Noise)
	}
	if cfg.Deform.Basis != "simplex" || cfg.Deform.Seed != 7 {
		t.Errorf("expected simplex seed 7, got %s seed %d", cfg.Deform.Basis, cfg.Deform.Seed)
	}
	if cfg.Deform.Bounds {
		t.Error("expected bounds to be false")
	}
	if cfg.Deform.Axis != [3]float32{0, 1, 0} {
		t.Errorf("expected axis [0 1 0], got %v", cfg.Deform.Axis)
	}

	if cfg.Run.Input != "bunny.obj" {
		t.Errorf("expected input bunny.obj, got %s", cfg.Run.Input)
	}
	if cfg.Run.Frames != 120 || cfg.Run.FPS != 30 {
		t.Errorf("expected 120 frames at 30 fps, got %d at %d", cfg.Run.Frames, cfg.Run.FPS)
	}
	if cfg.Run.Scale != 0.01 {
		t.Errorf("expected import scale 0.01, got %f", cfg.Run.Scale)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "deformer.log" {
		t.Errorf("expected log file 'deformer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
deform:
  noise: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/deformer.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("deform:\n  amplitude: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for misspelled key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file changed config: %+v", cfg)
	}
}

func TestResolveConfigPath(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "from-env.yaml")
	t.Setenv(EnvConfig, envPath)

	if got := resolveConfigPath(); got != envPath {
		t.Errorf("resolveConfigPath() = %q, want env path %q", got, envPath)
	}

	*flagConfig = "explicit.yaml"
	defer func() { *flagConfig = "" }()
	if got := resolveConfigPath(); got != "explicit.yaml" {
		t.Errorf("resolveConfigPath() = %q, want --config to win", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown basis", func(c *Config) { c.Deform.Basis = "worley" }},
		{"zero axis", func(c *Config) { c.Deform.Axis = [3]float32{} }},
		{"zero fps", func(c *Config) { c.Run.FPS = 0 }},
		{"negative frames", func(c *Config) { c.Run.Frames = -1 }},
		{"zero import scale", func(c *Config) { c.Run.Scale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := ConfigDir()
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Base(dir) != "normal-deformer" {
		t.Errorf("ConfigDir = %s, want a normal-deformer directory", dir)
	}
	paths := SearchPaths()
	if len(paths) != 2 || paths[0] != FileName || filepath.Dir(paths[1]) != dir {
		t.Errorf("SearchPaths() = %v", paths)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Point the user config dir somewhere empty
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create deformer.yaml in current directory
	configPath := filepath.Join(tmpDir, "deformer.yaml")
	if err := os.WriteFile(configPath, []byte("deform:\n  noise: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find deformer.yaml in current directory")
	}
}

// withFlagsSet marks the named flags as given on the command line until
// the test ends.
func withFlagsSet(t *testing.T, names ...string) {
	t.Helper()
	prev := flagWasSet
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	flagWasSet = func(name string) bool { return set[name] }
	t.Cleanup(func() { flagWasSet = prev })
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		set      []string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "smooth flag",
			setup: func() { *flagSmooth = true },
			verify: func(cfg *Config) {
				if !cfg.Deform.Smooth {
					t.Error("expected smooth to be true with smooth flag")
				}
			},
			teardown: func() { *flagSmooth = false },
		},
		{
			name: "flat flag wins over smooth",
			setup: func() {
				*flagSmooth = true
				*flagFlat = true
			},
			verify: func(cfg *Config) {
				if cfg.Deform.Smooth {
					t.Error("expected smooth to be false with flat flag")
				}
			},
			teardown: func() {
				*flagSmooth = false
				*flagFlat = false
			},
		},
		{
			name: "noise scale speed flags",
			set:  []string{"noise", "scale", "speed"},
			setup: func() {
				*flagNoise = 0
				*flagScale = 3
				*flagSpeed = 0.25
			},
			verify: func(cfg *Config) {
				if cfg.Deform.Noise != 0 {
					t.Errorf("expected noise 0, got %f", cfg.Deform.Noise)
				}
				if cfg.Deform.Scale != 3 {
					t.Errorf("expected scale 3, got %f", cfg.Deform.Scale)
				}
				if cfg.Deform.Speed != 0.25 {
					t.Errorf("expected speed 0.25, got %f", cfg.Deform.Speed)
				}
			},
			teardown: func() {
				*flagNoise = 0.5
				*flagScale = 0.5
				*flagSpeed = 0.5
			},
		},
		{
			name: "negative noise and speed",
			set:  []string{"noise", "speed"},
			setup: func() {
				*flagNoise = -0.3
				*flagSpeed = -2
			},
			verify: func(cfg *Config) {
				if cfg.Deform.Noise != -0.3 {
					t.Errorf("expected noise -0.3, got %f", cfg.Deform.Noise)
				}
				if cfg.Deform.Speed != -2 {
					t.Errorf("expected speed -2, got %f", cfg.Deform.Speed)
				}
			},
			teardown: func() {
				*flagNoise = 0.5
				*flagSpeed = 0.5
			},
		},
		{
			name: "unset flags leave config alone",
			setup: func() {
				*flagNoise = -9
				*flagFrames = 3
			},
			verify: func(cfg *Config) {
				if cfg.Deform.Noise != 0.5 || cfg.Run.Frames != 60 {
					t.Errorf("expected defaults, got noise %f frames %d", cfg.Deform.Noise, cfg.Run.Frames)
				}
			},
			teardown: func() {
				*flagNoise = 0.5
				*flagFrames = 60
			},
		},
		{
			name: "run flags",
			set:  []string{"frames", "fps", "out", "basis"},
			setup: func() {
				*flagFrames = 10
				*flagFPS = 24
				*flagOutput = "out"
				*flagBasis = "simplex"
			},
			verify: func(cfg *Config) {
				if cfg.Run.Frames != 10 || cfg.Run.FPS != 24 {
					t.Errorf("expected 10 frames at 24 fps, got %d at %d", cfg.Run.Frames, cfg.Run.FPS)
				}
				if cfg.Run.OutputDir != "out" {
					t.Errorf("expected output dir 'out', got %s", cfg.Run.OutputDir)
				}
				if cfg.Deform.Basis != "simplex" {
					t.Errorf("expected basis simplex, got %s", cfg.Deform.Basis)
				}
			},
			teardown: func() {
				*flagFrames = 60
				*flagFPS = 60
				*flagOutput = ""
				*flagBasis = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlagsSet(t, tt.set...)
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "deformer.yaml")

	yamlContent := `
deform:
  noise: 1.5
  scale: 4
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagNoise = 0.75
	withFlagsSet(t, "noise")
	defer func() {
		*flagConfig = ""
		*flagNoise = 0.5
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Noise should be from flag (0.75), not file (1.5)
	if cfg.Deform.Noise != 0.75 {
		t.Errorf("expected noise 0.75 from flag, got %f", cfg.Deform.Noise)
	}

	// Scale should be from file (4) since no flag override
	if cfg.Deform.Scale != 4 {
		t.Errorf("expected scale 4 from file, got %f", cfg.Deform.Scale)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "deformer.yaml")
	if err := os.WriteFile(configPath, []byte("run:\n  fps: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for fps 0, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deformer.yaml")
	cfg := Default()
	cfg.Deform.Smooth = true
	cfg.Run.Frames = 9

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if !loaded.Deform.Smooth || loaded.Run.Frames != 9 {
		t.Errorf("saved config not restored: %+v", loaded)
	}
}
