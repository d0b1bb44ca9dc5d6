// Package config handles deformer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/normal-deformer/pkg/noise"
)

// Config holds all deformer settings.
type Config struct {
	Deform  DeformConfig  `yaml:"deform"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
}

// DeformConfig holds the displacement settings. They are fixed for the
// lifetime of a deformer.
type DeformConfig struct {
	Smooth bool       `yaml:"smooth"` // Share vertices between triangles
	Noise  float32    `yaml:"noise"`  // Displacement amplitude
	Scale  float32    `yaml:"scale"`  // Noise spatial frequency
	Speed  float32    `yaml:"speed"`  // Noise scroll rate
	Basis  string     `yaml:"basis"`  // perlin or simplex
	Seed   int64      `yaml:"seed"`   // Simplex seed
	Bounds bool       `yaml:"bounds"` // Recompute bounds every frame
	Axis   [3]float32 `yaml:"axis"`   // Scroll direction
}

// RunConfig holds the offline runner settings.
type RunConfig struct {
	Input     string     `yaml:"input"`      // Source OBJ path
	OutputDir string     `yaml:"output_dir"` // Frame OBJ directory; empty disables writing
	Frames    int        `yaml:"frames"`
	FPS       int        `yaml:"fps"`
	Scale     float32    `yaml:"scale"`  // Uniform import scale
	Offset    [3]float32 `yaml:"offset"` // Import translation
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Deform: DeformConfig{
			Smooth: false,
			Noise:  0.5,
			Scale:  0.5,
			Speed:  0.5,
			Basis:  string(noise.BasisPerlin),
			Bounds: true,
			Axis:   [3]float32{0, 0, 1},
		},
		Run: RunConfig{
			Frames: 60,
			FPS:    60,
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise fail later at run time.
func (c *Config) Validate() error {
	if _, err := noise.ParseBasis(c.Deform.Basis); err != nil {
		return err
	}
	if c.Deform.Axis == [3]float32{} {
		return fmt.Errorf("deform.axis must be non-zero")
	}
	if c.Run.FPS <= 0 {
		return fmt.Errorf("run.fps must be positive, got %d", c.Run.FPS)
	}
	if c.Run.Frames < 0 {
		return fmt.Errorf("run.frames must not be negative, got %d", c.Run.Frames)
	}
	if c.Run.Scale == 0 {
		return fmt.Errorf("run.scale must be non-zero")
	}
	return nil
}
