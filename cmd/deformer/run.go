package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/normal-deformer/internal/config"
	"github.com/Faultbox/normal-deformer/internal/deform"
	"github.com/Faultbox/normal-deformer/internal/logger"
	"github.com/Faultbox/normal-deformer/internal/mesh"
	"github.com/Faultbox/normal-deformer/pkg/formats"
	"github.com/Faultbox/normal-deformer/pkg/noise"
)

func cmdRun(cfg *config.Config, args []string) error {
	src, err := loadSource(cfg, args)
	if err != nil {
		return err
	}

	opts, err := deformOptions(cfg)
	if err != nil {
		return err
	}
	opts.Logger = logger.Named("deform")

	var sink deform.Sink
	if cfg.Run.OutputDir != "" {
		if err := os.MkdirAll(cfg.Run.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		sink = &objSink{dir: cfg.Run.OutputDir, log: logger.Named("sink")}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &deform.Runner{
		Deformer: deform.New(src, opts),
		Sink:     sink,
		Step:     1 / float32(cfg.Run.FPS),
		Frames:   cfg.Run.Frames,
		Logger:   logger.Named("runner"),
	}
	return runner.Run(ctx)
}

// loadSource reads the mesh named on the command line, or run.input, and
// applies the configured import placement.
func loadSource(cfg *config.Config, args []string) (*mesh.Source, error) {
	path := cfg.Run.Input
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no input mesh: pass a path or set run.input")
	}

	src, err := mesh.LoadOBJ(path)
	if err != nil {
		return nil, err
	}

	offset := mgl32.Vec3(cfg.Run.Offset)
	if cfg.Run.Scale != 1 || offset != (mgl32.Vec3{}) {
		src = src.Transformed(mesh.Placement(cfg.Run.Scale, offset))
	}

	logger.Info("loaded mesh", zap.String("path", path), zap.Stringer("mesh", src))
	return src, nil
}

// deformOptions maps the deform config section onto deformer options.
func deformOptions(cfg *config.Config) (deform.Options, error) {
	basis, err := noise.ParseBasis(cfg.Deform.Basis)
	if err != nil {
		return deform.Options{}, err
	}
	field, err := noise.New(basis, cfg.Deform.Seed)
	if err != nil {
		return deform.Options{}, err
	}
	return deform.Options{
		Shading: mesh.ShadingFor(cfg.Deform.Smooth),
		Noise:   cfg.Deform.Noise,
		Scale:   cfg.Deform.Scale,
		Speed:   cfg.Deform.Speed,
		Axis:    mgl32.Vec3(cfg.Deform.Axis),
		Field:   field,
		Bounds:  cfg.Deform.Bounds,
	}, nil
}

// objSink writes every frame to <dir>/frame_NNNN.obj.
type objSink struct {
	dir string
	log *zap.Logger
}

func (s *objSink) Upload(f deform.Frame) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.obj", f.Index))
	obj := mesh.ToOBJ(fmt.Sprintf("frame_%04d", f.Index), f.Positions, f.Normals, f.UV0, f.Indices)
	if err := formats.WriteOBJFile(path, obj); err != nil {
		return err
	}
	s.log.Debug("wrote frame",
		zap.String("path", path),
		zap.Float32("elapsed", f.Elapsed),
		zap.Any("bounds_min", f.Bounds.Min),
		zap.Any("bounds_max", f.Bounds.Max),
	)
	return nil
}
