package deform

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/normal-deformer/pkg/math"
)

// Frame is the result of one completed tick, ready for upload. Its slices
// alias the Deformer's buffers and are only valid until the next tick.
type Frame struct {
	Index     int
	Elapsed   float32
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
	UV0       []mgl32.Vec2
	UV1       []mgl32.Vec2
	Bounds    math.Bounds
}

// Frame packages the output of the last tick.
func (d *Deformer) Frame() Frame {
	f := Frame{
		Index:     d.frame,
		Elapsed:   d.elapsed,
		Positions: d.positions,
		Normals:   d.normals,
		Bounds:    d.bounds,
	}
	if d.topo != nil {
		f.Indices = d.topo.Indices
		f.UV0 = d.topo.UV0
		f.UV1 = d.topo.UV1
	}
	return f
}

// Sink receives each frame after its recomputation has completed.
type Sink interface {
	Upload(f Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(f Frame) error

// Upload implements Sink.
func (fn SinkFunc) Upload(f Frame) error { return fn(f) }

// Runner drives a Deformer with a fixed time step and hands every frame
// to a Sink.
type Runner struct {
	Deformer *Deformer
	Sink     Sink
	Step     float32 // Seconds per frame
	Frames   int
	Logger   *zap.Logger
}

// Run ticks Frames times. Cancellation is checked between ticks; a tick
// that has started always completes.
func (r *Runner) Run(ctx context.Context) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if r.Deformer == nil {
		return fmt.Errorf("%w: runner has no deformer", ErrUninitialized)
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: step %v", ErrInvalidOptions, r.Step)
	}
	if err := r.Deformer.Init(); err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < r.Frames; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Int("completed", i), zap.Error(err))
			return err
		}
		if err := r.Deformer.Advance(r.Step); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if r.Sink != nil {
			if err := r.Sink.Upload(r.Deformer.Frame()); err != nil {
				return fmt.Errorf("uploading frame %d: %w", i, err)
			}
		}
	}

	log.Info("run complete",
		zap.Int("frames", r.Frames),
		zap.Float32("elapsed", r.Deformer.Elapsed()),
		zap.Duration("wall", time.Since(start)),
	)
	return nil
}
