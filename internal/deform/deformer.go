// Package deform displaces mesh vertices along their normals with an
// animated fractal noise field and rebuilds the shading normals each frame.
package deform

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/normal-deformer/internal/mesh"
	"github.com/Faultbox/normal-deformer/pkg/math"
	"github.com/Faultbox/normal-deformer/pkg/noise"
)

// Deformer errors.
var (
	// ErrInvalidMesh aliases mesh.ErrInvalidMesh. It also covers frames
	// whose noise sample came out non-finite.
	ErrInvalidMesh = mesh.ErrInvalidMesh

	ErrUninitialized  = errors.New("deformer not initialized")
	ErrInvalidOptions = errors.New("invalid deformer options")
	ErrClockRewind    = errors.New("negative frame delta")
)

// Forward is the default scroll axis of the noise domain.
var Forward = mgl32.Vec3{0, 0, 1}

// State is the lifecycle state of a Deformer.
type State int

const (
	Uninitialized State = iota
	Ready
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Options configures a Deformer. They are fixed for its lifetime.
type Options struct {
	Shading mesh.Shading
	Noise   float32     // Displacement amplitude
	Scale   float32     // Spatial frequency of the noise relative to mesh units
	Speed   float32     // Domain scroll rate along Axis
	Axis    mgl32.Vec3  // Scroll direction; zero means Forward
	Field   noise.Field // Base noise; nil means noise.Perlin
	Bounds  bool        // Recompute bounds after every tick
	Logger  *zap.Logger // nil means no logging
}

// DefaultOptions returns flat shading with amplitude, scale and speed 0.5.
func DefaultOptions() Options {
	return Options{
		Shading: mesh.Flat,
		Noise:   0.5,
		Scale:   0.5,
		Speed:   0.5,
		Axis:    Forward,
		Field:   noise.Perlin{},
		Bounds:  true,
	}
}

// Deformer owns the per-frame working buffers for one source mesh.
// It is not safe for concurrent use; ticks must not overlap.
type Deformer struct {
	src  *mesh.Source
	opts Options
	log  *zap.Logger

	state State
	topo  *mesh.Topology

	displaced []mgl32.Vec3 // One per source vertex
	scratch   []mgl32.Vec3 // Next frame's displaced, swapped in on success
	positions []mgl32.Vec3 // One per output vertex
	normals   []mgl32.Vec3 // One per output vertex
	bounds    math.Bounds

	elapsed float32 // Time of the last tick
	phase   float32 // Accumulated speed*dt for Advance
	frame   int
}

// New creates an uninitialized Deformer for src. Call Init before ticking.
func New(src *mesh.Source, opts Options) *Deformer {
	if opts.Axis == (mgl32.Vec3{}) {
		opts.Axis = Forward
	}
	if opts.Field == nil {
		opts.Field = noise.Perlin{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Deformer{
		src:  src,
		opts: opts,
		log:  log,
	}
}

// Init prepares the topology and allocates the working buffers, moving
// the Deformer to Ready. Calling Init on a Ready Deformer is a no-op.
func (d *Deformer) Init() error {
	if d.state == Ready {
		return nil
	}
	if d.src == nil {
		return fmt.Errorf("%w: no source mesh", ErrInvalidMesh)
	}
	if !math.IsFinite(d.opts.Noise) || !math.IsFinite(d.opts.Scale) || !math.IsFinite(d.opts.Speed) || !math.IsFiniteVec3(d.opts.Axis) {
		return fmt.Errorf("%w: noise=%v scale=%v speed=%v axis=%v",
			ErrInvalidOptions, d.opts.Noise, d.opts.Scale, d.opts.Speed, d.opts.Axis)
	}

	topo, err := mesh.Prepare(d.src, d.opts.Shading)
	if err != nil {
		return fmt.Errorf("preparing topology: %w", err)
	}

	d.topo = topo
	d.displaced = make([]mgl32.Vec3, d.src.VertexCount())
	d.scratch = make([]mgl32.Vec3, d.src.VertexCount())
	d.positions = make([]mgl32.Vec3, topo.VertexCount)
	d.normals = make([]mgl32.Vec3, topo.VertexCount)
	d.bounds = math.EmptyBounds()
	d.state = Ready

	d.log.Info("deformer ready",
		zap.Stringer("shading", topo.Shading),
		zap.Int("source_vertices", d.src.VertexCount()),
		zap.Int("triangles", d.src.TriangleCount()),
		zap.Int("output_vertices", topo.VertexCount),
		zap.Float32("noise", d.opts.Noise),
		zap.Float32("scale", d.opts.Scale),
		zap.Float32("speed", d.opts.Speed),
	)
	return nil
}

// Tick deforms the mesh for the given elapsed time. The noise domain is
// offset by Axis * elapsed * Speed, so the result depends only on elapsed.
func (d *Deformer) Tick(elapsed float32) error {
	if d.state != Ready {
		return ErrUninitialized
	}
	offset := d.opts.Axis.Mul(elapsed).Mul(d.opts.Speed)
	d.elapsed = elapsed
	d.phase = elapsed * d.opts.Speed
	return d.evaluate(offset)
}

// Advance moves the clock forward by dt and deforms the mesh. The scroll
// distance accumulates Speed*dt per call.
func (d *Deformer) Advance(dt float32) error {
	if d.state != Ready {
		return ErrUninitialized
	}
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrClockRewind, dt)
	}
	d.elapsed += dt
	d.phase += d.opts.Speed * dt
	return d.evaluate(d.opts.Axis.Mul(d.phase))
}

// evaluate displaces every source vertex, scatters into the output
// layout, then rebuilds normals. Normals are only computed once all
// positions are final. A failed frame leaves every buffer holding the
// previous frame.
func (d *Deformer) evaluate(offset mgl32.Vec3) error {
	scale := d.opts.Scale
	amp := d.opts.Noise
	field := d.opts.Field

	for i, sv := range d.src.Positions {
		crd := sv.Add(offset).Mul(scale)
		disp := noise.Fractal4(field, crd[0], crd[1], crd[2])
		if !math.IsFinite(disp) {
			return fmt.Errorf("%w: non-finite noise sample at vertex %d (coord %v)", ErrInvalidMesh, i, crd)
		}
		p := sv.Add(d.src.Normals[i].Mul(disp).Mul(amp))
		if !math.IsFiniteVec3(p) {
			return fmt.Errorf("%w: non-finite displacement at vertex %d", ErrInvalidMesh, i)
		}
		d.scratch[i] = p
	}
	d.displaced, d.scratch = d.scratch, d.displaced

	d.topo.Scatter(d.positions, d.displaced)
	mesh.RecalculateNormals(d.normals, d.positions, d.topo.Indices)
	if d.opts.Bounds {
		d.bounds = mesh.RecalculateBounds(d.positions)
	}

	d.frame++
	if ce := d.log.Check(zap.DebugLevel, "deformed frame"); ce != nil {
		ce.Write(
			zap.Int("frame", d.frame),
			zap.Float32("elapsed", d.elapsed),
			zap.Float32("phase", d.phase),
		)
	}
	return nil
}

// State returns the lifecycle state.
func (d *Deformer) State() State { return d.state }

// Options returns the options the Deformer was built with.
func (d *Deformer) Options() Options { return d.opts }

// Topology returns the active topology, or nil before Init.
func (d *Deformer) Topology() *mesh.Topology { return d.topo }

// Displaced returns the displaced position of every source vertex from
// the last tick. The slice is reused by the next tick.
func (d *Deformer) Displaced() []mgl32.Vec3 { return d.displaced }

// Positions returns the output vertex positions from the last tick.
// The slice is reused by the next tick.
func (d *Deformer) Positions() []mgl32.Vec3 { return d.positions }

// Normals returns the output vertex normals from the last tick.
// The slice is reused by the next tick.
func (d *Deformer) Normals() []mgl32.Vec3 { return d.normals }

// Bounds returns the bounds computed by the last tick. It stays empty
// when Options.Bounds is off.
func (d *Deformer) Bounds() math.Bounds { return d.bounds }

// Elapsed returns the clock time of the last tick.
func (d *Deformer) Elapsed() float32 { return d.elapsed }

// FrameCount returns the number of completed ticks.
func (d *Deformer) FrameCount() int { return d.frame }
