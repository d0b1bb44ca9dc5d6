package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Topology is the vertex layout the deformer writes into. It is derived
// once from a Source and never changes afterwards.
type Topology struct {
	Shading     Shading
	Indices     []uint32     // Active triangle list
	VertexCount int          // Output vertex count: V for Smooth, 3T for Flat
	UV0         []mgl32.Vec2 // UV0 laid out for the active vertices
	UV1         []mgl32.Vec2 // UV1 laid out for the active vertices

	// corners maps each output vertex to the source vertex it came from.
	// Nil in Smooth mode, where the mapping is the identity.
	corners []uint32
}

// Prepare derives the active topology for src.
//
// Smooth reuses the source index buffer and UV channels. Flat turns every
// triangle corner into its own vertex: the index buffer becomes 0..3T-1
// and each UV channel is expanded so corner k carries the UV of source
// vertex src.Indices[k].
func Prepare(src *Source, shading Shading) (*Topology, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	switch shading {
	case Smooth:
		return &Topology{
			Shading:     Smooth,
			Indices:     src.Indices,
			VertexCount: src.VertexCount(),
			UV0:         src.UV0,
			UV1:         src.UV1,
		}, nil

	case Flat:
		n := len(src.Indices)
		indices := make([]uint32, n)
		for k := range indices {
			indices[k] = uint32(k)
		}
		return &Topology{
			Shading:     Flat,
			Indices:     indices,
			VertexCount: n,
			UV0:         expandUV(src.UV0, src.Indices),
			UV1:         expandUV(src.UV1, src.Indices),
			corners:     src.Indices,
		}, nil

	default:
		return nil, fmt.Errorf("unknown shading mode %v", shading)
	}
}

func expandUV(uv []mgl32.Vec2, corners []uint32) []mgl32.Vec2 {
	if len(uv) == 0 {
		return nil
	}
	out := make([]mgl32.Vec2, len(corners))
	for k, idx := range corners {
		out[k] = uv[idx]
	}
	return out
}

// SourceVertex returns the source vertex that output vertex k was made from.
func (t *Topology) SourceVertex(k int) int {
	if t.corners == nil {
		return k
	}
	return int(t.corners[k])
}

// Scatter copies per-source-vertex values into dst, one entry per output
// vertex. In Smooth mode this is a straight copy. dst must have length
// VertexCount.
func (t *Topology) Scatter(dst, src []mgl32.Vec3) {
	if t.corners == nil {
		copy(dst, src)
		return
	}
	for k, idx := range t.corners {
		dst[k] = src[idx]
	}
}
