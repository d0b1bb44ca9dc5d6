// Package mesh provides the static source mesh model, its validation, and
// the topology and normal utilities used by the deformer.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Source is an immutable triangle mesh with index-aligned vertex attributes.
type Source struct {
	Positions []mgl32.Vec3 // Vertex positions (length V)
	Normals   []mgl32.Vec3 // Unit normals, one per position
	UV0       []mgl32.Vec2 // Primary UV channel, nil or length V
	UV1       []mgl32.Vec2 // Secondary UV channel, nil or length V
	Indices   []uint32     // Triangle list (length 3T)
}

// VertexCount returns V.
func (s *Source) VertexCount() int {
	return len(s.Positions)
}

// TriangleCount returns T.
func (s *Source) TriangleCount() int {
	return len(s.Indices) / 3
}

// String returns a one-line summary.
func (s *Source) String() string {
	return fmt.Sprintf("mesh{vertices=%d triangles=%d uv0=%t uv1=%t}",
		s.VertexCount(), s.TriangleCount(), len(s.UV0) > 0, len(s.UV1) > 0)
}

// Shading selects how triangles share vertices.
type Shading int

const (
	// Flat gives every triangle corner its own vertex, so normals are per face.
	Flat Shading = iota
	// Smooth keeps the source vertices shared between adjacent triangles.
	Smooth
)

// String returns a human-readable shading name.
func (s Shading) String() string {
	switch s {
	case Flat:
		return "Flat"
	case Smooth:
		return "Smooth"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ShadingFor maps the boolean smooth option to a Shading.
func ShadingFor(smooth bool) Shading {
	if smooth {
		return Smooth
	}
	return Flat
}
