package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/normal-deformer/pkg/math"
)

// Transformed returns a copy of s with positions multiplied by m and
// normals by the inverse transpose of its upper 3x3. Indices and UVs are
// shared with s.
func (s *Source) Transformed(m mgl32.Mat4) *Source {
	out := &Source{
		Positions: make([]mgl32.Vec3, len(s.Positions)),
		Normals:   make([]mgl32.Vec3, len(s.Normals)),
		UV0:       s.UV0,
		UV1:       s.UV1,
		Indices:   s.Indices,
	}

	normalMat := m.Mat3().Inv().Transpose()
	for i, p := range s.Positions {
		out.Positions[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	for i, n := range s.Normals {
		out.Normals[i] = math.SafeNormalize(normalMat.Mul3x1(n), n)
	}
	return out
}

// Placement builds a transform that scales uniformly about the origin and
// then translates by offset.
func Placement(scale float32, offset mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(offset[0], offset[1], offset[2]).Mul4(mgl32.Scale3D(scale, scale, scale))
}
