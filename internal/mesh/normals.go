package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/normal-deformer/pkg/math"
)

// fallbackNormal is used for vertices that touch only degenerate triangles.
var fallbackNormal = mgl32.Vec3{0, 1, 0}

// RecalculateNormals writes area-weighted vertex normals for the triangle
// list into out. Each triangle adds its unnormalized face normal to its
// three corners, so larger faces weigh more. Vertices shared by several
// triangles get a blended (smooth) normal; unshared corners keep their
// face normal. out must be at least len(positions) long.
func RecalculateNormals(out, positions []mgl32.Vec3, indices []uint32) {
	out = out[:len(positions)]
	for i := range out {
		out[i] = mgl32.Vec3{}
	}

	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		p0 := positions[i0]
		e1 := positions[i1].Sub(p0)
		e2 := positions[i2].Sub(p0)
		n := e1.Cross(e2)

		out[i0] = out[i0].Add(n)
		out[i1] = out[i1].Add(n)
		out[i2] = out[i2].Add(n)
	}

	for i := range out {
		out[i] = math.SafeNormalize(out[i], fallbackNormal)
	}
}

// RecalculateBounds returns the bounding box of positions.
func RecalculateBounds(positions []mgl32.Vec3) math.Bounds {
	return math.BoundsOf(positions)
}
