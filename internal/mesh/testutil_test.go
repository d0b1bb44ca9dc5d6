package mesh

import "github.com/go-gl/mathgl/mgl32"

// quad returns a unit quad in the XY plane split into two triangles that
// share vertices 0 and 2.
func quad() *Source {
	return &Source{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Normals:   []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		UV0:       []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		UV1:       []mgl32.Vec2{{0.5, 0}, {0.5, 0.25}, {0.5, 0.5}, {0.5, 0.75}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
}

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}
