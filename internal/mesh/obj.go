package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/normal-deformer/pkg/formats"
	"github.com/Faultbox/normal-deformer/pkg/math"
)

// FromOBJ builds a Source from parsed OBJ data. Each distinct
// position/texcoord/normal triple becomes one vertex, polygons are fan
// triangulated, and normals are computed from the geometry when the file
// has none for a corner.
func FromOBJ(obj *formats.OBJ) (*Source, error) {
	if len(obj.Faces) == 0 {
		return nil, fmt.Errorf("%w: OBJ has no faces", ErrInvalidMesh)
	}

	src := &Source{}
	weld := make(map[formats.OBJCorner]uint32)
	hasUV := len(obj.TexCoords) > 0
	missingNormals := false

	vertexFor := func(c formats.OBJCorner) uint32 {
		if idx, ok := weld[c]; ok {
			return idx
		}
		idx := uint32(len(src.Positions))
		weld[c] = idx

		src.Positions = append(src.Positions, obj.Positions[c.V])
		var n mgl32.Vec3
		if c.VN >= 0 {
			n = math.SafeNormalize(obj.Normals[c.VN], mgl32.Vec3{})
		}
		if n == (mgl32.Vec3{}) {
			missingNormals = true
		}
		src.Normals = append(src.Normals, n)
		if hasUV {
			var uv mgl32.Vec2
			if c.VT >= 0 {
				uv = obj.TexCoords[c.VT]
			}
			src.UV0 = append(src.UV0, uv)
		}
		return idx
	}

	src.Indices = make([]uint32, 0, obj.TriangleCount()*3)
	for _, f := range obj.Faces {
		first := vertexFor(f.Corners[0])
		for i := 1; i+1 < len(f.Corners); i++ {
			src.Indices = append(src.Indices, first, vertexFor(f.Corners[i]), vertexFor(f.Corners[i+1]))
		}
	}

	if missingNormals {
		computed := make([]mgl32.Vec3, len(src.Positions))
		RecalculateNormals(computed, src.Positions, src.Indices)
		for i, n := range src.Normals {
			if n == (mgl32.Vec3{}) {
				src.Normals[i] = computed[i]
			}
		}
	}

	if err := src.Validate(); err != nil {
		return nil, err
	}
	return src, nil
}

// LoadOBJ parses an OBJ file and converts it to a Source.
func LoadOBJ(path string) (*Source, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, err
	}
	src, err := FromOBJ(obj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// ToOBJ packs index-aligned vertex buffers into OBJ data, one triangle per
// face. uv may be nil.
func ToOBJ(name string, positions, normals []mgl32.Vec3, uv []mgl32.Vec2, indices []uint32) *formats.OBJ {
	obj := &formats.OBJ{
		Name:      name,
		Positions: positions,
		Normals:   normals,
		TexCoords: uv,
		Faces:     make([]formats.OBJFace, 0, len(indices)/3),
	}

	corner := func(i uint32) formats.OBJCorner {
		c := formats.OBJCorner{V: int(i), VT: -1, VN: -1}
		if len(uv) > 0 {
			c.VT = int(i)
		}
		if len(normals) > 0 {
			c.VN = int(i)
		}
		return c
	}

	for t := 0; t+2 < len(indices); t += 3 {
		obj.Faces = append(obj.Faces, formats.OBJFace{Corners: []formats.OBJCorner{
			corner(indices[t]), corner(indices[t+1]), corner(indices[t+2]),
		}})
	}
	return obj
}
