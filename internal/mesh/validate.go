package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/normal-deformer/pkg/math"
)

// ErrInvalidMesh reports malformed source geometry or topology.
var ErrInvalidMesh = errors.New("invalid mesh")

// Validate checks attribute lengths, index bounds and that every position
// and normal is finite.
func (s *Source) Validate() error {
	v := len(s.Positions)

	if len(s.Normals) != v {
		return fmt.Errorf("%w: %d normals for %d positions", ErrInvalidMesh, len(s.Normals), v)
	}
	if len(s.UV0) != 0 && len(s.UV0) != v {
		return fmt.Errorf("%w: %d uv0 entries for %d positions", ErrInvalidMesh, len(s.UV0), v)
	}
	if len(s.UV1) != 0 && len(s.UV1) != v {
		return fmt.Errorf("%w: %d uv1 entries for %d positions", ErrInvalidMesh, len(s.UV1), v)
	}
	if len(s.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(s.Indices))
	}
	for k, idx := range s.Indices {
		if int(idx) >= v {
			return fmt.Errorf("%w: index %d at %d out of range [0, %d)", ErrInvalidMesh, idx, k, v)
		}
	}
	for i := range s.Positions {
		if !math.IsFiniteVec3(s.Positions[i]) {
			return fmt.Errorf("%w: non-finite position at vertex %d", ErrInvalidMesh, i)
		}
		if !math.IsFiniteVec3(s.Normals[i]) {
			return fmt.Errorf("%w: non-finite normal at vertex %d", ErrInvalidMesh, i)
		}
	}
	return nil
}
