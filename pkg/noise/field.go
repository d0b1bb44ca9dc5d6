package noise

import (
	"fmt"
	"strings"

	"github.com/ojrac/opensimplex-go"
)

// Field is a deterministic continuous scalar field over 3D space.
type Field interface {
	Sample(x, y, z float32) float32
}

// Basis names a Field implementation.
type Basis string

const (
	BasisPerlin  Basis = "perlin"
	BasisSimplex Basis = "simplex"
)

// ParseBasis converts a config string to a Basis. Empty means Perlin.
func ParseBasis(s string) (Basis, error) {
	switch b := Basis(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BasisPerlin:
		return BasisPerlin, nil
	case BasisSimplex:
		return BasisSimplex, nil
	default:
		return "", fmt.Errorf("unknown noise basis %q", s)
	}
}

// New returns the field for basis. The seed only affects Simplex; the
// Perlin permutation is fixed.
func New(basis Basis, seed int64) (Field, error) {
	switch basis {
	case "", BasisPerlin:
		return Perlin{}, nil
	case BasisSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise basis %q", basis)
	}
}

// Perlin samples Noise3.
type Perlin struct{}

// Sample implements Field.
func (Perlin) Sample(x, y, z float32) float32 {
	return Noise3(x, y, z)
}

// Simplex samples OpenSimplex noise, roughly in [-1, 1].
type Simplex struct {
	os opensimplex.Noise
}

// NewSimplex creates a seeded OpenSimplex field.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{os: opensimplex.New(seed)}
}

// Sample implements Field.
func (s *Simplex) Sample(x, y, z float32) float32 {
	return float32(s.os.Eval3(float64(x), float64(y), float64(z)))
}
