package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]mgl32.Vec3{{1, -2, 3}, {-1, 4, 0}, {0, 0, 5}})
	if b.Min != (mgl32.Vec3{-1, -2, 0}) {
		t.Errorf("Min = %v, want [-1 -2 0]", b.Min)
	}
	if b.Max != (mgl32.Vec3{1, 4, 5}) {
		t.Errorf("Max = %v, want [1 4 5]", b.Max)
	}
	if got := b.Center(); got != (mgl32.Vec3{0, 1, 2.5}) {
		t.Errorf("Center() = %v, want [0 1 2.5]", got)
	}
	if got := b.Size(); got != (mgl32.Vec3{2, 6, 5}) {
		t.Errorf("Size() = %v, want [2 6 5]", got)
	}
	if !b.Contains(mgl32.Vec3{0, 0, 0}) {
		t.Error("expected origin inside bounds")
	}
	if b.Contains(mgl32.Vec3{0, 0, 6}) {
		t.Error("expected z=6 outside bounds")
	}
}

func TestEmptyBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Error("EmptyBounds() should be empty")
	}
	b.Extend(mgl32.Vec3{2, 2, 2})
	if b.IsEmpty() {
		t.Error("bounds with one point should not be empty")
	}
	if b.Min != b.Max {
		t.Errorf("single point bounds: Min %v != Max %v", b.Min, b.Max)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		want bool
	}{
		{"zero", 0, true},
		{"negative", -3.5, true},
		{"nan", float32(gomath.NaN()), false},
		{"+inf", float32(gomath.Inf(1)), false},
		{"-inf", float32(gomath.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.v); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}

	if IsFiniteVec3(mgl32.Vec3{0, float32(gomath.NaN()), 0}) {
		t.Error("IsFiniteVec3 accepted NaN component")
	}
}

func TestSafeNormalize(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	if got := SafeNormalize(mgl32.Vec3{}, up); got != up {
		t.Errorf("SafeNormalize(zero) = %v, want fallback %v", got, up)
	}
	got := SafeNormalize(mgl32.Vec3{3, 0, 4}, up)
	if l := got.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("SafeNormalize().Len() = %v, want ~1", l)
	}
}
