package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"same point", V3(1, 2, 3), V3(1, 2, 3), 0},
		{"unit x", V3(0, 0, 0), V3(1, 0, 0), 1},
		{"3-4-5 triangle", V3(0, 0, 0), V3(3, 0, 4), 5},
		{"negative coords", V3(-1, -1, -1), V3(1, 1, 1), math.Sqrt(12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.DistanceTo(tc.b); !near(got, tc.expected) {
				t.Errorf("DistanceTo() = %f, expected %f", got, tc.expected)
			}
			if got := tc.b.DistanceTo(tc.a); !near(got, tc.expected) {
				t.Errorf("DistanceTo() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestVecLerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -4, 2)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, expected %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, expected %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !near(mid.X, 5) || !near(mid.Y, -2) || !near(mid.Z, 1) {
		t.Errorf("Lerp(0.5) = %v, expected (5, -2, 1)", mid)
	}
}

func TestVecCrossNormalize(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := x.Cross(y)
	if z != V3(0, 0, 1) {
		t.Errorf("x × y = %v, expected (0, 0, 1)", z)
	}

	n := V3(0, 3, 4).Normalize()
	if !near(n.Len(), 1) {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}

	zero := Vec3{}
	if zero.Normalize() != zero {
		t.Error("Normalize() of zero vector should stay zero")
	}
}
