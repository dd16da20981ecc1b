package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"modulate", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if a != NewVec3(1, 2, 3) {
		t.Errorf("Operations must not mutate the receiver, got %v", a)
	}
}

func TestVec3_Dot(t *testing.T) {
	if got := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6)); got != 12 {
		t.Errorf("Expected dot 12, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(3, 0, 4).Normalize()
	if !vecNear(n, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", n)
	}
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	n := Vec3{}.Normalize()
	if n != FallbackDirection {
		t.Errorf("Expected fallback direction %v, got %v", FallbackDirection, n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Error("Normalize of a zero vector must not produce NaN")
	}

	if _, ok := (Vec3{}).TryNormalize(); ok {
		t.Error("TryNormalize should report failure for a zero vector")
	}
	if _, ok := NewVec3(math.Inf(1), 0, 0).TryNormalize(); ok {
		t.Error("TryNormalize should report failure for an infinite vector")
	}
}

func TestReflect(t *testing.T) {
	d := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	r := Reflect(d, n)
	expected := NewVec3(1, 1, 0).Normalize()
	if !vecNear(r, expected, 1e-12) {
		t.Errorf("Expected reflection %v, got %v", expected, r)
	}
}

func TestRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -10))
	if ray.Direction != NewVec3(0, 0, -1) {
		t.Errorf("Expected unit direction, got %v", ray.Direction)
	}
	if p := ray.At(2); p != NewVec3(1, 1, -1) {
		t.Errorf("Expected At(2) = (1,1,-1), got %v", p)
	}
}

func TestNewRayTo(t *testing.T) {
	ray := NewRayTo(NewVec3(0, 0, 0), NewVec3(0, 3, 0))
	if ray.Direction != NewVec3(0, 1, 0) {
		t.Errorf("Expected direction (0,1,0), got %v", ray.Direction)
	}
}
