package core

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	sum := a.Add(b)
	if sum != NewVec3(5, 7, 9) {
		t.Errorf("Expected sum (5,7,9), got %v", sum)
	}

	diff := b.Subtract(a)
	if diff != NewVec3(3, 3, 3) {
		t.Errorf("Expected difference (3,3,3), got %v", diff)
	}

	scaled := a.Multiply(2)
	if scaled != NewVec3(2, 4, 6) {
		t.Errorf("Expected scaled (2,4,6), got %v", scaled)
	}

	dot := a.Dot(b)
	if dot != 32 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	cross := x.Cross(y)
	expected := NewVec3(0, 0, 1)
	if cross != expected {
		t.Errorf("Expected cross product %v, got %v", expected, cross)
	}

	// Anti-commutative
	reversed := y.Cross(x)
	if reversed != expected.Multiply(-1) {
		t.Errorf("Expected reversed cross product %v, got %v", expected.Multiply(-1), reversed)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if math.Abs(unit.X-0.6) > 1e-12 || math.Abs(unit.Y-0.8) > 1e-12 {
		t.Errorf("Expected direction (0.6, 0.8, 0), got %v", unit)
	}

	// Zero vector normalizes to zero rather than NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	clamped := v.Clamp(0, 1)
	if clamped != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected clamped (0, 0.5, 1), got %v", clamped)
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	point := ray.At(1.5)
	if point != NewVec3(1, 3, 0) {
		t.Errorf("Expected point (1,3,0), got %v", point)
	}
}
