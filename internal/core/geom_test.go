package core

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", Vec{3, 4}, Vec{3, 4}, 0},
		{"3-4-5 triangle", Vec{0, 0}, Vec{3, 4}, 5},
		{"negative coords", Vec{-1, -1}, Vec{2, 3}, 5},
		{"horizontal", Vec{10, 7}, Vec{44, 7}, 34},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dist(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist(%v, %v) = %f, expected %f", tc.a, tc.b, got, tc.expected)
			}
			// Distance is symmetric
			if got := Dist(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist(%v, %v) (reversed) = %f, expected %f", tc.b, tc.a, got, tc.expected)
			}
		})
	}
}

func TestPolar(t *testing.T) {
	v := Polar(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-2) > 1e-9 {
		t.Errorf("Polar(pi/2, 2) = %v, expected (0, 2)", v)
	}

	if l := Polar(1.234, 3.5).Len(); math.Abs(l-3.5) > 1e-9 {
		t.Errorf("Polar length = %f, expected 3.5", l)
	}
}

func TestVecArithmetic(t *testing.T) {
	v := Vec{1, 2}.Add(Vec{3, 4}).Scale(0.5)
	if v != (Vec{2, 3}) {
		t.Errorf("(1,2)+(3,4) * 0.5 = %v, expected (2,3)", v)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	quarter := math.Pi / 4
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-1.2, -quarter, quarter, -quarter},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
