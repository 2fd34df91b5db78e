package knot

import (
	"math"
	"testing"
)

var vecSamples = []Vec2{
	{0, 0},
	{1, 2},
	{-3.5, 0.25},
	{1024, -0.125},
	{-7, -9},
}

func TestVecAddCommutes(t *testing.T) {
	for _, a := range vecSamples {
		for _, b := range vecSamples {
			diff(t, a.Add(b), b.Add(a))
		}
	}
}

func TestVecSubUndoesAdd(t *testing.T) {
	for _, a := range vecSamples {
		for _, b := range vecSamples {
			diff(t, a, a.Add(b).Sub(b))
		}
	}
}

func TestVecMul(t *testing.T) {
	v := Vec(3, -4)
	diff(t, Vec(6, -8), v.Mul(2))
	diff(t, Vec(-1.5, 2), v.Mul(-0.5))
	for _, a := range vecSamples {
		if m := a.Mul(0).Hypot(); m != 0 {
			t.Errorf("%s·0 has magnitude %v, want 0", a, m)
		}
	}
	// the receiver is not modified
	diff(t, Vec(3, -4), v)
}

func TestVecHypot(t *testing.T) {
	tests := []struct {
		in   Vec2
		want float64
	}{
		{Vec(0, 0), 0},
		{Vec(3, 4), 5},
		{Vec(-3, 4), 5},
		{Vec(0, -2), 2},
		{Vec(1, 1), math.Sqrt2},
	}
	for _, tt := range tests {
		if got := tt.in.Hypot(); got != tt.want {
			t.Errorf("%s.Hypot() = %v, want %v", tt.in, got, tt.want)
		}
		if got := tt.in.Hypot2(); math.Abs(got-tt.want*tt.want) > 1e-12 {
			t.Errorf("%s.Hypot2() = %v, want %v", tt.in, got, tt.want*tt.want)
		}
	}
}

func TestVecFlip(t *testing.T) {
	v := Vec(2, -3)
	diff(t, Vec(-2, -3), v.FlipX())
	diff(t, Vec(2, 3), v.FlipY())
	diff(t, Vec(-2, 3), v.Negate())
}
