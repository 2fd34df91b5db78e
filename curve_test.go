package knot

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func triangle(opts ...Option) *Curve {
	c := NewCurve(screen, opts...)
	c.AddControlPoint(Pt(0, 0), Vec(1, 0.5))
	c.AddControlPoint(Pt(100, 0), Vec(-1, 2))
	c.AddControlPoint(Pt(50, 100), Vec(0.5, -1))
	return c
}

func TestCurveDefaults(t *testing.T) {
	c := NewCurve(screen)
	if c.Density() != DefaultDensity {
		t.Errorf("got density %d, want %d", c.Density(), DefaultDensity)
	}
	if c.Blend() != DefaultBlend {
		t.Errorf("got blend %g, want %g", c.Blend(), DefaultBlend)
	}
	diff(t, []Point{}, c.DenseCurve(), cmpopts.EquateEmpty())
	diff(t, screen, c.Bounds())
}

func TestCurveDenseFollowsPoints(t *testing.T) {
	c := NewCurve(screen)
	c.AddControlPoint(Pt(0, 0), Vec(1, 0.5))
	c.AddControlPoint(Pt(100, 0), Vec(-1, 2))
	if n := len(c.DenseCurve()); n != 0 {
		t.Fatalf("two control points produced %d dense points", n)
	}
	c.AddControlPoint(Pt(50, 100), Vec(0.5, -1))
	if n := len(c.DenseCurve()); n != 3*DefaultDensity {
		t.Fatalf("got %d dense points, want %d", n, 3*DefaultDensity)
	}

	check := func() {
		t.Helper()
		diff(t, Knot(c.ControlPoints(), c.Density(), c.Blend()), c.DenseCurve(), cmpopts.EquateEmpty())
	}
	check()
	c.Tick()
	check()
	c.SetDensity(7)
	check()
	c.SetBlend(0.3)
	check()
	c.ScaleSpeed(2)
	check()
	c.RemoveLastControlPoint()
	check()
	if n := len(c.DenseCurve()); n != 0 {
		t.Fatalf("got %d dense points after removal, want 0", n)
	}
}

func TestCurveRemoveEmpty(t *testing.T) {
	c := NewCurve(screen)
	if c.RemoveLastControlPoint() {
		t.Error("removing from an empty curve reported a removal")
	}
	if c.Len() != 0 {
		t.Errorf("got %d control points, want 0", c.Len())
	}
}

func TestCurveDensity(t *testing.T) {
	c := triangle()
	c.IncrementDensity()
	if c.Density() != 36 {
		t.Errorf("got density %d, want 36", c.Density())
	}
	if n := len(c.DenseCurve()); n != 3*36 {
		t.Errorf("got %d dense points, want %d", n, 3*36)
	}

	c.SetDensity(1)
	for range 5 {
		c.DecrementDensity()
		if c.Density() != 1 {
			t.Fatalf("got density %d, want 1", c.Density())
		}
	}
	c.SetDensity(-10)
	if c.Density() != 1 {
		t.Errorf("got density %d, want 1", c.Density())
	}
	if n := len(c.DenseCurve()); n != 3 {
		t.Errorf("got %d dense points, want 3", n)
	}

	if d := NewCurve(screen, WithDensity(0)).Density(); d != MinDensity {
		t.Errorf("WithDensity(0) gave density %d", d)
	}
}

func TestCurveScaleSpeed(t *testing.T) {
	c := NewCurve(screen)
	c.AddControlPoint(Pt(10, 10), Vec(1, 1))
	c.ScaleSpeed(2)
	diff(t, []Vec2{Vec(2, 2)}, c.Velocities())
	diff(t, []Point{Pt(12, 12)}, c.ControlPoints())

	c.ScaleSpeed(0.5)
	diff(t, []Vec2{Vec(1, 1)}, c.Velocities())
	diff(t, []Point{Pt(13, 13)}, c.ControlPoints())
}

func TestCurveDuplicate(t *testing.T) {
	orig := triangle(WithDensity(5))
	before := orig.ControlPoints()
	beforeDense := orig.DenseCurve()

	dup := orig.Duplicate(0.25)
	if dup.Blend() != 0.25 {
		t.Errorf("got blend %g, want 0.25", dup.Blend())
	}
	if dup.Density() != 5 {
		t.Errorf("got density %d, want 5", dup.Density())
	}
	diff(t, before, dup.ControlPoints())
	diff(t, orig.Velocities(), dup.Velocities())

	dup.ScaleSpeed(2)
	dup.Tick()
	dup.AddControlPoint(Pt(1, 1), Vec(1, 1))
	dup.SetDensity(9)

	diff(t, before, orig.ControlPoints())
	diff(t, beforeDense, orig.DenseCurve())
	diff(t, []Vec2{Vec(1, 0.5), Vec(-1, 2), Vec(0.5, -1)}, orig.Velocities())

	orig.Tick()
	if dup.Len() != 4 {
		t.Errorf("got %d control points in the duplicate, want 4", dup.Len())
	}
}

func TestCurveDenseIsCopy(t *testing.T) {
	c := triangle(WithDensity(2))
	d := c.DenseCurve()
	d[0] = Pt(-1, -1)
	if c.DenseCurve()[0] == Pt(-1, -1) {
		t.Error("DenseCurve returned the cache itself")
	}
	pts := c.ControlPoints()
	pts[0] = Pt(-1, -1)
	if c.ControlPoints()[0] == Pt(-1, -1) {
		t.Error("ControlPoints returned internal storage")
	}
}

func TestCurveEvaluator(t *testing.T) {
	var calls int
	eval := func(points []Point, density int, blend float64) []Point {
		calls++
		return Knot(points, density, blend)
	}
	c := NewCurve(screen, WithEvaluator(eval), WithBlend(0.5))
	c.AddControlPoint(Pt(1, 1), Vec(1, 1))
	c.Tick()
	c.IncrementDensity()
	c.SetBlend(2)
	c.RemoveLastControlPoint()
	c.RemoveLastControlPoint()
	if calls != 6 {
		t.Errorf("evaluator ran %d times, want 6", calls)
	}
	if c.Duplicate(1); calls != 7 {
		t.Errorf("evaluator ran %d times, want 7", calls)
	}
}

func TestCurveDeterministic(t *testing.T) {
	a := triangle(WithDensity(11), WithBlend(0.7))
	b := triangle(WithDensity(11), WithBlend(0.7))
	for range 50 {
		a.Tick()
		b.Tick()
	}
	diff(t, a.DenseCurve(), b.DenseCurve())
}
