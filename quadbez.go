package knot

import "iter"

// Blend evaluates the one-sided blend recursion over pts:
//
//	P(α, 0) = pts[0]
//	P(α, d) = pts[d]·α + P(α, d−1)·(1−α)
//
// starting from d = len(pts)−1. Unlike de Casteljau's algorithm the
// weighting is not symmetric: the highest remaining point always receives α
// and everything before it 1−α. For three points this gives
// α·p2 + α(1−α)·p1 + (1−α)²·p0 rather than the quadratic Bézier's
// α²·p2 + 2α(1−α)·p1 + (1−α)²·p0.
//
// Blend panics if pts is empty.
func Blend(pts []Point, alpha float64) Point {
	acc := Vec2(pts[0])
	for _, p := range pts[1:] {
		acc = Vec2(p).Mul(alpha).Add(acc.Mul(1 - alpha))
	}
	return Point(acc)
}

// QuadBez is the three point basis sampled around a single control point: the
// midpoint towards the previous control point, the control point itself, and
// the midpoint towards the next one.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Blend evaluates [Blend] over the basis' three points.
func (q QuadBez) Blend(alpha float64) Point {
	return Blend([]Point{q.P0, q.P1, q.P2}, alpha)
}

// Samples returns n points of the basis, evaluated at α = t·k/n for t = 0 … n−1.
// k is the blend coefficient; values other than 1 stop short of or overshoot
// the end of the basis. No points are produced for n < 1.
func (q QuadBez) Samples(n int, k float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for t := range n {
			if !yield(q.Blend(float64(t) * k / float64(n))) {
				return
			}
		}
	}
}
