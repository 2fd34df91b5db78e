package knot

import "iter"

// ClosedQuadSpline is a closed loop of control points. Like a quadratic
// B-spline, the on-curve points are implicit and lie halfway between
// consecutive control points; unlike an open spline, the last control point
// connects back to the first.
type ClosedQuadSpline []Point

// Quads returns an iterator over the local bases of the loop, one per control
// point and in control point order. The basis for point i is
// (mid(p[i−1], p[i]), p[i], mid(p[i], p[i+1])) with indices taken modulo
// len(q). A loop of fewer than three points has no bases.
func (q ClosedQuadSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		n := len(q)
		if n < 3 {
			return
		}
		for i := range n {
			prev, cur, next := q[(i+n-1)%n], q[i], q[(i+1)%n]
			if !yield(QuadBez{prev.Midpoint(cur), cur, cur.Midpoint(next)}) {
				break
			}
		}
	}
}
