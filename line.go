package knot

import "iter"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Steps returns n+1 evenly spaced points from P0 to P1, both inclusive. For n
// < 1 only P0 is produced.
func (l Line) Steps(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 {
			yield(l.P0)
			return
		}
		for i := 0; i <= n; i++ {
			if !yield(l.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// ClosedLines returns the segments of the closed polyline through pts,
// starting with the segment from the last point back to the first. Fewer than
// two points produce no segments.
func ClosedLines(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if len(pts) < 2 {
			return
		}
		prev := pts[len(pts)-1]
		for _, pt := range pts {
			if !yield(Line{prev, pt}) {
				return
			}
			prev = pt
		}
	}
}
