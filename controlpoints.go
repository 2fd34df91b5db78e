package knot

import (
	"iter"
	"slices"
)

// ControlPoint is a position paired with the velocity it moves by on every
// tick.
type ControlPoint struct {
	Pos Point
	Vel Vec2
}

// ControlPoints is an ordered set of control points moving inside a bounding
// rectangle. The order defines the topology of the curve built from them.
//
// The zero value has no points and an empty bound; use [NewControlPoints].
type ControlPoints struct {
	pts    []ControlPoint
	bounds Rect
}

// NewControlPoints returns an empty set whose points bounce off the edges of
// bounds.
func NewControlPoints(bounds Rect) *ControlPoints {
	return &ControlPoints{bounds: bounds.Abs()}
}

// Bounds returns the rectangle the points bounce in.
func (cp *ControlPoints) Bounds() Rect { return cp.bounds }

// Len returns the number of control points.
func (cp *ControlPoints) Len() int { return len(cp.pts) }

// At returns the i'th control point. It panics if i is out of range.
func (cp *ControlPoints) At(i int) ControlPoint { return cp.pts[i] }

// Add appends a control point.
func (cp *ControlPoints) Add(pos Point, vel Vec2) {
	cp.pts = append(cp.pts, ControlPoint{Pos: pos, Vel: vel})
}

// RemoveLast drops the most recently added control point. It reports whether a
// point was removed; removing from an empty set does nothing.
func (cp *ControlPoints) RemoveLast() bool {
	if len(cp.pts) == 0 {
		return false
	}
	cp.pts[len(cp.pts)-1] = ControlPoint{}
	cp.pts = cp.pts[:len(cp.pts)-1]
	return true
}

// Advance moves every point by its velocity. A point that ends up strictly
// outside the bounds on an axis has that component of its velocity reflected.
// The position itself is not clamped, so a point may remain outside the bounds
// until its reflected velocity carries it back.
func (cp *ControlPoints) Advance() {
	for i := range cp.pts {
		p := &cp.pts[i]
		p.Pos = p.Pos.Translate(p.Vel)
		if cp.bounds.outsideX(p.Pos.X) {
			p.Vel = p.Vel.FlipX()
		}
		if cp.bounds.outsideY(p.Pos.Y) {
			p.Vel = p.Vel.FlipY()
		}
	}
}

// ScaleVelocities multiplies every velocity by f. Points are not moved.
func (cp *ControlPoints) ScaleVelocities(f float64) {
	for i := range cp.pts {
		cp.pts[i].Vel = cp.pts[i].Vel.Mul(f)
	}
}

// Positions returns a copy of the current positions, in order.
func (cp *ControlPoints) Positions() []Point {
	out := make([]Point, len(cp.pts))
	for i, p := range cp.pts {
		out[i] = p.Pos
	}
	return out
}

// Velocities returns a copy of the current velocities, in order.
func (cp *ControlPoints) Velocities() []Vec2 {
	out := make([]Vec2, len(cp.pts))
	for i, p := range cp.pts {
		out[i] = p.Vel
	}
	return out
}

// All returns an iterator over the control points and their indices.
func (cp *ControlPoints) All() iter.Seq2[int, ControlPoint] {
	return slices.All(cp.pts)
}

// Clone returns a deep copy. The copy and the original evolve independently.
func (cp *ControlPoints) Clone() *ControlPoints {
	return &ControlPoints{
		pts:    slices.Clone(cp.pts),
		bounds: cp.bounds,
	}
}
