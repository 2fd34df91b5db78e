package knot

import "slices"

// Curve is a closed curve driven by a set of moving control points.
//
// The dense representation is recomputed after every mutation, so
// [Curve.DenseCurve] always reflects the current control points, density and
// blend coefficient. A Curve is not safe for concurrent use.
type Curve struct {
	points  *ControlPoints
	density int
	blend   float64
	eval    Evaluator
	dense   []Point
}

// Option configures a [Curve] created by [NewCurve].
type Option func(*Curve)

// WithDensity sets the initial density. Values below [MinDensity] are raised
// to it.
func WithDensity(n int) Option {
	return func(c *Curve) { c.density = max(n, MinDensity) }
}

// WithBlend sets the initial blend coefficient.
func WithBlend(k float64) Option {
	return func(c *Curve) { c.blend = k }
}

// WithEvaluator replaces [Knot] as the function computing the dense curve.
func WithEvaluator(e Evaluator) Option {
	return func(c *Curve) { c.eval = e }
}

// NewCurve returns an empty curve whose control points bounce inside bounds.
func NewCurve(bounds Rect, opts ...Option) *Curve {
	c := &Curve{
		points:  NewControlPoints(bounds),
		density: DefaultDensity,
		blend:   DefaultBlend,
		eval:    Knot,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recompute()
	return c
}

func (c *Curve) recompute() {
	c.dense = c.eval(c.points.Positions(), c.density, c.blend)
}

// AddControlPoint appends a control point moving with velocity vel.
func (c *Curve) AddControlPoint(pos Point, vel Vec2) {
	c.points.Add(pos, vel)
	c.recompute()
}

// RemoveLastControlPoint removes the most recently added control point. It
// reports whether there was one to remove.
func (c *Curve) RemoveLastControlPoint() bool {
	if !c.points.RemoveLast() {
		return false
	}
	c.recompute()
	return true
}

// Tick advances every control point by one step.
func (c *Curve) Tick() {
	c.points.Advance()
	c.recompute()
}

// ScaleSpeed multiplies every velocity by f and then advances the control
// points once, so that the change is visible immediately.
func (c *Curve) ScaleSpeed(f float64) {
	c.points.ScaleVelocities(f)
	c.Tick()
}

func (c *Curve) Density() int { return c.density }

// SetDensity sets the number of samples per control point, clamped to at
// least [MinDensity].
func (c *Curve) SetDensity(n int) {
	c.density = max(n, MinDensity)
	c.recompute()
}

func (c *Curve) IncrementDensity() { c.SetDensity(c.density + 1) }
func (c *Curve) DecrementDensity() { c.SetDensity(c.density - 1) }

func (c *Curve) Blend() float64 { return c.blend }

// SetBlend sets the blend coefficient. Any value is accepted.
func (c *Curve) SetBlend(k float64) {
	c.blend = k
	c.recompute()
}

// Len returns the number of control points.
func (c *Curve) Len() int { return c.points.Len() }

// Bounds returns the rectangle the control points bounce in.
func (c *Curve) Bounds() Rect { return c.points.Bounds() }

// ControlPoints returns a copy of the control point positions.
func (c *Curve) ControlPoints() []Point { return c.points.Positions() }

// Velocities returns a copy of the control point velocities.
func (c *Curve) Velocities() []Vec2 { return c.points.Velocities() }

// DenseCurve returns a copy of the dense curve. It is empty while the curve has
// fewer than three control points.
func (c *Curve) DenseCurve() []Point { return slices.Clone(c.dense) }

// Duplicate returns a new curve with a deep copy of c's control points, the
// same density and evaluator, and blend coefficient k. The two curves share no
// state afterwards.
func (c *Curve) Duplicate(k float64) *Curve {
	d := &Curve{
		points:  c.points.Clone(),
		density: c.density,
		blend:   k,
		eval:    c.eval,
	}
	d.recompute()
	return d
}
