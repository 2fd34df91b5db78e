// Package knot implements the simulation behind an animated curve
// screensaver: a handful of control points drift around a rectangle, bouncing
// off its edges, and a smooth closed curve is drawn through them.
//
// # Control points
//
// [ControlPoints] is an ordered set of positions, each with a velocity. On
// every [ControlPoints.Advance] each point moves by its velocity; a point that
// ends up strictly outside the bounding [Rect] has the corresponding velocity
// component negated. Positions are never clamped, so a fast point can spend a
// tick outside of the rectangle before it turns around.
//
// # Evaluating the curve
//
// The curve is closed: the last control point connects back to the first.
// Around each control point p[i], [ClosedQuadSpline.Quads] builds a local
// basis from the midpoint towards the previous point, p[i] itself and the
// midpoint towards the next point. [Knot] samples every basis density times
// with the one-sided recursion implemented by [Blend] and concatenates the
// samples. The blend coefficient scales how far along the basis the samples
// reach; 1 walks the whole basis, smaller values produce tighter loops and
// larger values overshoot.
//
// Curves with fewer than three control points are empty.
//
// # Curves
//
// [Curve] ties a set of control points to an [Evaluator] and caches the dense
// curve, recomputing it after every mutation. Curves own their control points
// exclusively; [Curve.Duplicate] makes a deep copy so that both curves can
// move independently.
package knot
