package knot

const (
	// DefaultDensity is the number of samples per control point used by new
	// curves.
	DefaultDensity = 35
	// MinDensity is the smallest density a curve accepts.
	MinDensity = 1
	// DefaultBlend is the blend coefficient used by new curves.
	DefaultBlend = 1.0
)

// An Evaluator turns a sparse sequence of control point positions into the
// dense sequence of points drawn as the curve. density is the number of
// samples per control point and blend the curvature blend coefficient.
//
// Evaluators must be deterministic and must not retain points.
type Evaluator func(points []Point, density int, blend float64) []Point

var _ Evaluator = Knot

// Knot evaluates the closed curve through points. Every control point
// contributes density samples of its local basis (see
// [ClosedQuadSpline.Quads]), taken at α = t·blend/density, and the samples
// are concatenated in control point order.
//
// Fewer than three points produce no curve; otherwise the result has exactly
// len(points)·density points. A density below [MinDensity] is treated as
// MinDensity.
func Knot(points []Point, density int, blend float64) []Point {
	if len(points) < 3 {
		return nil
	}
	density = max(density, MinDensity)
	out := make([]Point, 0, len(points)*density)
	for q := range ClosedQuadSpline(points).Quads() {
		for p := range q.Samples(density, blend) {
			out = append(out, p)
		}
	}
	return out
}
