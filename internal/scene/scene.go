// Package scene holds the screensaver's application state: the curves on
// screen and the flags the driver toggles.
package scene

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"go.jetify.com/typeid/v2"

	"honnef.co/go/knot"
)

// PrefixCurve is the typeid prefix of curve identifiers.
const PrefixCurve = "curve"

// NewCurveID returns a fresh curve identifier such as
// "curve_01h455vb4pex5vsknk084sn02q".
func NewCurveID() string {
	return typeid.MustGenerate(PrefixCurve).String()
}

// Entry is a curve together with its identifier.
type Entry struct {
	ID    string
	Curve *knot.Curve
}

type Options struct {
	// Bounds is the rectangle control points bounce in.
	Bounds knot.Rect
	// Density and Blend configure newly created curves. Zero values select
	// knot.DefaultDensity and knot.DefaultBlend.
	Density int
	Blend   float64
	// New control points get a random velocity in [0, MaxSpeed) on each axis.
	MaxSpeed float64
	Rand     *rand.Rand
	Logger   *slog.Logger
	NewID    func() string
}

// Scene is the set of curves driven by user input. It starts out paused with
// a single empty curve. A Scene is not safe for concurrent use.
type Scene struct {
	bounds   knot.Rect
	density  int
	blend    float64
	maxSpeed float64
	rng      *rand.Rand
	log      *slog.Logger
	newID    func() string

	curves []Entry
	paused bool
	help   bool
}

func New(opts Options) *Scene {
	s := &Scene{
		bounds:   opts.Bounds,
		density:  opts.Density,
		blend:    opts.Blend,
		maxSpeed: opts.MaxSpeed,
		rng:      opts.Rand,
		log:      opts.Logger,
		newID:    opts.NewID,
		paused:   true,
	}
	if s.density == 0 {
		s.density = knot.DefaultDensity
	}
	if s.blend == 0 {
		s.blend = knot.DefaultBlend
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.newID == nil {
		s.newID = NewCurveID
	}
	s.Reset()
	return s
}

func (s *Scene) add(c *knot.Curve) Entry {
	e := Entry{ID: s.newID(), Curve: c}
	s.curves = append(s.curves, e)
	return e
}

// Reset discards every curve and starts over with a single empty one.
func (s *Scene) Reset() {
	clear(s.curves)
	s.curves = s.curves[:0]
	e := s.add(knot.NewCurve(s.bounds, knot.WithDensity(s.density), knot.WithBlend(s.blend)))
	s.log.Info("reset scene", "curve", e.ID)
}

// Curves returns the curves in creation order. The slice must not be
// modified.
func (s *Scene) Curves() []Entry { return s.curves }

func (s *Scene) Bounds() knot.Rect { return s.bounds }

// Density returns the density of the first curve.
func (s *Scene) Density() int { return s.curves[0].Curve.Density() }

func (s *Scene) randomVelocity() knot.Vec2 {
	return knot.Vec(s.rng.Float64()*s.maxSpeed, s.rng.Float64()*s.maxSpeed)
}

// AddPoint adds a control point at pos to every curve. Each curve draws its
// own random velocity for it.
func (s *Scene) AddPoint(pos knot.Point) {
	for _, e := range s.curves {
		vel := s.randomVelocity()
		e.Curve.AddControlPoint(pos, vel)
		s.log.Debug("add control point", "curve", e.ID, "pos", pos, "vel", vel, "points", e.Curve.Len())
	}
}

// RemoveLast removes the most recently added control point from every curve.
func (s *Scene) RemoveLast() {
	for _, e := range s.curves {
		if e.Curve.RemoveLastControlPoint() {
			s.log.Debug("remove control point", "curve", e.ID, "points", e.Curve.Len())
		}
	}
}

func (s *Scene) IncrementDensity() {
	for _, e := range s.curves {
		e.Curve.IncrementDensity()
	}
	s.log.Debug("density changed", "density", s.Density())
}

func (s *Scene) DecrementDensity() {
	for _, e := range s.curves {
		e.Curve.DecrementDensity()
	}
	s.log.Debug("density changed", "density", s.Density())
}

// SpeedUp doubles every velocity and advances the points once.
func (s *Scene) SpeedUp() { s.scaleSpeed(2) }

// SlowDown halves every velocity and advances the points once.
func (s *Scene) SlowDown() { s.scaleSpeed(0.5) }

func (s *Scene) scaleSpeed(f float64) {
	for _, e := range s.curves {
		e.Curve.ScaleSpeed(f)
	}
	s.log.Debug("scaled speed", "factor", f)
}

// Duplicate adds a copy of the first curve with a random blend coefficient in
// [0, 1). The copy moves independently of the original.
func (s *Scene) Duplicate() Entry {
	src := s.curves[0]
	e := s.add(src.Curve.Duplicate(s.rng.Float64()))
	s.log.Info("duplicate curve", "source", src.ID, "curve", e.ID, "blend", e.Curve.Blend())
	return e
}

func (s *Scene) Paused() bool { return s.paused }

func (s *Scene) TogglePause() {
	s.paused = !s.paused
	s.log.Debug("toggle pause", "paused", s.paused)
}

func (s *Scene) HelpVisible() bool { return s.help }

func (s *Scene) ToggleHelp() { s.help = !s.help }

// Step advances every curve by one tick unless the scene is paused. It
// reports whether the curves moved.
func (s *Scene) Step() bool {
	if s.paused {
		return false
	}
	for _, e := range s.curves {
		e.Curve.Tick()
	}
	return true
}
