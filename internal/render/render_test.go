package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/knot"
	"honnef.co/go/knot/internal/scene"
)

var world = knot.NewRectFromOrigin(knot.Pt(0, 0), knot.Sz(800, 600))

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func newScene() *scene.Scene {
	return scene.New(scene.Options{
		Bounds:   world,
		MaxSpeed: 2,
		Rand:     rand.New(rand.NewPCG(3, 4)),
	})
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := range w {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestCellMapping(t *testing.T) {
	screen := newScreen(t)
	r := New(screen, world)
	w, h := screen.Size()

	if x, y := r.WorldToCell(knot.Pt(0, 0)); x != 0 || y != 0 {
		t.Errorf("origin maps to (%d, %d)", x, y)
	}
	if x, y := r.WorldToCell(knot.Pt(799.999, 599.999)); x != w-1 || y != h-2 {
		t.Errorf("far corner maps to (%d, %d), want (%d, %d)", x, y, w-1, h-2)
	}
	for _, c := range [][2]int{{0, 0}, {5, 7}, {w - 1, h - 2}} {
		x, y := r.WorldToCell(r.CellToWorld(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v round-tripped to (%d, %d)", c, x, y)
		}
	}
}

func TestFrame(t *testing.T) {
	screen := newScreen(t)
	r := New(screen, world)
	sc := newScene()
	pts := []knot.Point{knot.Pt(100, 100), knot.Pt(700, 150), knot.Pt(400, 500)}
	for _, pt := range pts {
		sc.AddPoint(pt)
	}
	r.Frame(sc)

	for _, pt := range pts {
		x, y := r.WorldToCell(pt)
		if ch, _, _, _ := screen.GetContent(x, y); ch != markerRune {
			t.Errorf("cell (%d, %d) holds %q, want a marker", x, y, ch)
		}
	}

	var curveCells int
	w, h := screen.Size()
	for y := range h - 1 {
		for x := range w {
			if ch, _, _, _ := screen.GetContent(x, y); ch == curveRune {
				curveCells++
			}
		}
	}
	if curveCells == 0 {
		t.Error("no curve was drawn")
	}

	status := row(screen, h-1)
	for _, want := range []string{"paused", "curves 1", "points 3", "density 35"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q lacks %q", status, want)
		}
	}
	if r.Palette().Hue() != 1 {
		t.Errorf("got hue %d after one frame, want 1", r.Palette().Hue())
	}
}

func TestFrameEmpty(t *testing.T) {
	screen := newScreen(t)
	r := New(screen, world)
	sc := newScene()
	sc.AddPoint(knot.Pt(100, 100))
	sc.AddPoint(knot.Pt(300, 100))
	r.Frame(sc)

	w, h := screen.Size()
	for y := range h - 1 {
		for x := range w {
			if ch, _, _, _ := screen.GetContent(x, y); ch == curveRune {
				t.Fatalf("curve drawn at (%d, %d) with only two control points", x, y)
			}
		}
	}
}

func TestFrameHelp(t *testing.T) {
	screen := newScreen(t)
	r := New(screen, world)
	sc := newScene()
	sc.ToggleHelp()
	sc.IncrementDensity()
	r.Frame(sc)

	_, h := screen.Size()
	var all strings.Builder
	for y := range h {
		all.WriteString(row(screen, y))
		all.WriteByte('\n')
	}
	for _, want := range []string{"Pause/Play", "Add curve", "36", "Current points"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("help overlay lacks %q", want)
		}
	}
}

func TestPalette(t *testing.T) {
	var p Palette
	red := tcell.NewRGBColor(255, 0, 0)
	if p.Color() != red {
		t.Errorf("hue 0 is %v, want red", p.Color())
	}
	if c := p.Next(); c == red || p.Hue() != 1 {
		t.Errorf("got hue %d, colour %v", p.Hue(), c)
	}
	for range 359 {
		p.Next()
	}
	if p.Hue() != 0 || p.Color() != red {
		t.Errorf("hue did not wrap: got %d", p.Hue())
	}
}
