// Package render draws a scene onto a terminal screen.
package render

import (
	"fmt"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/knot"
	"honnef.co/go/knot/internal/scene"
)

const (
	curveRune  = '•'
	markerRune = 'o'
)

var (
	markerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(128, 128, 255)).Background(tcell.NewRGBColor(50, 50, 50))
	frameStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 50, 50)).Background(tcell.NewRGBColor(50, 50, 50))
)

// helpLines is the key reference shown by the help overlay.
var helpLines = [][2]string{
	{"F1", "Show help"},
	{"R", "Restart"},
	{"P", "Pause/Play"},
	{"+", "More points"},
	{"-", "Fewer points"},
	{"I", "Increase speed"},
	{"D", "Decrease speed"},
	{"A", "Add curve"},
	{"Left", "Click to add a point"},
	{"Right", "Click to remove the last point"},
	{"Esc", "Quit"},
}

// Renderer maps the scene's world coordinates onto the cells of a screen.
// The bottom row of the screen is reserved for the status line.
type Renderer struct {
	screen  tcell.Screen
	world   knot.Rect
	toCell  knot.Affine
	palette Palette
}

func New(screen tcell.Screen, world knot.Rect) *Renderer {
	r := &Renderer{
		screen: screen,
		world:  world,
	}
	r.Resize()
	return r
}

// Resize recomputes the mapping from world coordinates to cells after the
// screen changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	cells := knot.NewRectFromOrigin(knot.Pt(0, 0), knot.Sz(float64(max(w, 1)), float64(max(h-1, 1))))
	r.toCell = knot.MapRect(r.world, cells)
}

// WorldToCell returns the cell containing pt.
func (r *Renderer) WorldToCell(pt knot.Point) (x, y int) {
	c := pt.Transform(r.toCell)
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// CellToWorld returns the world position of the centre of cell (x, y).
func (r *Renderer) CellToWorld(x, y int) knot.Point {
	return knot.Pt(float64(x)+0.5, float64(y)+0.5).Transform(r.toCell.Invert())
}

func (r *Renderer) Palette() *Palette { return &r.palette }

// Frame draws a complete frame: every curve as a closed polyline in the
// current cycle colour, the control points as markers, the status line and,
// if enabled, the help overlay.
func (r *Renderer) Frame(sc *scene.Scene) {
	r.screen.Clear()
	curveStyle := tcell.StyleDefault.Foreground(r.palette.Next())

	for _, e := range sc.Curves() {
		for l := range knot.ClosedLines(e.Curve.DenseCurve()) {
			r.drawLine(l, curveStyle)
		}
	}
	for _, e := range sc.Curves() {
		for c := range knot.Transform(slices.Values(e.Curve.ControlPoints()), r.toCell) {
			r.set(int(math.Floor(c.X)), int(math.Floor(c.Y)), markerRune, markerStyle)
		}
	}

	r.drawStatus(sc)
	if sc.HelpVisible() {
		r.drawHelp(sc)
	}
	r.screen.Show()
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawLine(l knot.Line, style tcell.Style) {
	l = l.Transform(r.toCell)
	d := l.P1.Sub(l.P0)
	n := int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y))))
	for p := range l.Steps(n) {
		r.set(int(math.Floor(p.X)), int(math.Floor(p.Y)), curveRune, style)
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawStatus(sc *scene.Scene) {
	_, h := r.screen.Size()
	state := "running"
	if sc.Paused() {
		state = "paused"
	}
	var points int
	if cs := sc.Curves(); len(cs) > 0 {
		points = cs[0].Curve.Len()
	}
	status := fmt.Sprintf(" %s | curves %d | points %d | density %d | F1 help", state, len(sc.Curves()), points, sc.Density())
	r.drawText(0, h-1, status, statusStyle)
}

func (r *Renderer) drawHelp(sc *scene.Scene) {
	const (
		left   = 2
		top    = 1
		keyCol = 2
		txtCol = 10
		width  = 44
	)
	rows := append(helpLines[:len(helpLines):len(helpLines)], [2]string{"", ""}, [2]string{fmt.Sprint(sc.Density()), "Current points"})
	height := len(rows) + 2

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, helpStyle)
		}
	}
	for x := left; x < left+width; x++ {
		r.screen.SetContent(x, top, '─', nil, frameStyle)
		r.screen.SetContent(x, top+height-1, '─', nil, frameStyle)
	}
	for y := top; y < top+height; y++ {
		r.screen.SetContent(left, y, '│', nil, frameStyle)
		r.screen.SetContent(left+width-1, y, '│', nil, frameStyle)
	}
	for i, row := range rows {
		y := top + 1 + i
		r.drawText(left+keyCol, y, row[0], helpStyle.Bold(true))
		r.drawText(left+txtCol, y, row[1], helpStyle)
	}
}
