package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette cycles through the hue circle at full saturation, one degree per
// frame.
type Palette struct {
	hue int
}

// Hue returns the current hue in degrees.
func (p *Palette) Hue() int { return p.hue }

// Next advances the hue by one degree and returns the resulting colour.
func (p *Palette) Next() tcell.Color {
	p.hue = (p.hue + 1) % 360
	return p.Color()
}

// Color returns the colour of the current hue.
func (p *Palette) Color() tcell.Color {
	r, g, b := colorful.Hsl(float64(p.hue), 1, 0.5).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
