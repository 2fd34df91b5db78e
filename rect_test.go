package knot

import "testing"

func TestRectFromOrigin(t *testing.T) {
	r := NewRectFromOrigin(Pt(10, 20), Sz(-5, 30))
	diff(t, Rect{5, 20, 10, 50}, r)
	diff(t, Sz(5, 30), r.Size())
	diff(t, Pt(7.5, 35), r.Center())
}

func TestRectContains(t *testing.T) {
	r := NewRectFromOrigin(Pt(0, 0), Sz(800, 600))
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(800, 600), true},
		{Pt(400, 300), true},
		{Pt(800.5, 300), false},
		{Pt(-0.5, 300), false},
		{Pt(400, 600.5), false},
		{Pt(400, -1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%s.Contains(%s) = %t, want %t", r, tt.pt, got, tt.want)
		}
	}
}
