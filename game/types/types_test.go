package types

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{Width: 40, Height: 20}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{40, 20}, true},
		{Point{20, 10}, true},
		{Point{0, 10}, false},
		{Point{41, 10}, false},
		{Point{20, 0}, false},
		{Point{20, 21}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridWalls(t *testing.T) {
	g := Grid{Width: 4, Height: 3}
	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, '+'},
		{0, 5, '+'},
		{4, 0, '+'},
		{4, 5, '+'},
		{0, 2, '-'},
		{4, 3, '-'},
		{2, 0, '|'},
		{1, 5, '|'},
		{2, 2, 0},
		{6, 6, 0},
	}
	for _, tt := range tests {
		if got := g.WallGlyph(tt.row, tt.col); got != tt.want {
			t.Errorf("WallGlyph(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
		if g.IsWall(tt.row, tt.col) != (tt.want != 0) {
			t.Errorf("IsWall(%d,%d) disagrees with WallGlyph", tt.row, tt.col)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	start := Point{X: 10, Y: 10}
	for _, d := range Directions {
		moved := start.Add(d.ToPoint())
		back := moved.Add(d.Opposite().ToPoint())
		if back != start {
			t.Errorf("%v then %v = %v, want %v", d, d.Opposite(), back, start)
		}
		dx, dy := moved.X-start.X, moved.Y-start.Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("%v is not a unit step: (%d,%d)", d, dx, dy)
		}
	}
	if None.ToPoint() != (Point{}) {
		t.Error("None must not move")
	}
}

func TestGridCenter(t *testing.T) {
	g := Grid{Width: 40, Height: 20}
	if c := g.Center(); c != (Point{X: 20, Y: 10}) {
		t.Errorf("Center = %v, want (20,10)", c)
	}
}
