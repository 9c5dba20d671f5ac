package types

// Point is a cell on the grid. The playable interior is 1-indexed.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions.
// The interior spans [1, Width] x [1, Height]; the frame ring sits at
// row 0, row Height+1, column 0 and column Width+1.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the playable interior.
func (g Grid) Contains(p Point) bool {
	return p.X >= 1 && p.X <= g.Width && p.Y >= 1 && p.Y <= g.Height
}

// IsWall reports whether (row, col) is part of the frame drawn around the interior.
// Collision never uses this, only Contains.
func (g Grid) IsWall(row, col int) bool {
	if row < 0 || row > g.Height+1 || col < 0 || col > g.Width+1 {
		return false
	}
	return row == 0 || row == g.Height+1 || col == 0 || col == g.Width+1
}

// WallGlyph returns the frame character for (row, col), or 0 if it is not a wall cell.
func (g Grid) WallGlyph(row, col int) rune {
	if !g.IsWall(row, col) {
		return 0
	}
	top := row == 0 || row == g.Height+1
	side := col == 0 || col == g.Width+1
	switch {
	case top && side:
		return '+'
	case top:
		return '-'
	default:
		return '|'
	}
}

// Area is the number of interior cells.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center is where a new snake starts.
func (g Grid) Center() Point {
	return Point{X: max(1, g.Width/2), Y: max(1, g.Height/2)}
}

// Direction is a cardinal heading.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// ToPoint converts a Direction into a unit displacement. None yields no movement.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Directions lists the four moving headings.
var Directions = [4]Direction{Up, Right, Down, Left}
