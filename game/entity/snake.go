package entity

import (
	"snake-term/game/types"
)

// Snake is the player-controlled body. The head is kept apart from Body;
// Body[0] is the segment directly behind the head.
type Snake struct {
	head     types.Point
	body     []types.Point
	heading  types.Direction
	vacated  types.Point
	capacity int
}

// NewSnake creates a snake of length zero at startPos with no heading.
// capacity bounds the body length and is normally the grid area.
func NewSnake(startPos types.Point, capacity int) *Snake {
	return &Snake{
		head:     startPos,
		body:     make([]types.Point, 0, 8),
		heading:  types.None,
		vacated:  startPos,
		capacity: capacity,
	}
}

// Head returns the current head position.
func (s *Snake) Head() types.Point {
	return s.head
}

// Body returns a copy of the body segments, head-adjacent first.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Length is the number of body segments, excluding the head.
func (s *Snake) Length() int {
	return len(s.body)
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

// SetHeading changes the heading. None is ignored, and so is a 180-degree turn
// while the snake has a body, since that would drive the head into its neck.
func (s *Snake) SetHeading(dir types.Direction) {
	if dir == types.None {
		return
	}
	if len(s.body) > 0 && dir == s.heading.Opposite() {
		return
	}
	s.heading = dir
}

// Advance shifts every segment one step toward the head and moves the head to newHead.
// Segment i takes the pre-update position of segment i-1 and segment 0 takes the old head.
func (s *Snake) Advance(newHead types.Point) {
	if n := len(s.body); n > 0 {
		prev := make([]types.Point, n)
		copy(prev, s.body)
		s.vacated = prev[n-1]
		s.body[0] = s.head
		copy(s.body[1:], prev[:n-1])
	} else {
		s.vacated = s.head
	}
	s.head = newHead
}

// Grow adds one segment at the cell the tail vacated during the last Advance.
// It returns false once the snake fills its capacity.
func (s *Snake) Grow() bool {
	if len(s.body)+2 > s.capacity {
		return false
	}
	s.body = append(s.body, s.vacated)
	return true
}

// CollidesWithSelf reports whether p is on any body segment.
func (s *Snake) CollidesWithSelf(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// Occupies reports whether p is on the head or the body.
func (s *Snake) Occupies(p types.Point) bool {
	return p == s.head || s.CollidesWithSelf(p)
}
