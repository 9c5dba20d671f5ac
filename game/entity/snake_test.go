package entity

import (
	"testing"

	"snake-term/game/types"
)

func TestAdvanceShiftsBodyFromPreUpdateValues(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 100)
	s.body = append(s.body,
		types.Point{X: 4, Y: 5},
		types.Point{X: 3, Y: 5},
		types.Point{X: 3, Y: 6},
	)

	oldHead := s.Head()
	before := s.Body()
	s.Advance(types.Point{X: 6, Y: 5})

	got := s.Body()
	if got[0] != oldHead {
		t.Errorf("segment 0 = %v, want old head %v", got[0], oldHead)
	}
	for i := 1; i < len(got); i++ {
		if got[i] != before[i-1] {
			t.Errorf("segment %d = %v, want %v", i, got[i], before[i-1])
		}
	}
	if s.Head() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, want (6,5)", s.Head())
	}
	if s.vacated != (types.Point{X: 3, Y: 6}) {
		t.Errorf("vacated = %v, want (3,6)", s.vacated)
	}
}

func TestGrowUsesVacatedCell(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 100)
	s.Advance(types.Point{X: 6, Y: 5})
	if !s.Grow() {
		t.Fatal("Grow returned false on an empty board")
	}
	body := s.Body()
	if len(body) != 1 || body[0] != (types.Point{X: 5, Y: 5}) {
		t.Fatalf("body = %v, want [(5,5)]", body)
	}

	s.Advance(types.Point{X: 7, Y: 5})
	s.Grow()
	body = s.Body()
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if len(body) != len(want) {
		t.Fatalf("body = %v, want %v", body, want)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
}

func TestGrowStopsAtCapacity(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, 2)
	s.Advance(types.Point{X: 2, Y: 1})
	if !s.Grow() {
		t.Fatal("first Grow should fit: head plus one segment fills a 2-cell board")
	}
	if s.Grow() {
		t.Error("Grow beyond capacity should return false")
	}
	if s.Length() != 1 {
		t.Errorf("Length = %d, want 1", s.Length())
	}
}

func TestSetHeading(t *testing.T) {
	tests := []struct {
		name    string
		bodyLen int
		current types.Direction
		next    types.Direction
		want    types.Direction
	}{
		{"none keeps heading", 0, types.Right, types.None, types.Right},
		{"reverse allowed without body", 0, types.Right, types.Left, types.Left},
		{"reverse rejected with body", 1, types.Right, types.Left, types.Right},
		{"turn allowed with body", 3, types.Right, types.Up, types.Up},
		{"first heading", 0, types.None, types.Down, types.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(types.Point{X: 5, Y: 5}, 100)
			for i := 0; i < tt.bodyLen; i++ {
				s.body = append(s.body, types.Point{X: 4 - i, Y: 5})
			}
			s.heading = tt.current
			s.SetHeading(tt.next)
			if s.Heading() != tt.want {
				t.Errorf("heading = %v, want %v", s.Heading(), tt.want)
			}
		})
	}
}

func TestCollidesWithSelf(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 100)
	s.body = append(s.body, types.Point{X: 4, Y: 5}, types.Point{X: 4, Y: 6})

	if !s.CollidesWithSelf(types.Point{X: 4, Y: 6}) {
		t.Error("expected collision with tail segment")
	}
	if s.CollidesWithSelf(types.Point{X: 5, Y: 5}) {
		t.Error("head is not a body segment")
	}
	if !s.Occupies(types.Point{X: 5, Y: 5}) {
		t.Error("Occupies should include the head")
	}
}

func TestBodyReturnsCopy(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 100)
	s.body = append(s.body, types.Point{X: 4, Y: 5})
	b := s.Body()
	b[0] = types.Point{X: 99, Y: 99}
	if s.body[0] != (types.Point{X: 4, Y: 5}) {
		t.Error("Body leaked internal storage")
	}
}
