package core

import "testing"

func TestPositionInBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Position
		expected bool
	}{
		{"origin", Pos(0, 0), true},
		{"bottom-right corner", Pos(7, 7), true},
		{"above top", Pos(-1, 3), false},
		{"below bottom", Pos(8, 3), false},
		{"left of left edge", Pos(3, -1), false},
		{"right of right edge", Pos(3, 8), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.InBounds(); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPositionAdd(t *testing.T) {
	p := Pos(3, 3)
	tests := []struct {
		dir      Direction
		expected Position
	}{
		{Up, Pos(2, 3)},
		{Down, Pos(4, 3)},
		{Left, Pos(3, 2)},
		{Right, Pos(3, 4)},
	}

	for _, tc := range tests {
		if got := p.Add(tc.dir); got != tc.expected {
			t.Errorf("Add(%s) = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestPositionWrap(t *testing.T) {
	tests := []struct {
		in, expected Position
	}{
		{Pos(-1, 0), Pos(7, 0)},
		{Pos(8, 0), Pos(0, 0)},
		{Pos(0, -1), Pos(0, 7)},
		{Pos(0, 8), Pos(0, 0)},
		{Pos(4, 4), Pos(4, 4)},
	}

	for _, tc := range tests {
		if got := tc.in.Wrap(); got != tc.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestPositionIndexRoundTrip(t *testing.T) {
	for i := range Cells {
		if got := PositionAt(i).Index(); got != i {
			t.Errorf("PositionAt(%d).Index() = %d", i, got)
		}
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		wrap     bool
		expected bool
	}{
		{"horizontal neighbours", Pos(2, 2), Pos(2, 3), false, true},
		{"vertical neighbours", Pos(2, 2), Pos(3, 2), false, true},
		{"diagonal", Pos(2, 2), Pos(3, 3), false, false},
		{"same cell", Pos(2, 2), Pos(2, 2), false, false},
		{"two apart", Pos(2, 2), Pos(2, 4), false, false},
		{"across edge without wrap", Pos(0, 0), Pos(0, 7), false, false},
		{"across edge with wrap", Pos(0, 0), Pos(0, 7), true, true},
		{"across top edge with wrap", Pos(0, 5), Pos(7, 5), true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Adjacent(tc.a, tc.b, tc.wrap); got != tc.expected {
				t.Errorf("Adjacent(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.wrap, got, tc.expected)
			}
			if got := Adjacent(tc.b, tc.a, tc.wrap); got != tc.expected {
				t.Errorf("Adjacent (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
	}
}

func TestEventDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, ok := EventFor(d).Direction()
		if !ok || got != d {
			t.Errorf("EventFor(%s).Direction() = %s, %v", d, got, ok)
		}
	}
	if _, ok := EventNone.Direction(); ok {
		t.Error("None should carry no direction")
	}
	if _, ok := EventPress.Direction(); ok {
		t.Error("Press should carry no direction")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
