package snake

import "github.com/vovakirdan/dotgames/internal/core"

// Body is the snake's ordered cell sequence, head first. It is a ring buffer
// sized to the whole grid so that growth never allocates, plus an occupancy
// bitmap for constant-time membership tests.
type Body struct {
	cells    [core.Cells]core.Position
	head     int // Index of the head in cells
	n        int
	occupied uint64
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// At returns segment i, 0 being the head.
func (b *Body) At(i int) core.Position {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.cells[(b.head+i)%core.Cells]
}

// Head returns the first segment.
func (b *Body) Head() core.Position {
	return b.At(0)
}

// Tail returns the last segment.
func (b *Body) Tail() core.Position {
	return b.At(b.n - 1)
}

// Contains reports whether any segment occupies p.
func (b *Body) Contains(p core.Position) bool {
	if !p.InBounds() {
		return false
	}
	return b.occupied&(1<<p.Index()) != 0
}

// PushFront adds a new head.
func (b *Body) PushFront(p core.Position) {
	if b.n == core.Cells {
		panic("snake: body is full")
	}
	b.head = (b.head + core.Cells - 1) % core.Cells
	b.cells[b.head] = p
	b.n++
	b.occupied |= 1 << p.Index()
}

// PopBack removes and returns the tail.
func (b *Body) PopBack() core.Position {
	if b.n == 0 {
		panic("snake: body is empty")
	}
	p := b.At(b.n - 1)
	b.n--
	b.occupied &^= 1 << p.Index()
	return p
}

// Reset empties the body.
func (b *Body) Reset() {
	*b = Body{}
}

// Positions appends the segments, head first, to dst.
func (b *Body) Positions(dst []core.Position) []core.Position {
	for i := range b.n {
		dst = append(dst, b.At(i))
	}
	return dst
}
