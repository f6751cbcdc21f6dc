package device

import (
	"testing"

	"github.com/vovakirdan/dotgames/internal/core"
)

func TestPackColumnsMatchesFrameBuffer(t *testing.T) {
	frames := []string{
		"#.......",
		"........\n........\n........\n........\n........\n........\n........\n.......#",
		"#......#\n.#....#.\n..#..#..\n...##...",
	}

	for _, art := range frames {
		f := core.ParseFrame(art)
		if got, want := PackColumns(f.Grid()), f.Columns(); got != want {
			t.Errorf("PackColumns(%q) = %v, expected %v", art, got, want)
		}
	}

	f := core.ParseFrame("#.......")
	if cols := PackColumns(f.Grid()); cols[0] != 0x80 {
		t.Errorf("top-left LED should be bit 7 of column 0, got %08b", cols[0])
	}
}

func TestChangedColumns(t *testing.T) {
	prev := [core.Cols]uint8{1, 2, 3, 4, 5, 6, 7, 8}
	next := prev
	next[2] = 0
	next[7] = 0xFF

	if mask := changedColumns(prev, next, false); mask != 1<<2|1<<7 {
		t.Errorf("mask = %08b", mask)
	}
	if mask := changedColumns(prev, prev, false); mask != 0 {
		t.Errorf("identical frames should need no writes, mask = %08b", mask)
	}
	if mask := changedColumns(prev, prev, true); mask != 0xFF {
		t.Errorf("forced mask = %08b", mask)
	}
}

func TestNoiseSeed(t *testing.T) {
	samples := []uint16{0x0301, 0x0102, 0x00FF, 0x1234}
	i := 0
	read := func() uint16 {
		v := samples[i%len(samples)]
		i++
		return v
	}

	seed := NoiseSeed(read)
	if i != 32 {
		t.Errorf("NoiseSeed read %d samples, expected 32", i)
	}
	if seed == 0 {
		t.Error("seed must not be zero")
	}

	if NoiseSeed(func() uint16 { return 0 }) == 0 {
		t.Error("an all-zero pin must still give a usable seed")
	}
}

func TestXorShiftDeterministic(t *testing.T) {
	a, b := NewXorShift(12345), NewXorShift(12345)
	for i := 0; i < 100; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}

	z := NewXorShift(0)
	if z.Uint32() == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestXorShiftIntnRange(t *testing.T) {
	x := NewXorShift(7)
	counts := make([]int, 6)
	for i := 0; i < 6000; i++ {
		v := x.Intn(6)
		if v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d", v)
		}
		counts[v]++
	}
	for v, n := range counts {
		if n < 700 || n > 1300 {
			t.Errorf("value %d drawn %d times out of 6000", v, n)
		}
	}

	if x.Intn(1) != 0 {
		t.Error("Intn(1) must be 0")
	}
}
