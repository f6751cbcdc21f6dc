package device

import "math/bits"

// NoiseSeed mixes 32 samples from a floating analog pin into a seed: each
// step rotates the accumulator left by one and XORs in the sample's low
// byte. The result is never zero.
func NoiseSeed(read func() uint16) uint32 {
	var seed uint32
	for range 32 {
		seed = bits.RotateLeft32(seed, 1) ^ uint32(read()&0xFF)
	}
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return seed
}

// XorShift is a 32-bit xorshift generator. It satisfies snake.Rand without
// touching the heap.
type XorShift struct {
	state uint32
}

// NewXorShift seeds a generator. A zero seed is replaced, since zero is a
// fixed point of the recurrence.
func NewXorShift(seed uint32) *XorShift {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &XorShift{state: seed}
}

// Uint32 returns the next value.
func (x *XorShift) Uint32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (x *XorShift) Intn(n int) int {
	if n <= 0 {
		panic("device: Intn with non-positive n")
	}
	// Reject the top partial range so every result is equally likely.
	bound := uint32(n)
	limit := ^uint32(0) - ^uint32(0)%bound
	for {
		v := x.Uint32()
		if v < limit {
			return int(v % bound)
		}
	}
}
