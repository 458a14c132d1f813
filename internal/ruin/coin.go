package ruin

import "math/rand/v2"

// Coin produces fair binary outcomes. Toss reports true for a win.
type Coin interface {
	Toss() bool
}

// bitCoin hands out one bit of a 64-bit PCG word per toss so the
// generator is only called once every 64 flips.
type bitCoin struct {
	rng  *rand.Rand
	val  uint64
	bits int
}

// NewCoin returns a coin seeded from the runtime's random source, so
// every call yields an independent stream.
func NewCoin() Coin {
	return NewSeededCoin(rand.Uint64(), rand.Uint64())
}

// NewSeededCoin returns a deterministic coin. Intended for tests and
// reproducible runs only.
func NewSeededCoin(seed1, seed2 uint64) Coin {
	return &bitCoin{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (c *bitCoin) Toss() bool {
	if c.bits == 0 {
		c.val = c.rng.Uint64()
		c.bits = 64
	}
	c.bits--
	win := c.val&1 == 1
	c.val >>= 1
	return win
}
