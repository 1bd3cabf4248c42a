package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the single random operation the allocation engine needs.
// Tests inject a seeded source for reproducible orderings.
type Source interface {
	// IntBetween returns a uniform value in [low, high], both bounds inclusive.
	// It panics if high < low.
	IntBetween(low, high int) int
}

type pcgSource struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic source for the given seed.
func NewSeeded(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// New returns a source seeded once from the OS entropy pool. Intended to be
// constructed once per process, not per sort call.
func New() Source {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("rng: failed to read entropy: " + err.Error())
	}
	hi := binary.LittleEndian.Uint64(b[:8])
	lo := binary.LittleEndian.Uint64(b[8:])
	return &pcgSource{r: rand.New(rand.NewPCG(hi, lo))}
}

func (s *pcgSource) IntBetween(low, high int) int {
	if high < low {
		panic("rng: IntBetween called with high < low")
	}
	return low + s.r.IntN(high-low+1)
}
