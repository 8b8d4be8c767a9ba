package qsim

import (
	crand "crypto/rand"
	"math/rand/v2"
)

/*
Source is the randomness a QuantumComputer draws from exactly once per
collapse. Float64 must return a value in [0, 1). *rand.Rand satisfies it.
*/
type Source interface {
	Float64() float64
}

// NewSeededSource returns a reproducible PCG generator.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewEntropySource returns a ChaCha8 generator seeded from the operating system.
func NewEntropySource() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}
	return rand.New(rand.NewChaCha8(seed))
}

// FixedSource replays Draws in order, wrapping around at the end.
type FixedSource struct {
	Draws []float64
	next  int
}

func NewFixedSource(draws ...float64) *FixedSource {
	return &FixedSource{Draws: draws}
}

func (fs *FixedSource) Float64() float64 {
	if len(fs.Draws) == 0 {
		return 0
	}

	v := fs.Draws[fs.next%len(fs.Draws)]
	fs.next++
	return v
}
