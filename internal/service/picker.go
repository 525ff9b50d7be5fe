package service

import "math/rand/v2"

// Picker chooses which card to ask next.
type Picker interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// NewRandomPicker returns a Picker drawing uniformly at random. A zero seed
// selects a random seed; any other value makes the sequence reproducible.
func NewRandomPicker(seed uint64) Picker {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
