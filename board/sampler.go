package board

import "math/rand/v2"

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// Sampler chooses which positions of a rows x cols grid hold the k hazards.
type Sampler interface {
	Sample(rows, cols, k int) []Position
}

// randomSampler draws a uniform k-subset with a partial Fisher-Yates shuffle
// over the row-major cell indices.
type randomSampler struct {
	r *rand.Rand
}

// NewSeededSampler returns a Sampler whose placements are reproducible for a
// given seed.
func NewSeededSampler(seed uint64) Sampler {
	return &randomSampler{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRandomSampler returns a Sampler seeded from the runtime's random source.
func NewRandomSampler() Sampler {
	return &randomSampler{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *randomSampler) Sample(rows, cols, k int) []Position {
	n := rows * cols
	if k > n {
		k = n
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.r.IntN(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	out := make([]Position, k)
	for i, idx := range indices[:k] {
		out[i] = Position{Row: idx / cols, Col: idx % cols}
	}
	return out
}

// Fixed is a Sampler that always places hazards at the listed positions,
// regardless of the requested count. Board construction rejects it when the
// list does not match the board.
type Fixed []Position

// Sample returns a copy of the fixed positions.
func (f Fixed) Sample(rows, cols, k int) []Position {
	out := make([]Position, len(f))
	copy(out, f)
	return out
}
