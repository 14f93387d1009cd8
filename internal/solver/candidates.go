package solver

import "math/bits"

// Candidates is a bitmask over admissible-value indices: bit i is set
// when model.SudokuModel.Values[i] is still possible for a cell. The
// bitset is sized to the puzzle's admissible value set, so puzzles are
// not limited to nine single digits.
type Candidates struct {
	words []uint64
}

func newCandidates(size int, full bool) Candidates {
	c := Candidates{words: make([]uint64, (size+63)/64)}
	if full {
		for i := 0; i < size; i++ {
			c.set(i)
		}
	}
	return c
}

func fullCandidates(size int) Candidates  { return newCandidates(size, true) }
func emptyCandidates(size int) Candidates { return newCandidates(size, false) }

func (c Candidates) has(i int) bool {
	return c.words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

func (c Candidates) set(i int) {
	c.words[i/64] |= uint64(1) << uint(i%64)
}

// count returns the number of set bits (the candidate-set size).
func (c Candidates) count() int {
	n := 0
	for _, w := range c.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// clone returns an independent copy, used when SolverState is cloned
// before a search branch.
func (c Candidates) clone() Candidates {
	words := make([]uint64, len(c.words))
	copy(words, c.words)
	return Candidates{words: words}
}

// indices returns the set bit positions in ascending order.
func (c Candidates) indices() []int {
	out := make([]int, 0, c.count())
	for wi, w := range c.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1
		}
	}
	return out
}
