package solver

import "variantsudoku/internal/model"

// Precomputed holds prefix sums over the admissible value set V, used by
// the Killer and Arrow propagators to bound an unknown region's
// reachable sum without searching. Sums use a 64-bit accumulator since
// puzzles need not use small digits.
type Precomputed struct {
	// LowestSums[k] is the minimum achievable sum using any k
	// distinct-by-position values of V.
	LowestSums []int64
	// HighestSums[k] is the symmetric maximum.
	HighestSums []int64

	min, max int64
}

func newPrecomputed(values []model.Value) *Precomputed {
	n := len(values)
	lowest := make([]int64, n+1)
	highest := make([]int64, n+1)
	for i := 0; i < n; i++ {
		lowest[i+1] = lowest[i] + int64(values[i])
		highest[i+1] = highest[i] + int64(values[n-1-i])
	}
	return &Precomputed{
		LowestSums:  lowest,
		HighestSums: highest,
		min:         int64(values[0]),
		max:         int64(values[n-1]),
	}
}

// Lowest bounds the minimum sum of k cells. Past |V| the prefix sums
// run out; a cage larger than |V| is legal (values may repeat,
// uniqueness is a separate constraint) and extends by the smallest
// admissible value.
func (p *Precomputed) Lowest(k int) int64 {
	n := len(p.LowestSums) - 1
	if k <= n {
		return p.LowestSums[k]
	}
	return p.LowestSums[n] + int64(k-n)*p.min
}

// Highest is the symmetric maximum-sum bound for k cells.
func (p *Precomputed) Highest(k int) int64 {
	n := len(p.HighestSums) - 1
	if k <= n {
		return p.HighestSums[k]
	}
	return p.HighestSums[n] + int64(k-n)*p.max
}
