package ga

import (
	"math/rand/v2"
)

// Pair holds the population indices of two mating parents.
type Pair struct {
	First  int
	Second int
}

// Shuffle applies the modern Fisher-Yates shuffle to indices in place.
func Shuffle(indices []int, rng *rand.Rand) {
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
}

// SelectBottleneckPairs performs truncation selection followed by random pairing.
// The indices [0, bottleneck) are shuffled and then split into consecutive pairs,
// so each of the fittest bottleneck organisms takes part in exactly one mating.
// The population must be sorted by descending fitness and bottleneck must be even.
func SelectBottleneckPairs(bottleneck int, rng *rand.Rand) []Pair {
	candidates := make([]int, bottleneck)
	for i := range candidates {
		candidates[i] = i
	}

	Shuffle(candidates, rng)

	pairs := make([]Pair, bottleneck/2)
	for i := range pairs {
		pairs[i] = Pair{First: candidates[2*i], Second: candidates[2*i+1]}
	}
	return pairs
}
