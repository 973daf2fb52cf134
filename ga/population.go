package ga

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Population is the ordered, fixed-size collection of organisms under evolution.
// Positional logic (selection, termination) assumes the population has been
// sorted with SortByFitness since it was last modified.
type Population []Organism

// NewRandomPopulation creates size organisms of genomeLength random genes each.
// All randomness is drawn from rng, which should be seeded once per run.
func NewRandomPopulation(size, genomeLength int, rng *rand.Rand) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = RandomOrganism(genomeLength, rng)
	}
	return pop
}

// compareFitness orders higher fitness first.
func compareFitness(a, b Organism) int {
	return cmp.Compare(b.Fitness(), a.Fitness())
}

// SortByFitness reorders the population in place by descending fitness.
// Organisms of equal fitness are left in no particular order.
func (p Population) SortByFitness() {
	slices.SortFunc(p, compareFitness)
}

// IsSorted reports whether fitness is non-increasing from index 0 onwards.
func (p Population) IsSorted() bool {
	return slices.IsSortedFunc(p, compareFitness)
}

// Best returns the organism at index 0, which is the fittest one
// only if the population is sorted.
func (p Population) Best() Organism {
	return p[0]
}

// Fitnesses returns the fitness of each organism, in population order.
func (p Population) Fitnesses() []float64 {
	f := make([]float64, len(p))
	for i, o := range p {
		f[i] = o.Fitness()
	}
	return f
}

// Clone returns a shallow copy. Organisms are immutable, so this is
// enough to snapshot the population.
func (p Population) Clone() Population {
	return slices.Clone(p)
}

// GenomeLength returns the length of the organisms in the population.
func (p Population) GenomeLength() int {
	if len(p) == 0 {
		return 0
	}
	return p[0].Len()
}
