package ga

import (
	"math/rand/v2"
)

// Mating records one crossover performed during a generation.
type Mating struct {
	Parents Pair // indices of the parents in the sorted population
	Cut     int  // crossover point, drawn from [0, genome length)
	Slots   Pair // indices overwritten by the first and second offspring
}

// Reproduction handles the creation of organisms, either from scratch or
// through truncation selection and crossover.
type Reproduction struct {
	Config *SimulationConfig
}

// NewReproduction creates a new reproduction manager.
func NewReproduction(config *SimulationConfig) *Reproduction {
	return &Reproduction{Config: config}
}

// CreateNewPopulation creates a random initial population.
func (r *Reproduction) CreateNewPopulation(rng *rand.Rand) Population {
	return NewRandomPopulation(r.Config.PopulationSize, r.Config.GenomeLength, rng)
}

// Reproduce advances pop by one generation in place.
// See AdvanceGeneration.
func (r *Reproduction) Reproduce(pop Population, rng *rand.Rand) []Mating {
	return AdvanceGeneration(pop, r.Config.Bottleneck, rng)
}

// AdvanceGeneration replaces the bottom bottleneck organisms of pop with the
// offspring of the top bottleneck organisms.
//
// The parents are paired with SelectBottleneckPairs. Pair i gets its own cut
// point and its two offspring are written to slots len(pop)-2-2i and
// len(pop)-1-2i, filling the bottom region from the end inward. Parents are
// taken from the population as it stood when the call began, so offspring
// written early never act as parents in the same generation. Organisms in
// [0, len(pop)-bottleneck) are left untouched.
//
// pop must be sorted by descending fitness on entry; it is not re-sorted.
func AdvanceGeneration(pop Population, bottleneck int, rng *rand.Rand) []Mating {
	if bottleneck == 0 {
		return nil
	}
	parents := pop[:bottleneck].Clone()
	genomeLength := pop.GenomeLength()
	size := len(pop)

	pairs := SelectBottleneckPairs(bottleneck, rng)
	matings := make([]Mating, len(pairs))

	for i, pair := range pairs {
		cut := rng.IntN(genomeLength)
		offspring1, offspring2 := Crossover(parents[pair.First], parents[pair.Second], cut)

		slots := Pair{First: size - 2*i - 2, Second: size - 2*i - 1}
		pop[slots.First] = offspring1
		pop[slots.Second] = offspring2

		matings[i] = Mating{Parents: pair, Cut: cut, Slots: slots}
	}
	return matings
}
