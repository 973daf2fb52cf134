package ga

import "fmt"

// Crossover performs single-point crossover between two parents.
// The first offspring takes genes [0, cut) from parent1 and [cut, n) from parent2;
// the second offspring takes the complementary segments.
// cut must lie in [0, n] and both parents must have the same length, otherwise
// Crossover panics.
func Crossover(parent1, parent2 Organism, cut int) (Organism, Organism) {
	n := parent1.Len()
	if parent2.Len() != n {
		panic(fmt.Sprintf("ga: crossover between organisms of length %d and %d", n, parent2.Len()))
	}
	if cut < 0 || cut > n {
		panic(fmt.Sprintf("ga: crossover cut point %d outside [0, %d]", cut, n))
	}

	g1 := make([]byte, n)
	g2 := make([]byte, n)
	copy(g1[:cut], parent1.genes[:cut])
	copy(g2[:cut], parent2.genes[:cut])
	copy(g1[cut:], parent2.genes[cut:])
	copy(g2[cut:], parent1.genes[cut:])

	return Organism{genes: g1}, Organism{genes: g2}
}
