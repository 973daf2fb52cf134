package ga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises the fitness distribution of one generation.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Stdev      float64 // sample standard deviation; 0 for fewer than two organisms
}

// ComputeStats summarises the fitness of pop. It does not rely on pop being sorted.
func ComputeStats(generation int, pop Population) GenerationStats {
	s := GenerationStats{Generation: generation}
	if len(pop) == 0 {
		return s
	}
	fitnesses := pop.Fitnesses()
	s.Best = floats.Max(fitnesses)
	s.Worst = floats.Min(fitnesses)
	s.Mean = stat.Mean(fitnesses, nil)
	if len(fitnesses) > 1 {
		s.Stdev = stat.StdDev(fitnesses, nil)
	}
	return s
}
