// Package onemax provides a minimal generational genetic algorithm over
// fixed-length binary organisms whose fitness is the fraction of bits set to one.
//
// Each generation the population is sorted by fitness, the fittest
// "bottleneck" organisms are paired at random and recombined by single-point
// crossover, and their offspring replace the least fit organisms. The run
// stops when an organism with every bit set appears or when the generation
// limit is passed.
//
// Basic usage:
//
//	// Load configuration
//	config, err := ga.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create and run a simulation
//	sim, err := ga.NewSimulation(config)
//	if err != nil {
//		log.Fatalf("Error creating simulation: %v", err)
//	}
//	sim.AddReporter(ga.NewTextReporter(os.Stdout))
//	result := sim.Run()
//	fmt.Println("Generations:", result.Generations)
package onemax
