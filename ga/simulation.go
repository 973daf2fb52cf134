package ga

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
)

// State is the position of a Simulation in its run loop.
type State int

const (
	StateInitializing State = iota
	StateEvaluating
	StateAdvancing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateEvaluating:
		return "evaluating"
	case StateAdvancing:
		return "advancing"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// TerminationReason tells why a simulation stopped.
type TerminationReason int

const (
	ReasonNone TerminationReason = iota
	ReasonOptimumFound
	ReasonGenerationLimit
)

func (r TerminationReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOptimumFound:
		return "optimum found"
	case ReasonGenerationLimit:
		return "generation limit reached"
	}
	return fmt.Sprintf("TerminationReason(%d)", int(r))
}

// Result is the outcome of a finished simulation.
type Result struct {
	Population  Population // final population, sorted by descending fitness
	Generations int        // value of the generation counter at termination
	BestHistory []float64  // best fitness seen at each evaluation, in order
	Reason      TerminationReason
}

// Simulation holds the state of one evolutionary run.
// It is not safe for concurrent use.
type Simulation struct {
	Config       *Config
	Population   Population
	Reproduction *Reproduction
	Generation   int
	State        State
	Reason       TerminationReason
	BestHistory  []float64
	Reporters    []Reporter

	initial Population
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewSimulation validates config and prepares a run seeded with config.Simulation.Seed.
// The initial population is drawn on the first Step.
func NewSimulation(config *Config) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	seed := config.Simulation.Seed
	return &Simulation{
		Config:       config,
		Reproduction: NewReproduction(&config.Simulation),
		State:        StateInitializing,
		rng:          rand.New(rand.NewPCG(seed, seed)),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// NewSimulationWithPopulation is like NewSimulation but starts from a copy of
// initial instead of a random population. initial must hold
// population_size organisms of genome_length genes.
func NewSimulationWithPopulation(config *Config, initial Population) (*Simulation, error) {
	s, err := NewSimulation(config)
	if err != nil {
		return nil, err
	}
	sc := &config.Simulation
	if len(initial) != sc.PopulationSize {
		return nil, fmt.Errorf("initial population has %d organisms, config expects %d", len(initial), sc.PopulationSize)
	}
	for i, o := range initial {
		if o.Len() != sc.GenomeLength {
			return nil, fmt.Errorf("organism %d has %d genes, config expects %d", i, o.Len(), sc.GenomeLength)
		}
	}
	s.initial = initial.Clone()
	return s, nil
}

// SetLogger replaces the logger used for progress messages.
func (s *Simulation) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// AddReporter registers r to receive progress callbacks.
func (s *Simulation) AddReporter(r Reporter) {
	s.Reporters = append(s.Reporters, r)
}

// Step performs one state transition and reports whether the simulation is
// still running afterwards.
func (s *Simulation) Step() bool {
	switch s.State {
	case StateInitializing:
		s.initialize()
	case StateEvaluating:
		s.evaluate()
	case StateAdvancing:
		s.advance()
	case StateTerminated:
		return false
	}
	return s.State != StateTerminated
}

// Run steps the simulation until it terminates and returns the result.
func (s *Simulation) Run() *Result {
	for s.Step() {
	}
	return s.Result()
}

// Result returns the current outcome. It is final once State is StateTerminated.
func (s *Simulation) Result() *Result {
	return &Result{
		Population:  s.Population,
		Generations: s.Generation,
		BestHistory: s.BestHistory,
		Reason:      s.Reason,
	}
}

func (s *Simulation) initialize() {
	if s.initial != nil {
		s.Population = s.initial
		s.initial = nil
	} else {
		s.Population = s.Reproduction.CreateNewPopulation(s.rng)
	}
	s.Population.SortByFitness()
	s.Generation = 1
	s.State = StateEvaluating

	s.logger.Info("population initialized",
		"size", len(s.Population),
		"genome_length", s.Population.GenomeLength(),
		"seed", s.Config.Simulation.Seed)
}

// evaluate checks the termination conditions on the sorted population.
func (s *Simulation) evaluate() {
	best := s.Population.Best().Fitness()
	s.BestHistory = append(s.BestHistory, best)

	stats := ComputeStats(s.Generation, s.Population)
	s.logger.Debug("generation evaluated",
		"generation", s.Generation,
		"best", best,
		"mean", stats.Mean,
		"stdev", stats.Stdev)
	for _, r := range s.Reporters {
		r.PostEvaluate(stats)
	}

	switch {
	case best == 1:
		s.terminate(ReasonOptimumFound)
	case s.Generation > s.Config.Simulation.MaxGenerations:
		s.terminate(ReasonGenerationLimit)
	default:
		s.State = StateAdvancing
	}
}

func (s *Simulation) advance() {
	matings := s.Reproduction.Reproduce(s.Population, s.rng)
	s.Population.SortByFitness()
	s.Generation++
	s.State = StateEvaluating

	s.logger.Debug("generation advanced", "generation", s.Generation, "matings", len(matings))
}

func (s *Simulation) terminate(reason TerminationReason) {
	s.State = StateTerminated
	s.Reason = reason

	s.logger.Info("simulation terminated",
		"reason", reason.String(),
		"generations", s.Generation,
		"best", s.Population.Best().Fitness())

	result := s.Result()
	for _, r := range s.Reporters {
		r.Complete(result)
	}
}

// RunSimulation runs a complete simulation and returns the final, sorted
// population together with the generation counter reached. It returns a
// *ConfigurationError without running anything when the parameters are invalid.
func RunSimulation(genomeLength, populationSize, bottleneck, maxGenerations int, seed uint64) (Population, int, error) {
	config := &Config{
		Simulation: SimulationConfig{
			GenomeLength:   genomeLength,
			PopulationSize: populationSize,
			Bottleneck:     bottleneck,
			MaxGenerations: maxGenerations,
			Seed:           seed,
		},
	}
	sim, err := NewSimulation(config)
	if err != nil {
		return nil, 0, err
	}
	result := sim.Run()
	return result.Population, result.Generations, nil
}
