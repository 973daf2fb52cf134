package ga

import (
	"fmt"
	"io"
	"strings"
)

// Reporter receives progress callbacks from a Simulation.
type Reporter interface {
	// PostEvaluate is called after each termination check.
	PostEvaluate(stats GenerationStats)
	// Complete is called once, when the simulation terminates.
	Complete(result *Result)
}

// FormatPopulation renders one line per organism: its bit string followed
// by its fitness to four decimals.
func FormatPopulation(pop Population) string {
	var sb strings.Builder
	for _, o := range pop {
		fmt.Fprintf(&sb, "%s f=%.4f\n", o, o.Fitness())
	}
	return sb.String()
}

// TextReporter writes a human-readable trace of a run to W.
type TextReporter struct {
	W io.Writer
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{W: w}
}

func (r *TextReporter) PostEvaluate(stats GenerationStats) {
	fmt.Fprintf(r.W, "Best fitness: %.4f\n", stats.Best)
}

func (r *TextReporter) Complete(result *Result) {
	io.WriteString(r.W, FormatPopulation(result.Population))
	fmt.Fprintf(r.W, "Generations: %d\n", result.Generations)
}

// StatisticsReporter keeps the fitness statistics of every evaluated generation.
type StatisticsReporter struct {
	Generations []GenerationStats
	Final       *Result
}

func (r *StatisticsReporter) PostEvaluate(stats GenerationStats) {
	r.Generations = append(r.Generations, stats)
}

func (r *StatisticsReporter) Complete(result *Result) {
	r.Final = result
}

// BestFitnesses returns the best fitness of each recorded generation.
func (r *StatisticsReporter) BestFitnesses() []float64 {
	out := make([]float64, len(r.Generations))
	for i, s := range r.Generations {
		out[i] = s.Best
	}
	return out
}
