package ga

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Organism is a fixed-length binary genome.
// It is a value type: the gene slice is never modified after construction,
// so organisms can be copied and shared freely. New organisms are produced
// by NewOrganism, RandomOrganism or Crossover.
type Organism struct {
	genes []byte // each gene is 0 or 1
}

// NewOrganism creates an organism holding a copy of genes.
// It panics if a gene is neither 0 nor 1.
func NewOrganism(genes []byte) Organism {
	g := make([]byte, len(genes))
	for i, v := range genes {
		if v > 1 {
			panic(fmt.Sprintf("ga: invalid gene value %d at position %d", v, i))
		}
		g[i] = v
	}
	return Organism{genes: g}
}

// ParseOrganism converts a string of '0' and '1' characters into an organism.
// The first character is gene 0.
func ParseOrganism(s string) (Organism, error) {
	genes := make([]byte, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			genes = append(genes, 0)
		case '1':
			genes = append(genes, 1)
		default:
			return Organism{}, fmt.Errorf("ga: invalid character %q at position %d in organism encoding", c, i)
		}
	}
	return Organism{genes: genes}, nil
}

// RandomOrganism draws every gene independently and uniformly from {0, 1}.
func RandomOrganism(length int, rng *rand.Rand) Organism {
	genes := make([]byte, length)
	for i := range genes {
		genes[i] = byte(rng.IntN(2))
	}
	return Organism{genes: genes}
}

// Len returns the genome length.
func (o Organism) Len() int {
	return len(o.genes)
}

// Gene returns the value (0 or 1) of gene i.
func (o Organism) Gene(i int) byte {
	return o.genes[i]
}

// Genes returns a copy of the genome.
func (o Organism) Genes() []byte {
	out := make([]byte, len(o.genes))
	copy(out, o.genes)
	return out
}

// Ones counts the genes set to 1.
func (o Organism) Ones() int {
	n := 0
	for _, g := range o.genes {
		n += int(g)
	}
	return n
}

// Fitness returns the proportion of genes set to 1, in [0, 1].
// It is recomputed on every call; organisms carry no cached score.
func (o Organism) Fitness() float64 {
	if len(o.genes) == 0 {
		return 0
	}
	return float64(o.Ones()) / float64(len(o.genes))
}

// Equal reports whether both organisms carry the same genome.
func (o Organism) Equal(other Organism) bool {
	if len(o.genes) != len(other.genes) {
		return false
	}
	for i := range o.genes {
		if o.genes[i] != other.genes[i] {
			return false
		}
	}
	return true
}

func (o Organism) String() string {
	var sb strings.Builder
	sb.Grow(len(o.genes))
	for _, g := range o.genes {
		sb.WriteByte('0' + g)
	}
	return sb.String()
}
