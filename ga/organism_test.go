package ga

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Organism {
	t.Helper()
	o, err := ParseOrganism(s)
	require.NoError(t, err)
	return o
}

func mustParsePopulation(t *testing.T, ss ...string) Population {
	t.Helper()
	pop := make(Population, len(ss))
	for i, s := range ss {
		pop[i] = mustParse(t, s)
	}
	return pop
}

func TestFitnessBounds(t *testing.T) {
	assert.Equal(t, 0.0, mustParse(t, "0000000000000000").Fitness())
	assert.Equal(t, 1.0, mustParse(t, "1111111111111111").Fitness())
	assert.Equal(t, 0.25, mustParse(t, "1000100000000000").Fitness())

	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 500; i++ {
		o := RandomOrganism(16, rng)
		f := o.Fitness()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
		assert.Equal(t, f == 1.0, o.Ones() == o.Len(), "fitness 1 iff all bits set: %s", o)
		assert.Equal(t, f == 0.0, o.Ones() == 0, "fitness 0 iff no bits set: %s", o)
	}
}

func TestParseOrganism(t *testing.T) {
	o := mustParse(t, "1010")
	assert.Equal(t, 4, o.Len())
	assert.Equal(t, []byte{1, 0, 1, 0}, o.Genes())
	assert.Equal(t, "1010", o.String())

	_, err := ParseOrganism("10x1")
	assert.Error(t, err)
}

func TestNewOrganismCopiesInput(t *testing.T) {
	genes := []byte{1, 1, 0}
	o := NewOrganism(genes)
	genes[0] = 0
	assert.Equal(t, "110", o.String())

	out := o.Genes()
	out[2] = 1
	assert.Equal(t, "110", o.String())

	assert.Panics(t, func() { NewOrganism([]byte{0, 2}) })
}

func TestOrganismEqual(t *testing.T) {
	assert.True(t, mustParse(t, "0110").Equal(mustParse(t, "0110")))
	assert.False(t, mustParse(t, "0110").Equal(mustParse(t, "0111")))
	assert.False(t, mustParse(t, "011").Equal(mustParse(t, "0110")))
}

func TestRandomOrganismIsReproducible(t *testing.T) {
	a := RandomOrganism(32, rand.New(rand.NewPCG(3, 3)))
	b := RandomOrganism(32, rand.New(rand.NewPCG(3, 3)))
	assert.True(t, a.Equal(b))
	assert.Equal(t, 32, a.Len())
}
