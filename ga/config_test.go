package ga

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
# test parameters
[Simulation]
genome_length   = 8
population_size = 12
bottleneck      = 6
max_generations = 25
seed            = 42
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onemax-config")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, SimulationConfig{
		GenomeLength:   8,
		PopulationSize: 12,
		Bottleneck:     6,
		MaxGenerations: 25,
		Seed:           42,
	}, config.Simulation)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfigBytes([]byte("[Simulation]\nmax_generations = 3\n"))
	require.NoError(t, err)

	s := config.Simulation
	assert.Equal(t, DefaultGenomeLength, s.GenomeLength)
	assert.Equal(t, DefaultPopulationSize, s.PopulationSize)
	assert.Equal(t, DefaultBottleneck, s.Bottleneck)
	assert.Equal(t, 3, s.MaxGenerations)
}

func TestLoadConfigValidates(t *testing.T) {
	_, err := LoadConfigBytes([]byte("[Simulation]\npopulation_size = 41\n"))
	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "population_size", cerr.Field)
	assert.Equal(t, 41, cerr.Value)
	assert.Contains(t, cerr.Error(), "must be even")
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimulationConfig)
		field  string
	}{
		{"odd population", func(s *SimulationConfig) { s.PopulationSize = 41 }, "population_size"},
		{"zero population", func(s *SimulationConfig) { s.PopulationSize = 0 }, "population_size"},
		{"odd bottleneck", func(s *SimulationConfig) { s.Bottleneck = 7 }, "bottleneck"},
		{"negative bottleneck", func(s *SimulationConfig) { s.Bottleneck = -2 }, "bottleneck"},
		{"bottleneck above population", func(s *SimulationConfig) { s.Bottleneck = 42 }, "bottleneck"},
		{"empty genome", func(s *SimulationConfig) { s.GenomeLength = 0 }, "genome_length"},
		{"negative generations", func(s *SimulationConfig) { s.MaxGenerations = -1 }, "max_generations"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config.Simulation)

			err := config.Validate()
			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, tc.field, cerr.Field)

			_, err = NewSimulation(config)
			assert.ErrorAs(t, err, &cerr)
		})
	}

	config := DefaultConfig()
	config.Simulation.Bottleneck = config.Simulation.PopulationSize
	assert.NoError(t, config.Validate())
}
