package ga

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Default parameters, matching the classic toy setup.
const (
	DefaultGenomeLength   = 16
	DefaultPopulationSize = 40
	DefaultBottleneck     = 20
	DefaultMaxGenerations = 10
)

// Config stores the configuration parameters for a simulation.
type Config struct {
	Simulation SimulationConfig
}

// SimulationConfig holds the parameters of the evolutionary run.
type SimulationConfig struct {
	GenomeLength   int    `ini:"genome_length"`   // bits per organism
	PopulationSize int    `ini:"population_size"` // must be even
	Bottleneck     int    `ini:"bottleneck"`      // organisms that mate each generation; even, <= population_size
	MaxGenerations int    `ini:"max_generations"`
	Seed           uint64 `ini:"seed"` // seeds the single random source of the run
}

// DefaultConfig returns the default parameters with a fixed seed of 1.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			GenomeLength:   DefaultGenomeLength,
			PopulationSize: DefaultPopulationSize,
			Bottleneck:     DefaultBottleneck,
			MaxGenerations: DefaultMaxGenerations,
			Seed:           1,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
// Missing size parameters fall back to the defaults. When no seed is given
// the run is seeded from the wall clock.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return parseConfig(cfg)
}

// LoadConfigBytes is like LoadConfig but reads the INI document from data.
func LoadConfigBytes(data []byte) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return parseConfig(cfg)
}

func parseConfig(cfg *ini.File) (*Config, error) {
	config := DefaultConfig()

	section := cfg.Section("Simulation")
	if err := section.MapTo(&config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to map [Simulation] section: %w", err)
	}
	if !section.HasKey("seed") {
		config.Simulation.Seed = uint64(time.Now().UnixNano())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the parameters and returns a *ConfigurationError for the
// first problem found.
func (c *Config) Validate() error {
	s := &c.Simulation
	switch {
	case s.PopulationSize <= 0:
		return &ConfigurationError{Field: "population_size", Value: s.PopulationSize, Reason: "must be positive"}
	case s.PopulationSize%2 != 0:
		return &ConfigurationError{Field: "population_size", Value: s.PopulationSize, Reason: "must be even"}
	case s.Bottleneck < 0:
		return &ConfigurationError{Field: "bottleneck", Value: s.Bottleneck, Reason: "cannot be negative"}
	case s.Bottleneck%2 != 0:
		return &ConfigurationError{Field: "bottleneck", Value: s.Bottleneck, Reason: "must be even"}
	case s.Bottleneck > s.PopulationSize:
		return &ConfigurationError{Field: "bottleneck", Value: s.Bottleneck, Reason: fmt.Sprintf("cannot exceed population_size %d", s.PopulationSize)}
	case s.GenomeLength <= 0:
		return &ConfigurationError{Field: "genome_length", Value: s.GenomeLength, Reason: "must be positive"}
	case s.MaxGenerations < 0:
		return &ConfigurationError{Field: "max_generations", Value: s.MaxGenerations, Reason: "cannot be negative"}
	}
	return nil
}
