// Package config loads YAML analysis configuration for the command-line
// tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-energy/pkg/validation"
)

// AnalysisConfig describes a full analysis run
type AnalysisConfig struct {
	// Methods lists the energy methods to run
	Methods []string `yaml:"methods" validate:"required,min=1"`

	// Activation selects the gradient activation for centrality
	Activation string `yaml:"activation" validate:"oneof=relu elu"`

	// Radius of the egocentric network
	Radius int `yaml:"radius" validate:"gte=1"`

	// Centrality holds rank propagation parameters
	Centrality CentralityConfig `yaml:"centrality"`

	// Communities is the number of community partitions to report; 0
	// disables community detection
	Communities int `yaml:"communities" validate:"gte=0"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// CentralityConfig holds the rank propagation parameters
type CentralityConfig struct {
	Alpha         float64 `yaml:"alpha" validate:"gt=0,lt=1"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
}

// Default returns the default analysis configuration
func Default() *AnalysisConfig {
	return &AnalysisConfig{
		Methods:    []string{"randic"},
		Activation: "relu",
		Radius:     1,
		Centrality: CentralityConfig{
			Alpha:         0.85,
			MaxIterations: 100,
			Tolerance:     1e-6,
		},
		Communities: 0,
		LogLevel:    "info",
	}
}

// Load reads and validates an analysis configuration file. Fields absent
// from the file keep their defaults.
func Load(path string) (*AnalysisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration bytes
func Parse(data []byte) (*AnalysisConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validation.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
