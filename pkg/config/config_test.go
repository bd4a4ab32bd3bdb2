package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
methods: [laplacian, graph]
activation: elu
radius: 2
centrality:
  alpha: 0.9
  max_iterations: 50
  tolerance: 1.0e-8
communities: 3
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"laplacian", "graph"}, cfg.Methods)
	assert.Equal(t, "elu", cfg.Activation)
	assert.Equal(t, 2, cfg.Radius)
	assert.InDelta(t, 0.9, cfg.Centrality.Alpha, 1e-12)
	assert.Equal(t, 50, cfg.Centrality.MaxIterations)
	assert.Equal(t, 3, cfg.Communities)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("methods: [randic]\n"))
	require.NoError(t, err)

	assert.Equal(t, "relu", cfg.Activation)
	assert.Equal(t, 1, cfg.Radius)
	assert.InDelta(t, 0.85, cfg.Centrality.Alpha, 1e-12)
	assert.Equal(t, 100, cfg.Centrality.MaxIterations)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty methods":  "methods: []\n",
		"bad activation": "activation: sigmoid\n",
		"zero radius":    "radius: 0\n",
		"alpha too big":  "centrality:\n  alpha: 1.5\n",
		"bad log level":  "log_level: verbose\n",
		"malformed yaml": "methods: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("methods: [randic]\ncommunities: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Communities)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	cfg, err := Parse([]byte("{}\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
