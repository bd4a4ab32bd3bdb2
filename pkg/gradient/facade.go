package gradient

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-energy/pkg/energy"
	"github.com/dd0wney/cluso-energy/pkg/storage"
	"github.com/dd0wney/cluso-energy/pkg/validation"
)

// ErrUnsupportedMethod is returned by bound queries when the method's
// energy data was never attached to the graph.
var ErrUnsupportedMethod = errors.New("method not supported on this graph")

// Attribute key formats. These exact strings are the persisted-state
// contract any downstream consumer of an augmented graph relies on.

// EnergyKey returns the node attribute key holding a method's energy
func EnergyKey(method energy.Name) string {
	return string(method) + "_energy"
}

// GradientKey returns the edge attribute key holding a method's gradient
func GradientKey(method energy.Name) string {
	return string(method) + "_gradient"
}

// CentralityKey returns the node attribute key holding a method's
// gradient centrality
func CentralityKey(method energy.Name) string {
	return string(method) + "_gradient_centrality"
}

// EnergyDataOptions configures WithEnergyData
type EnergyDataOptions struct {
	Radius int `validate:"gte=1"` // radius of the egocentric network
	Copy   bool
	Clear  bool
}

// DefaultEnergyDataOptions returns the default facade configuration
func DefaultEnergyDataOptions() EnergyDataOptions {
	return EnergyDataOptions{Radius: 1}
}

// WithEnergyData computes energies and gradients for every method and
// stores them on the graph: energies as node attributes under
// "<method>_energy", gradients as edge attributes under
// "<method>_gradient". Unknown method names fail before any computation.
// Methods already applied to the graph are skipped entirely; each method
// is marked supported for the bound queries afterwards.
func WithEnergyData(a *AugmentedGraph, methods []energy.Name, opts EnergyDataOptions) (*AugmentedGraph, error) {
	if err := validation.Validate(&opts); err != nil {
		return nil, fmt.Errorf("energy data options: %w", err)
	}

	resolved := make([]energy.Method, 0, len(methods))
	for _, name := range methods {
		m, err := energy.Resolve(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, m)
	}

	aug := Augmentation{
		Nodes: make(map[string]NodeAugmentor, len(resolved)),
		Edges: make(map[string]EdgeAugmentor, len(resolved)),
	}
	for _, m := range resolved {
		m := m
		aug.Nodes[EnergyKey(m.Name())] = func(g *storage.Graph) (map[uint64]float64, error) {
			return computeEnergies(g, m, opts.Radius)
		}
		aug.Edges[GradientKey(m.Name())] = func(g *storage.Graph) (map[EdgeKey]float64, error) {
			return Gradients(g, m, false, opts.Radius)
		}
	}

	result, err := Augment(a, aug, Options{Copy: opts.Copy, Clear: opts.Clear})
	if err != nil {
		return nil, err
	}

	for _, m := range resolved {
		result.supported[m.Name()] = true
	}
	return result, nil
}

// GradientBetween returns the energy gradient from u to v for a method:
// energy(v) − energy(u). The method must have been attached via
// WithEnergyData; missing energy attributes propagate as lookup failures.
func (a *AugmentedGraph) GradientBetween(u, v uint64, method energy.Name) (float64, error) {
	if !a.supported[method] {
		return 0, fmt.Errorf("gradient between %d and %d: method %q: %w", u, v, string(method), ErrUnsupportedMethod)
	}

	key := EnergyKey(method)
	sourceEnergy, err := a.nodeEnergy(u, key)
	if err != nil {
		return 0, err
	}
	targetEnergy, err := a.nodeEnergy(v, key)
	if err != nil {
		return 0, err
	}
	return targetEnergy - sourceEnergy, nil
}

// PathEnergy returns the cumulative energy of the nodes along a path for
// a method. Every node on the path must carry the method's energy
// attribute.
func (a *AugmentedGraph) PathEnergy(path []uint64, method energy.Name) (float64, error) {
	key := EnergyKey(method)
	sum := 0.0
	for _, id := range path {
		e, err := a.nodeEnergy(id, key)
		if err != nil {
			return 0, err
		}
		sum += e
	}
	return sum, nil
}

func (a *AugmentedGraph) nodeEnergy(id uint64, key string) (float64, error) {
	value, err := a.NodeProperty(id, key)
	if err != nil {
		return 0, err
	}
	e, err := value.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("node %d attribute %q: %w", id, key, err)
	}
	return e, nil
}
