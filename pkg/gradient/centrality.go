package gradient

import (
	"errors"
	"fmt"
	"math"

	"github.com/dd0wney/cluso-energy/pkg/algorithms"
	"github.com/dd0wney/cluso-energy/pkg/energy"
	"github.com/dd0wney/cluso-energy/pkg/logging"
	"github.com/dd0wney/cluso-energy/pkg/metrics"
	"github.com/dd0wney/cluso-energy/pkg/storage"
	"github.com/dd0wney/cluso-energy/pkg/validation"
)

// ActivationName identifies a gradient activation function
type ActivationName string

// Built-in activation names
const (
	ReLU ActivationName = "relu"
	ELU  ActivationName = "elu"
)

// ErrUnknownActivation is returned for unregistered activation names
var ErrUnknownActivation = errors.New("unknown activation")

// Activation maps a gradient to a non-negative edge weight. Rank
// propagation requires non-negative weights, so every activation clamps or
// folds the negative range.
type Activation func(float64) float64

var activations = map[ActivationName]Activation{
	ReLU: func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	},
	ELU: func(x float64) float64 {
		if x >= 0 {
			return x
		}
		return math.Log10(math.Abs(x) + 1)
	},
}

// ResolveActivation returns the activation registered under name
func ResolveActivation(name ActivationName) (Activation, error) {
	act, ok := activations[name]
	if !ok {
		return nil, fmt.Errorf("resolve activation %q: %w", string(name), ErrUnknownActivation)
	}
	return act, nil
}

// gradientWeightKey is the transient edge attribute the centrality engine
// stores activated gradients under.
const gradientWeightKey = "gradient"

// CentralityOptions configures EnergyGradientCentrality. The rank
// propagation parameters pass through to algorithms.PageRank unchanged.
type CentralityOptions struct {
	Radius        int     `validate:"gte=1"`
	Alpha         float64 `validate:"gt=0,lt=1"`
	MaxIterations int     `validate:"gte=1"`
	Tolerance     float64 `validate:"gt=0"`

	Personalization map[uint64]float64
	NStart          map[uint64]float64
	Dangling        map[uint64]float64
}

// DefaultCentralityOptions returns the default centrality configuration
func DefaultCentralityOptions() CentralityOptions {
	return CentralityOptions{
		Radius:        1,
		Alpha:         0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// CentralityResult carries either converged scores or an explicit
// non-convergence marker. Scores is nil when Converged is false; callers
// must treat that as "centrality unavailable", not as zero scores.
type CentralityResult struct {
	Scores     map[uint64]float64
	Iterations int
	Converged  bool
}

// EnergyGradientCentrality ranks nodes by propagating scores along
// activated energy gradients. The graph is forced to directed form and
// augmented on a private copy; the input is never modified. When rank
// propagation fails to converge within the iteration cap the failure is
// logged as a warning and reported through the result marker instead of
// an error.
func EnergyGradientCentrality(g *storage.Graph, method energy.Name, activation ActivationName, opts CentralityOptions) (*CentralityResult, error) {
	m, err := energy.Resolve(method)
	if err != nil {
		return nil, err
	}
	act, err := ResolveActivation(activation)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(&opts); err != nil {
		return nil, fmt.Errorf("centrality options: %w", err)
	}

	working := Wrap(g.ToDirected())

	weights := func(graph *storage.Graph) (map[EdgeKey]float64, error) {
		grads, err := Gradients(graph, m, false, opts.Radius)
		if err != nil {
			return nil, err
		}
		for key, value := range grads {
			grads[key] = act(value)
		}
		return grads, nil
	}

	working, err = Augment(working, Augmentation{
		Edges: map[string]EdgeAugmentor{gradientWeightKey: weights},
	}, Options{})
	if err != nil {
		return nil, err
	}

	result, err := algorithms.PageRank(working.Graph, algorithms.PageRankOptions{
		WeightKey:       gradientWeightKey,
		DampingFactor:   opts.Alpha,
		MaxIterations:   opts.MaxIterations,
		Tolerance:       opts.Tolerance,
		Personalization: opts.Personalization,
		NStart:          opts.NStart,
		Dangling:        opts.Dangling,
	})
	if err != nil {
		return nil, err
	}

	metrics.DefaultRegistry().PageRankIterations.Observe(float64(result.Iterations))

	if !result.Converged {
		logging.Warn("energy gradient centrality did not converge",
			logging.Method(string(method)),
			logging.Int("max_iterations", opts.MaxIterations))
		return &CentralityResult{Iterations: result.Iterations}, nil
	}

	return &CentralityResult{
		Scores:     result.Scores,
		Iterations: result.Iterations,
		Converged:  true,
	}, nil
}

// WithGradientCentralityData computes gradient centrality for every
// method and stores the scores as node attributes under
// "<method>_gradient_centrality". A method whose propagation does not
// converge contributes nothing and stays unrecorded, so it is retried on
// the next call.
func WithGradientCentralityData(a *AugmentedGraph, methods []energy.Name, activation ActivationName, opts CentralityOptions, copyGraph, clear bool) (*AugmentedGraph, error) {
	for _, name := range methods {
		if _, err := energy.Resolve(name); err != nil {
			return nil, err
		}
	}
	if _, err := ResolveActivation(activation); err != nil {
		return nil, err
	}

	aug := Augmentation{Nodes: make(map[string]NodeAugmentor, len(methods))}
	for _, name := range methods {
		name := name
		aug.Nodes[CentralityKey(name)] = func(g *storage.Graph) (map[uint64]float64, error) {
			result, err := EnergyGradientCentrality(g, name, activation, opts)
			if err != nil {
				return nil, err
			}
			if !result.Converged {
				return nil, nil
			}
			return result.Scores, nil
		}
	}

	return Augment(a, aug, Options{Copy: copyGraph, Clear: clear})
}
