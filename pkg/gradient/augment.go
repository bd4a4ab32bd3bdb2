package gradient

import (
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-energy/pkg/energy"
	"github.com/dd0wney/cluso-energy/pkg/metrics"
	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// NodeAugmentor computes a named per-node value over a graph
type NodeAugmentor func(g *storage.Graph) (map[uint64]float64, error)

// EdgeAugmentor computes a named per-edge value over a graph
type EdgeAugmentor func(g *storage.Graph) (map[EdgeKey]float64, error)

// Augmentation names the node and edge augmentors to apply. The name is
// both the memoization key and the attribute key the values land under.
type Augmentation struct {
	Nodes map[string]NodeAugmentor
	Edges map[string]EdgeAugmentor
}

// Options controls how an augmentation is applied
type Options struct {
	// Copy operates on and returns a duplicate; the input is untouched.
	Copy bool
	// Clear first erases all node and edge attributes and resets the
	// applied records for both scopes.
	Clear bool
}

// AugmentedGraph owns a graph plus the record of augmentations already
// applied to it, one set per scope, and the set of energy methods whose
// data has been attached. It replaces the dynamic attribute injection the
// memoization scheme needs with an explicit composite type.
type AugmentedGraph struct {
	*storage.Graph

	nodeApplied map[string]bool
	edgeApplied map[string]bool
	supported   map[energy.Name]bool
}

// Wrap creates an AugmentedGraph around g with empty records
func Wrap(g *storage.Graph) *AugmentedGraph {
	return &AugmentedGraph{
		Graph:       g,
		nodeApplied: make(map[string]bool),
		edgeApplied: make(map[string]bool),
		supported:   make(map[energy.Name]bool),
	}
}

// clone deep-copies the graph and all records
func (a *AugmentedGraph) clone() *AugmentedGraph {
	copied := Wrap(a.Graph.Clone())
	for name := range a.nodeApplied {
		copied.nodeApplied[name] = true
	}
	for name := range a.edgeApplied {
		copied.edgeApplied[name] = true
	}
	for method := range a.supported {
		copied.supported[method] = true
	}
	return copied
}

// HasNodeAugmentation reports whether a node augmentation was applied
func (a *AugmentedGraph) HasNodeAugmentation(name string) bool {
	return a.nodeApplied[name]
}

// HasEdgeAugmentation reports whether an edge augmentation was applied
func (a *AugmentedGraph) HasEdgeAugmentation(name string) bool {
	return a.edgeApplied[name]
}

// Supports reports whether energy data for a method is attached
func (a *AugmentedGraph) Supports(method energy.Name) bool {
	return a.supported[method]
}

// SupportedMethods returns the attached methods in sorted order
func (a *AugmentedGraph) SupportedMethods() []energy.Name {
	methods := make([]energy.Name, 0, len(a.supported))
	for method := range a.supported {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	return methods
}

// Augment applies named computations to the graph, memoizing by name so
// repeated calls never recompute. Augmentors are applied in sorted name
// order. An augmentor returning an empty mapping writes nothing and is NOT
// recorded as applied; it runs again on the next call. Augmentor errors
// abort the whole call.
func Augment(a *AugmentedGraph, aug Augmentation, opts Options) (*AugmentedGraph, error) {
	if opts.Copy {
		a = a.clone()
	}
	if opts.Clear {
		a.ClearNodeProperties()
		a.ClearEdgeProperties()
		a.nodeApplied = make(map[string]bool)
		a.edgeApplied = make(map[string]bool)
		a.supported = make(map[energy.Name]bool)
	}

	reg := metrics.DefaultRegistry()

	for _, name := range sortedNames(aug.Nodes) {
		if a.nodeApplied[name] {
			reg.AugmentationsSkippedTotal.WithLabelValues("node").Inc()
			continue
		}
		result, err := aug.Nodes[name](a.Graph)
		if err != nil {
			return nil, fmt.Errorf("node augmentation %q: %w", name, err)
		}
		if len(result) == 0 {
			continue
		}
		for node, value := range result {
			if err := a.SetNodeProperty(node, name, storage.FloatValue(value)); err != nil {
				return nil, fmt.Errorf("node augmentation %q: %w", name, err)
			}
		}
		a.nodeApplied[name] = true
		reg.AugmentationsAppliedTotal.WithLabelValues("node").Inc()
	}

	for _, name := range sortedNames(aug.Edges) {
		if a.edgeApplied[name] {
			reg.AugmentationsSkippedTotal.WithLabelValues("edge").Inc()
			continue
		}
		result, err := aug.Edges[name](a.Graph)
		if err != nil {
			return nil, fmt.Errorf("edge augmentation %q: %w", name, err)
		}
		if len(result) == 0 {
			continue
		}
		for key, value := range result {
			if err := a.SetEdgeProperty(key.From, key.To, name, storage.FloatValue(value)); err != nil {
				return nil, fmt.Errorf("edge augmentation %q: %w", name, err)
			}
		}
		a.edgeApplied[name] = true
		reg.AugmentationsAppliedTotal.WithLabelValues("edge").Inc()
	}

	return a, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
