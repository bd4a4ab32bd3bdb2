package energy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// Name identifies an energy computation method
type Name string

// Built-in method names
const (
	Randic            Name = "randic"
	Laplacian         Name = "laplacian"
	DirectedLaplacian Name = "directed_laplacian"
	GraphEnergy       Name = "graph"
)

// ErrUnknownMethod is returned when resolving a name with no registered method
var ErrUnknownMethod = errors.New("unknown energy method")

// Method computes a per-node energy value over a graph. Compute must return
// a value for every node of g; downstream gradient computation treats a
// missing node as a contract violation and does not extrapolate.
type Method interface {
	Name() Name
	Compute(g *storage.Graph, radius int) (map[uint64]float64, error)
}

var registry = make(map[Name]Method)

// Register adds a method to the registry. Registering an existing name
// replaces the previous method.
func Register(m Method) {
	registry[m.Name()] = m
}

// Resolve returns the method registered under name, or ErrUnknownMethod.
func Resolve(name Name) (Method, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("resolve method %q: %w", string(name), ErrUnknownMethod)
	}
	return m, nil
}

// Names returns the registered method names in sorted order
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func init() {
	Register(randicMethod{})
	Register(laplacianMethod{})
	Register(directedLaplacianMethod{})
	Register(graphEnergyMethod{})
}
