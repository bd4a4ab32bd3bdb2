package algorithms

import (
	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// MostValuableEdge selects the next edge to remove from the working graph.
// It is called with at least one edge present.
type MostValuableEdge func(g *storage.Graph) (from, to uint64, err error)

// Splitter produces a lazy sequence of increasingly fine partitions by
// repeatedly removing the most valuable edge (Girvan–Newman scheme). It
// operates on a private clone; the source graph is never touched. A
// Splitter is single-use: build a new one to restart from scratch.
type Splitter struct {
	working    *storage.Graph
	selector   MostValuableEdge
	components int
}

// NewSplitter creates a splitter over a clone of g
func NewSplitter(g *storage.Graph, selector MostValuableEdge) *Splitter {
	working := g.Clone()
	return &Splitter{
		working:    working,
		selector:   selector,
		components: len(ConnectedComponents(working)),
	}
}

// Next removes most-valuable edges until the component count grows and
// returns the new partition. It returns (nil, nil) once no edges remain.
func (s *Splitter) Next() ([][]uint64, error) {
	if s.working.NumEdges() == 0 {
		return nil, nil
	}

	for s.working.NumEdges() > 0 {
		from, to, err := s.selector(s.working)
		if err != nil {
			return nil, err
		}
		if err := s.working.RemoveEdge(from, to); err != nil {
			return nil, err
		}

		components := ConnectedComponents(s.working)
		if len(components) > s.components {
			s.components = len(components)
			return components, nil
		}
	}

	// Every edge removed without a new component (self-loops only); the
	// final partition is still reported once.
	return ConnectedComponents(s.working), nil
}

// All drains the splitter, returning every remaining partition
func (s *Splitter) All() ([][][]uint64, error) {
	partitions := make([][][]uint64, 0)
	for {
		partition, err := s.Next()
		if err != nil {
			return nil, err
		}
		if partition == nil {
			return partitions, nil
		}
		partitions = append(partitions, partition)
	}
}
