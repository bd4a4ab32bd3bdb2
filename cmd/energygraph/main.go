package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-energy/pkg/config"
	"github.com/dd0wney/cluso-energy/pkg/energy"
	"github.com/dd0wney/cluso-energy/pkg/gradient"
	"github.com/dd0wney/cluso-energy/pkg/logging"
	"github.com/dd0wney/cluso-energy/pkg/metrics"
	"github.com/dd0wney/cluso-energy/pkg/storage"
)

func main() {
	edgesFile := flag.String("edges", "", "Path to whitespace-separated edge list file")
	configFile := flag.String("config", "", "Path to analysis YAML config (optional)")
	directed := flag.Bool("directed", false, "Treat the edge list as directed")
	topN := flag.Int("top", 10, "Number of top-ranked nodes to print")
	flag.Parse()

	if *edgesFile == "" {
		fmt.Println("Usage: energygraph --edges graph.txt [--config analysis.yaml] [--directed] [--top 10]")
		fmt.Println()
		fmt.Println("Edge list format: one 'from to' pair of numeric node IDs per line,")
		fmt.Println("blank lines and lines starting with # ignored.")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)

	runID := uuid.New().String()
	logger.Info("analysis started", logging.String("run_id", runID))

	fmt.Printf("⚡ Energy Gradient Analysis\n")
	fmt.Printf("==========================\n\n")
	fmt.Printf("Run ID:  %s\n", runID)
	fmt.Printf("Methods: %s\n", strings.Join(cfg.Methods, ", "))
	fmt.Printf("Radius:  %d\n\n", cfg.Radius)

	fmt.Printf("📂 Loading edge list %s...\n", *edgesFile)
	g, err := loadEdgeList(*edgesFile, *directed)
	if err != nil {
		log.Fatalf("Failed to load edge list: %v", err)
	}
	fmt.Printf("✅ Loaded %d nodes, %d edges\n\n", g.NumNodes(), g.NumEdges())

	reg := metrics.DefaultRegistry()
	reg.GraphNodes.Set(float64(g.NumNodes()))
	reg.GraphEdges.Set(float64(g.NumEdges()))

	methods := make([]energy.Name, len(cfg.Methods))
	for i, m := range cfg.Methods {
		methods[i] = energy.Name(m)
	}

	// Energies and gradients
	fmt.Printf("📊 Computing energies and gradients...\n")
	start := time.Now()
	augmented, err := gradient.WithEnergyData(gradient.Wrap(g), methods, gradient.EnergyDataOptions{
		Radius: cfg.Radius,
	})
	if err != nil {
		log.Fatalf("Energy computation failed: %v", err)
	}
	fmt.Printf("✅ Attached %d methods in %v\n\n", len(methods), time.Since(start))

	// Gradient centrality per method
	opts := gradient.CentralityOptions{
		Radius:        cfg.Radius,
		Alpha:         cfg.Centrality.Alpha,
		MaxIterations: cfg.Centrality.MaxIterations,
		Tolerance:     cfg.Centrality.Tolerance,
	}
	activation := gradient.ActivationName(cfg.Activation)

	for _, method := range methods {
		fmt.Printf("🏆 %s gradient centrality (%s)\n", method, cfg.Activation)

		result, err := gradient.EnergyGradientCentrality(g, method, activation, opts)
		if err != nil {
			log.Fatalf("Centrality failed for %s: %v", method, err)
		}
		if !result.Converged {
			fmt.Printf("⚠️  Did not converge within %d iterations\n\n", opts.MaxIterations)
			continue
		}

		for i, node := range topNodes(result.Scores, *topN) {
			nodeEnergy, err := augmented.PathEnergy([]uint64{node.id}, method)
			if err != nil {
				log.Fatalf("Energy lookup failed for node %d: %v", node.id, err)
			}
			fmt.Printf("  %2d. node %-8d score %.6f  energy %.4f\n", i+1, node.id, node.score, nodeEnergy)
		}
		fmt.Printf("  (converged in %d iterations)\n\n", result.Iterations)
	}

	// Community detection on the first method
	if cfg.Communities > 0 && len(methods) > 0 {
		fmt.Printf("🔀 Splitting communities by %s gradient...\n", methods[0])
		splitter, err := gradient.SplitByGradient(g, methods[0])
		if err != nil {
			log.Fatalf("Community split failed: %v", err)
		}
		for i := 0; i < cfg.Communities; i++ {
			partition, err := splitter.Next()
			if err != nil {
				log.Fatalf("Community split failed: %v", err)
			}
			if partition == nil {
				fmt.Printf("  (graph fully split after %d partitions)\n", i)
				break
			}
			fmt.Printf("  Partition %d: %d communities, sizes %v\n",
				i+1, len(partition), communitySizes(partition))
		}
		fmt.Println()
	}

	logger.Info("analysis finished", logging.String("run_id", runID))
	fmt.Printf("✅ Done\n")
}

type rankedNode struct {
	id    uint64
	score float64
}

func topNodes(scores map[uint64]float64, n int) []rankedNode {
	ranked := make([]rankedNode, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, rankedNode{id: id, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func communitySizes(partition [][]uint64) []int {
	sizes := make([]int, len(partition))
	for i, community := range partition {
		sizes[i] = len(community)
	}
	return sizes
}

// loadEdgeList reads a whitespace-separated edge list: one "from to" pair
// of numeric node IDs per line. Blank lines and # comments are skipped.
func loadEdgeList(path string, directed bool) (*storage.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var g *storage.Graph
	if directed {
		g = storage.NewDirectedGraph()
	} else {
		g = storage.NewGraph()
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected 'from to', got %q", lineNo, line)
		}
		from, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad node ID %q: %w", lineNo, parts[0], err)
		}
		to, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad node ID %q: %w", lineNo, parts[1], err)
		}

		if _, err := g.AddEdge(from, to); err != nil {
			logging.Warn("skipping edge", logging.Uint64("from", from),
				logging.Uint64("to", to), logging.Error(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
