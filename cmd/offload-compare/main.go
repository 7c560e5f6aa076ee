package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/dd0wney/cluso-offload/pkg/logging"
	"github.com/dd0wney/cluso-offload/pkg/metrics"
	"github.com/dd0wney/cluso-offload/pkg/netgen"
	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/offload"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	bestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	infeasibleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)

type row struct {
	strategy string
	result   offload.Result
	elapsed  time.Duration
	err      error
}

func main() {
	networkFile := flag.String("network", "", "Scenario YAML file (omit to generate a random one)")
	nodes := flag.Int("nodes", 12, "Number of nodes for random generation")
	edges := flag.Int("edges", 30, "Number of edges for random generation")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for generation")
	runs := flag.Int("runs", 1, "Number of scenarios to evaluate")
	flag.Parse()

	logger := logging.NewDefaultLogger()
	runID := uuid.New().String()
	reg := metrics.DefaultRegistry()

	fmt.Printf("🔥 Cluso Offload - Strategy Comparison\n")
	fmt.Printf("======================================\n\n")
	fmt.Printf("Configuration:\n")
	if *networkFile != "" {
		fmt.Printf("  Network: %s\n", *networkFile)
	} else {
		fmt.Printf("  Nodes: %d\n", *nodes)
		fmt.Printf("  Edges: %d\n", *edges)
		fmt.Printf("  Seed:  %d\n", *seed)
	}
	fmt.Printf("  Runs:  %d\n\n", *runs)

	logger.Info("comparison started",
		logging.RunID(runID),
		logging.Int("runs", *runs),
	)

	for i := 0; i < *runs; i++ {
		n, req, err := loadScenario(*networkFile, *seed+int64(i), *nodes, *edges)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}

		logger.Info("scenario ready",
			logging.RunID(runID),
			logging.Int("run", i),
			logging.Flow(req.Source, req.Destination),
			logging.Int("nodes", n.NodeCount()),
			logging.Int("edges", n.EdgeCount()),
			logging.Count(len(n.ComputeNodes())),
		)

		recordExpansions(n, req, reg, logger, runID)

		rows := make([]row, 0, 4)
		for _, s := range offload.All() {
			start := time.Now()
			res, err := s.Evaluate(n, req)
			elapsed := time.Since(start)

			status := "ok"
			switch {
			case err != nil:
				status = "error"
				logger.Error("strategy failed",
					logging.RunID(runID),
					logging.Strategy(s.Name()),
					logging.Error(err),
				)
			case !res.Feasible():
				status = "infeasible"
				logger.Warn("no feasible assignment",
					logging.RunID(runID),
					logging.Strategy(s.Name()),
					logging.Flow(req.Source, req.Destination),
				)
				reg.NoPathTotal.WithLabelValues(s.Name()).Inc()
			default:
				logger.Info("strategy evaluated",
					logging.RunID(runID),
					logging.Strategy(s.Name()),
					logging.ComputeNode(res.Node),
					logging.Delay(res.Delay),
					logging.Latency(elapsed),
				)
				reg.ObserveResult(s.Name(), res.Delay, len(res.Path)-1)
			}
			reg.ObserveEvaluation(s.Name(), status, elapsed.Seconds())

			rows = append(rows, row{strategy: s.Name(), result: res, elapsed: elapsed, err: err})
		}

		printTable(req, rows)
	}

	logger.Info("comparison finished", logging.RunID(runID))
}

// loadScenario reads the scenario from the given file, or generates a
// random one when no file was named.
func loadScenario(path string, seed int64, nodes, edges int) (*network.Network, network.FlowRequest, error) {
	if path != "" {
		return netgen.Load(path)
	}
	f, err := netgen.Generate(rand.New(rand.NewSource(seed)), nodes, edges)
	if err != nil {
		return nil, network.FlowRequest{}, err
	}
	return f.Build()
}

// recordExpansions sizes both expansions up front so their growth shows up
// in the metrics even when the exact strategies later find no path.
func recordExpansions(n *network.Network, req network.FlowRequest, reg *metrics.Registry, logger logging.Logger, runID string) {
	for _, v := range []offload.Variant{offload.Layered, offload.Replica} {
		start := time.Now()
		eg, err := offload.Expander{Variant: v}.Expand(n, req)
		if err != nil {
			logger.Error("expansion failed",
				logging.RunID(runID),
				logging.String("variant", v.String()),
				logging.Error(err),
			)
			continue
		}
		reg.ObserveExpansion(v.String(), eg.NodeCount(), eg.EdgeCount(), time.Since(start).Seconds())
	}
}

func printTable(req network.FlowRequest, rows []row) {
	best := math.Inf(1)
	for _, r := range rows {
		if r.err == nil && r.result.Delay < best {
			best = r.result.Delay
		}
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Flow %s -> %s (size %.1f, gamma %.1f, omega %.1f)",
		req.Source, req.Destination, req.FlowSize, req.Gamma, req.Omega)))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-6s %-10s %-12s %-10s %s",
		"NAME", "NODE", "DELAY", "TIME", "PATH")))

	for _, r := range rows {
		if r.err != nil {
			fmt.Println(infeasibleStyle.Render(fmt.Sprintf("%-6s error: %v", r.strategy, r.err)))
			continue
		}
		line := fmt.Sprintf("%-6s %-10s %-12s %-10s %s",
			r.strategy,
			orDash(r.result.Node),
			formatDelay(r.result.Delay),
			r.elapsed.Round(time.Microsecond),
			strings.Join(r.result.Path, " -> "),
		)
		switch {
		case !r.result.Feasible():
			fmt.Println(infeasibleStyle.Render(line))
		case r.result.Delay == best:
			fmt.Println(bestStyle.Render(line))
		default:
			fmt.Println(rowStyle.Render(line))
		}
	}
	fmt.Println()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDelay(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.4f", d)
}
