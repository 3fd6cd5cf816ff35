package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/server"
)

var (
	dataDir string
	verbose bool

	// algorithm input
	values     string
	target     int
	startNode  int
	endNode    int
	nodes      int
	edges      string
	edgeProb   float64
	limit      int
	inner      int
	pattern    string
	seed       int64
	delayMs    int
	configFile string
	preset     string

	maxSteps int
	outPath  string
	metric   string
	format   string

	capacity int
	frameMs  int

	addr string

	sweepMin    int
	sweepMax    int
	sweepPoints int
	sweepSeed   int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "algoviz",
		Short:        "step-by-step algorithm and data structure visualizer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, verbose)))
		},
		// no subcommand plays the default algorithm
		RunE: playAlgorithm,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".algoviz", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	addInputFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play an algorithm interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playAlgorithm,
	}
	addInputFlags(playCmd)

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and save its trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAlgorithm,
	}
	addInputFlags(runCmd)
	runCmd.Flags().IntVar(&maxSteps, "max-steps", server.DefaultMaxSteps, "abort after this many steps")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [category]",
		Short: "list presets, optionally for one category",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved traces",
		RunE:  listTraces,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [trace_id]",
		Short: "plot a counter of a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().StringVar(&metric, "metric", "comparisons", "comparisons, swaps, writes, probes or frontier")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trace_id]",
		Short: "export a trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [trace_id]",
		Short: "export a trace's steps to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	structureCmd := &cobra.Command{
		Use:   "structure [kind]",
		Short: "drive a data structure with typed commands",
		Args:  cobra.ExactArgs(1),
		RunE:  driveStructure,
	}
	structureCmd.Flags().IntVar(&capacity, "capacity", config.DefaultCapacity, "capacity for bounded structures")
	structureCmd.Flags().IntVar(&frameMs, "frame", 300, "highlight frame time in milliseconds")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted data structure scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	renderCmd := &cobra.Command{
		Use:   "render [algorithm]",
		Short: "render the final graph or tree as DOT or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderAlgorithm,
	}
	addInputFlags(renderCmd)
	renderCmd.Flags().StringVar(&format, "format", "dot", "dot or svg")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve step traces over HTTP",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	sweepCmd := newSweepCmd()

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm1] [algorithm2] ...",
		Short: "compare algorithms on the same input",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareAlgorithms,
	}
	addInputFlags(compareCmd)
	compareCmd.Flags().IntVar(&maxSteps, "max-steps", server.DefaultMaxSteps, "abort a run after this many steps")

	rootCmd.AddCommand(playCmd, runCmd, algorithmsCmd, presetsCmd, listCmd, plotCmd,
		exportJSONCmd, exportCSVCmd, structureCmd, scenarioCmd, renderCmd, serveCmd, sweepCmd, compareCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newSweepCmd keeps its own seed; the input flags of other commands reset
// the shared one to zero when they register.
func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "count operations over growing input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	cmd.Flags().IntVar(&sweepMin, "min", 4, "smallest input size")
	cmd.Flags().IntVar(&sweepMax, "max", 64, "largest input size")
	cmd.Flags().IntVar(&sweepPoints, "points", 8, "number of sizes")
	cmd.Flags().Int64Var(&sweepSeed, "seed", time.Now().UnixNano(), "random seed")
	return cmd
}

func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&values, "values", "", "comma separated input values (random when empty)")
	f.IntVar(&target, "target", 0, "search or tree target")
	f.IntVar(&startNode, "start", 0, "graph start node")
	f.IntVar(&endNode, "end", 0, "shortest path end node")
	f.IntVar(&nodes, "nodes", 0, "graph node count")
	f.StringVar(&edges, "edges", "", "graph edges, e.g. 0-1,1-2")
	f.Float64Var(&edgeProb, "edge-prob", 0, "random graph edge probability")
	f.IntVar(&limit, "limit", 0, "loop limit or pattern rows")
	f.IntVar(&inner, "inner", 0, "inner loop limit")
	f.StringVar(&pattern, "pattern", "", "star pattern: triangle, square, inverted, number")
	f.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	f.IntVar(&delayMs, "delay", config.DefaultDelayMs, "delay between steps in milliseconds")
	f.StringVar(&configFile, "config", "", "config file (yaml or toml)")
	f.StringVar(&preset, "preset", "", "use a preset")
}
