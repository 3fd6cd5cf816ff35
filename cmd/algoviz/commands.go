package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/render"
	"github.com/san-kum/algoviz/internal/scenario"
	"github.com/san-kum/algoviz/internal/server"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/storage"
	"github.com/san-kum/algoviz/internal/structures"
	"github.com/san-kum/algoviz/internal/viz"
)

// resolveConfig layers defaults, a preset, a config file and finally any
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, args []string, reg *registry.Registry) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if preset != "" {
		p, err := findPreset(reg, cfg.Algorithm, len(args) > 0, preset)
		if err != nil {
			return nil, err
		}
		cfg = p
		if len(args) > 0 {
			cfg.Algorithm = args[0]
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Algorithm = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("values") {
		v, err := parseValues(values)
		if err != nil {
			return nil, err
		}
		cfg.Values = v
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("start") {
		cfg.Start = startNode
	}
	if flags.Changed("end") {
		end := endNode
		cfg.End = &end
	}
	if flags.Changed("nodes") {
		cfg.Nodes = nodes
	}
	if flags.Changed("edges") {
		cfg.Edges = edges
	}
	if flags.Changed("edge-prob") {
		cfg.EdgeProb = edgeProb
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("inner") {
		cfg.Inner = inner
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

// findPreset looks in the algorithm's category when one was named, and in
// every category otherwise.
func findPreset(reg *registry.Registry, algorithm string, named bool, name string) (*config.Config, error) {
	if named {
		a, err := reg.Get(algorithm)
		if err != nil {
			return nil, err
		}
		category := string(a.Category)
		if p := config.GetPreset(category, name); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets(category))
	}

	categories := make([]string, 0, len(config.Presets))
	for c := range config.Presets {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	for _, c := range categories {
		if p := config.GetPreset(c, name); p != nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown preset: %s", name)
}

func parseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	reg := registry.NewRegistry()
	cfg, err := resolveConfig(cmd, args, reg)
	if err != nil {
		return err
	}
	a, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	in := cfg.Input()
	// bad input should fail before the screen is taken over
	if _, err := a.New(in); err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	factory := func() step.Producer {
		p, _ := a.New(in)
		return p
	}

	loggerFromContext(cmd.Context()).Debug("playing", "algorithm", a.Name, "seed", cfg.Seed, "delay_ms", cfg.DelayMs)
	m := viz.NewPlayModel(a.Name, string(a.Category), factory, time.Duration(cfg.DelayMs)*time.Millisecond)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	reg := registry.NewRegistry()
	cfg, err := resolveConfig(cmd, args, reg)
	if err != nil {
		return err
	}
	a, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return err
	}
	in := cfg.Input()
	p, err := reg.Producer(a.Name, in)
	if err != nil {
		return err
	}

	d := playback.New().WithLogger(logger)
	for _, m := range metrics.Defaults() {
		d.AddMetric(m)
	}
	d.AddObserver(playback.ObserverFunc(func(s step.Step) {
		logger.Debug("step", "index", s.Index, "phase", s.Phase, "msg", s.Message)
	}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	prog := newProgress(logger)
	result, err := d.Run(ctx, p, playback.Config{MaxSteps: maxSteps, Record: true})
	if err != nil && (result == nil || !result.Canceled) {
		return err
	}
	prog.done("run finished", "algorithm", a.Name, "steps", result.StepsTaken)

	input := cfg.Values
	if len(input) == 0 && (a.Category == registry.Sorting || a.Category == registry.Search) {
		input = registry.RandomValues(cfg.Seed)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	traceID, err := st.Save(a.Name, input, cfg.Target, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("trace id: %s\n", traceID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if result.Canceled {
		fmt.Println("canceled")
	}
	fmt.Printf("final: %s\n", result.Final.Message)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("  %s: %g\n", name, result.Metrics[name])
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tDESCRIPTION")
	for _, a := range registry.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.Category, a.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		presets := config.ListPresets(args[0])
		if len(presets) == 0 {
			fmt.Printf("no presets for category: %s\n", args[0])
			return nil
		}
		fmt.Printf("presets for %s:\n", args[0])
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tPRESET\tALGORITHM")
	categories := make([]string, 0, len(config.Presets))
	for c := range config.Presets {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	for _, c := range categories {
		for _, name := range config.ListPresets(c) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c, name, config.Presets[c][name].Algorithm)
		}
	}
	return w.Flush()
}

func listTraces(cmd *cobra.Command, args []string) error {
	traces, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(traces) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSTEPS\tRESULT")
	for _, t := range traces {
		result := strconv.Itoa(t.Result)
		if t.Canceled {
			result = "canceled"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			t.ID,
			t.Algorithm,
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Steps,
			result,
		)
	}
	return w.Flush()
}

func plotTrace(cmd *cobra.Command, args []string) error {
	traceID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(traceID)
	if err != nil {
		return err
	}
	records, err := st.LoadSteps(traceID)
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return fmt.Errorf("not enough steps to plot")
	}

	pick, err := metricField(metric)
	if err != nil {
		return err
	}
	data := make([]float64, len(records))
	for i, r := range records {
		data[i] = float64(pick(r))
	}

	fmt.Printf("trace: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("steps: %d\n\n", len(records))
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(metric+" vs step"),
	))
	return nil
}

func metricField(name string) (func(storage.StepRecord) int, error) {
	switch name {
	case "comparisons":
		return func(r storage.StepRecord) int { return r.Comparisons }, nil
	case "swaps":
		return func(r storage.StepRecord) int { return r.Swaps }, nil
	case "writes":
		return func(r storage.StepRecord) int { return r.Writes }, nil
	case "probes":
		return func(r storage.StepRecord) int { return r.Probes }, nil
	case "frontier":
		return func(r storage.StepRecord) int { return r.Frontier }, nil
	}
	return nil, fmt.Errorf("unknown metric: %s", name)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	if err := storage.New(dataDir).ExportJSON(args[0], outPath, os.Stdout); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported to %s\n", outPath)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	if err := storage.New(dataDir).ExportCSV(args[0], outPath, os.Stdout); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported to %s\n", outPath)
	}
	return nil
}

func driveStructure(cmd *cobra.Command, args []string) error {
	st, err := structures.New(structures.Kind(args[0]), capacity)
	if err != nil {
		if errors.Is(err, structures.ErrUnknownKind) {
			return fmt.Errorf("%w (available: %v)", err, structures.Kinds())
		}
		return err
	}
	m := viz.NewStructureModel(st, time.Duration(frameMs)*time.Millisecond)
	_, err = tea.NewProgram(m).Run()
	return err
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.LoadScenario(args[0])
	if err != nil {
		return err
	}
	report, err := scenario.Run(sc)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s (%s)\n", report.Name, report.Kind)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCOMMAND\tSTEPS\tRESULT")
	for i, r := range report.Results {
		result := "ok"
		if r.Err != "" {
			result = r.Err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i+1, r.Command, r.Steps, result)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n := len(report.Results); n > 0 {
		fmt.Println()
		fmt.Println(viz.RenderStructure(report.Results[n-1].Snapshot, structures.Kind(report.Kind)))
	}
	fmt.Printf("\n%d of %d commands failed\n", report.Failed, len(report.Results))
	return nil
}

func renderAlgorithm(cmd *cobra.Command, args []string) error {
	reg := registry.NewRegistry()
	cfg, err := resolveConfig(cmd, args, reg)
	if err != nil {
		return err
	}
	p, err := reg.Producer(cfg.Algorithm, cfg.Input())
	if err != nil {
		return err
	}
	final, ok := step.Final(p)
	if !ok {
		return fmt.Errorf("%s produced no steps", cfg.Algorithm)
	}
	dot, err := render.DOT(final)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Algorithm, err)
	}

	out := []byte(dot)
	switch format {
	case "dot":
	case "svg":
		out, err = render.RenderSVG(cmd.Context(), dot)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("rendered", "file", outPath, "format", format)
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	srv := server.New(registry.NewRegistry(), loggerFromContext(cmd.Context()))
	return srv.ListenAndServe(ctx, addr)
}

func runSweep(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	results, err := scenario.RunSweep(cmd.Context(), &scenario.Sweep{
		Algorithm: args[0],
		MinSize:   sweepMin,
		MaxSize:   sweepMax,
		Points:    sweepPoints,
		Seed:      sweepSeed,
	}, registry.NewRegistry())
	if err != nil {
		return err
	}
	prog.done("sweep finished", "algorithm", args[0], "points", len(results))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\tPROBES")
	data := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n", r.Size, r.Steps, r.Comparisons, r.Swaps, r.Writes, r.Probes)
		data[i] = float64(r.Steps)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(10), asciigraph.Caption("steps vs input size")))
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	reg := registry.NewRegistry()
	cfg, err := resolveConfig(cmd, args[:1], reg)
	if err != nil {
		return err
	}
	in := cfg.Input()
	if len(in.Values) == 0 {
		in.Values = registry.RandomValues(cfg.Seed)
	}

	results, err := scenario.Compare(cmd.Context(), reg, args, in, maxSteps)
	if err != nil {
		return err
	}

	fmt.Printf("input: %v\n\n", in.Values)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\tPROBES\tRESULT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\t%g\t%s\n",
			r.Algorithm,
			r.Steps,
			r.Metrics["comparisons"],
			r.Metrics["swaps"],
			r.Metrics["writes"],
			r.Metrics["probes"],
			r.Final.Message,
		)
	}
	return w.Flush()
}
