package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/ctlab/internal/analysis"
	"github.com/san-kum/ctlab/internal/config"
	"github.com/san-kum/ctlab/internal/controller"
	"github.com/san-kum/ctlab/internal/response"
	"github.com/san-kum/ctlab/internal/rlocus"
	"github.com/san-kum/ctlab/internal/storage"
	"github.com/san-kum/ctlab/internal/tfunc"
	"github.com/san-kum/ctlab/internal/tui"
	"github.com/san-kum/ctlab/internal/viz"
)

var (
	dataDir    string
	numStr     string
	denStr     string
	preset     string
	configFile string
	input      string
	horizon    float64
	samples    int
	gainMin    float64
	gainMax    float64
	gainPoints int
	ctrlKind   string
	kp         float64
	ki         float64
	kd         float64
	ctrlNum    string
	ctrlDen    string
	lagNumStr  string
	lagDenStr  string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ctlab",
		Short: "transfer-function analysis and control lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ctlab", "data directory")

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "routh-hurwitz stability analysis",
		RunE:  runStability,
	}

	polezeroCmd := &cobra.Command{
		Use:   "polezero",
		Short: "pole and zero locations",
		RunE:  runPoleZero,
	}

	responseCmd := &cobra.Command{
		Use:   "response",
		Short: "closed-loop time response",
		RunE:  runResponse,
	}
	responseCmd.Flags().StringVar(&input, "input", "step", "input signal: step, ramp, parabola")
	responseCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "simulation horizon")
	responseCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	responseCmd.Flags().BoolVar(&noSave, "no-save", false, "skip storing the run")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "full analysis: stability, poles/zeros, and time response",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&input, "input", "step", "input signal: step, ramp, parabola")
	analyzeCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "simulation horizon")
	analyzeCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	analyzeCmd.Flags().BoolVar(&noSave, "no-save", false, "skip storing the run")

	rlocusCmd := &cobra.Command{
		Use:   "rlocus",
		Short: "root locus over a gain sweep",
		RunE:  runRootLocus,
	}
	rlocusCmd.Flags().Float64Var(&gainMin, "gain-min", config.DefaultGainMin, "sweep start gain")
	rlocusCmd.Flags().Float64Var(&gainMax, "gain-max", config.DefaultGainMax, "sweep end gain")
	rlocusCmd.Flags().IntVar(&gainPoints, "gain-points", config.DefaultGainPoints, "sweep samples")

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "list the built-in example systems",
		RunE:  listExamples,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive gain explorer",
		RunE:  runExplore,
	}

	for _, c := range []*cobra.Command{rootCmd, stabilityCmd, polezeroCmd, responseCmd, analyzeCmd, rlocusCmd, exploreCmd} {
		addSystemFlags(c)
	}

	rootCmd.AddCommand(stabilityCmd, polezeroCmd, responseCmd, analyzeCmd, rlocusCmd, examplesCmd, listCmd, exportCSVCmd, exportJSONCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&numStr, "num", "", "numerator coefficients, e.g. \"1\" or \"[1 2]\"")
	cmd.Flags().StringVar(&denStr, "den", "", "denominator coefficients, e.g. \"1 2 1\"")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in example system")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&ctrlKind, "controller", "none", "controller: none, p, pi, pd, pid, lead, lag, leadlag")
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	cmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")
	cmd.Flags().StringVar(&ctrlNum, "ctrl-num", "", "compensator numerator (lead/lag)")
	cmd.Flags().StringVar(&ctrlDen, "ctrl-den", "", "compensator denominator (lead/lag)")
	cmd.Flags().StringVar(&lagNumStr, "lag-num", "", "lag numerator (leadlag)")
	cmd.Flags().StringVar(&lagDenStr, "lag-den", "", "lag denominator (leadlag)")
}

// resolveConfig applies precedence: defaults, then preset, then config
// file, then explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	name := "custom"

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Num = p.Num
		cfg.Den = p.Den
		cfg.Input = p.Input
		cfg.Horizon = p.Horizon
		cfg.Samples = p.Samples
		name = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		name = configFile
	}

	if cmd.Flags().Changed("num") {
		coeffs, err := tfunc.ParseCoefficients(numStr)
		if err != nil {
			return nil, "", err
		}
		cfg.Num = coeffs
		name = "custom"
	}
	if cmd.Flags().Changed("den") {
		coeffs, err := tfunc.ParseCoefficients(denStr)
		if err != nil {
			return nil, "", err
		}
		cfg.Den = coeffs
		name = "custom"
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = input
	}
	if cmd.Flags().Changed("time") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("gain-min") {
		cfg.Gains.Min = gainMin
	}
	if cmd.Flags().Changed("gain-max") {
		cfg.Gains.Max = gainMax
	}
	if cmd.Flags().Changed("gain-points") {
		cfg.Gains.Points = gainPoints
	}
	if cmd.Flags().Changed("controller") {
		cfg.Controller.Kind = ctrlKind
	}
	if cmd.Flags().Changed("kp") {
		cfg.Controller.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Controller.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Controller.Kd = kd
	}

	return cfg, name, nil
}

// buildOpenLoop assembles the plant, cascaded with the compensator when
// one is configured.
func buildOpenLoop(cfg *config.Config) (tfunc.TransferFunction, error) {
	plant, err := tfunc.New(cfg.Num, cfg.Den)
	if err != nil {
		return tfunc.TransferFunction{}, err
	}
	if cfg.Controller.Kind == "" || cfg.Controller.Kind == "none" {
		return plant, nil
	}

	kind, err := controller.ParseKind(cfg.Controller.Kind)
	if err != nil {
		return tfunc.TransferFunction{}, err
	}
	spec := controller.Spec{
		Kind: kind,
		Kp:   &cfg.Controller.Kp,
		Ki:   &cfg.Controller.Ki,
		Kd:   &cfg.Controller.Kd,
	}
	if ctrlNum != "" {
		if spec.Num, err = tfunc.ParseCoefficients(ctrlNum); err != nil {
			return tfunc.TransferFunction{}, err
		}
	}
	if ctrlDen != "" {
		if spec.Den, err = tfunc.ParseCoefficients(ctrlDen); err != nil {
			return tfunc.TransferFunction{}, err
		}
	}
	if lagNumStr != "" {
		if spec.LagNum, err = tfunc.ParseCoefficients(lagNumStr); err != nil {
			return tfunc.TransferFunction{}, err
		}
	}
	if lagDenStr != "" {
		if spec.LagDen, err = tfunc.ParseCoefficients(lagDenStr); err != nil {
			return tfunc.TransferFunction{}, err
		}
	}

	comp, err := controller.Synthesize(spec)
	if err != nil {
		return tfunc.TransferFunction{}, err
	}
	return tfunc.Series(comp, plant)
}

func printSystem(name string, g tfunc.TransferFunction) {
	fmt.Printf("system: %s\n", name)
	fmt.Printf("num: %v\n", []float64(g.Num()))
	fmt.Printf("den: %v\n\n", []float64(g.Den()))
}

func runStability(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := buildOpenLoop(cfg)
	if err != nil {
		return err
	}
	printSystem(name, g)

	res, err := analysis.AnalyzeStability(g.Den())
	if err != nil {
		return err
	}
	fmt.Print(viz.RouthTable(res))
	return nil
}

func runPoleZero(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := buildOpenLoop(cfg)
	if err != nil {
		return err
	}
	printSystem(name, g)

	set, err := analysis.ExtractPolesZeros(g)
	if err != nil {
		return err
	}
	fmt.Print(viz.RootList("pole", set.Poles))
	fmt.Print(viz.RootList("zero", set.Zeros))
	fmt.Println()
	fmt.Println(viz.PoleZeroMap(set))
	return nil
}

func runResponse(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	open, err := buildOpenLoop(cfg)
	if err != nil {
		return err
	}

	// Responses are always of the unity-feedback closed loop.
	closed, err := tfunc.FeedbackUnity(open)
	if err != nil {
		return err
	}
	printSystem(name+" (closed loop)", closed)

	kind, err := response.ParseInputKind(cfg.Input)
	if err != nil {
		return err
	}
	res, err := response.Simulate(closed, kind, response.Options{
		Horizon: cfg.Horizon,
		Samples: cfg.Samples,
	})
	if err != nil {
		return err
	}

	verdict, err := analysis.AnalyzeStability(closed.Den())
	if err != nil {
		return err
	}

	fmt.Println(viz.ResponsePlot(res))
	fmt.Printf("verdict: %s\n", viz.Verdict(verdict.Classification))
	final := res.Outputs[len(res.Outputs)-1]
	fmt.Printf("final value: %.6f\n", final)
	if res.Reference != nil {
		ref := res.Reference[len(res.Reference)-1]
		fmt.Printf("tracking error: %.6f\n", ref-final)
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, closed.Num(), closed.Den(), verdict.Classification.String(), res)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	open, err := buildOpenLoop(cfg)
	if err != nil {
		return err
	}
	closed, err := tfunc.FeedbackUnity(open)
	if err != nil {
		return err
	}
	printSystem(name+" (closed loop)", closed)

	verdict, err := analysis.AnalyzeStability(closed.Den())
	if err != nil {
		return err
	}
	fmt.Print(viz.RouthTable(verdict))
	fmt.Println()

	set, err := analysis.ExtractPolesZeros(closed)
	if err != nil {
		return err
	}
	fmt.Print(viz.RootList("pole", set.Poles))
	fmt.Print(viz.RootList("zero", set.Zeros))
	fmt.Println()
	fmt.Println(viz.PoleZeroMap(set))
	fmt.Println()

	kind, err := response.ParseInputKind(cfg.Input)
	if err != nil {
		return err
	}
	res, err := response.Simulate(closed, kind, response.Options{
		Horizon: cfg.Horizon,
		Samples: cfg.Samples,
	})
	if err != nil {
		return err
	}
	fmt.Println(viz.ResponsePlot(res))
	fmt.Printf("dc gain: %.4g\n", closed.DCGain())

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, closed.Num(), closed.Den(), verdict.Classification.String(), res)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runRootLocus(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	open, err := buildOpenLoop(cfg)
	if err != nil {
		return err
	}
	printSystem(name, open)

	loc, err := rlocus.Compute(open, rlocus.GainRange{
		Min:    cfg.Gains.Min,
		Max:    cfg.Gains.Max,
		Points: cfg.Gains.Points,
	})
	if err != nil {
		return err
	}
	fmt.Println(viz.LocusPlot(loc))
	fmt.Printf("branches: %d  gains: [%.4g, %.4g]\n",
		len(loc.Branches), loc.Gains[0], loc.Gains[len(loc.Gains)-1])
	return nil
}

func listExamples(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNUM\tDEN\tVERDICT")
	for _, name := range names {
		p := config.GetPreset(name)
		res, err := analysis.AnalyzeStability(p.Den)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%v\t%v\t%s\n", name, p.Num, p.Den, res.Classification)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tINPUT\tSAMPLES\tVERDICT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Input,
			run.Samples,
			run.Verdict,
		)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, outputs, reference, err := st.LoadResponse(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "output"}
	if reference != nil {
		header = append(header, "reference")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(outputs[i], 'f', 6, 64),
		}
		if reference != nil {
			row = append(row, strconv.FormatFloat(reference[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, outputs, reference, err := st.LoadResponse(args[0])
	if err != nil {
		return err
	}

	kind, err := response.ParseInputKind(meta.Input)
	if err != nil {
		return err
	}
	res := response.SimulationResult{
		Input:     kind,
		Times:     times,
		Outputs:   outputs,
		Reference: reference,
	}
	return storage.ExportJSON(os.Stdout, meta.System, meta.Num, meta.Den, meta.Verdict, res)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	open, err := buildOpenLoop(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewExplorer(open))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
