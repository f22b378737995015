package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/zhubert/caesar/internal/demo"
	"github.com/zhubert/caesar/internal/demo/scenarios"
)

type demoOptions struct {
	output     string
	width      int
	height     int
	captureAll bool
	plain      bool
}

func newDemoCmd() *cobra.Command {
	opts := &demoOptions{}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run scripted demos of caesar",
		Long: `Run scripted scenarios against the TUI without a terminal.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print the captured frames
  cast      - Generate an asciinema cast file`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available demo scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available demo scenarios:")
			fmt.Fprintln(out)
			for _, s := range scenarios.All() {
				fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
			}
		},
	}

	runCmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run a scenario and print the captured frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemoRun(cmd, opts, args[0])
		},
	}

	castCmd := &cobra.Command{
		Use:   "cast <scenario>",
		Short: "Generate an asciinema cast file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemoCast(cmd, opts, args[0])
		},
	}

	for _, c := range []*cobra.Command{runCmd, castCmd} {
		c.Flags().IntVarP(&opts.width, "width", "w", 0, "Terminal width (scenario default if 0)")
		c.Flags().IntVarP(&opts.height, "height", "H", 0, "Terminal height (scenario default if 0)")
		c.Flags().BoolVar(&opts.captureAll, "capture-all", false, "Capture a frame after every key (for debugging)")
	}
	runCmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip colors from the printed frames")
	castCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default <scenario>.cast)")

	demoCmd.AddCommand(listCmd, runCmd, castCmd)
	return demoCmd
}

func getScenario(opts *demoOptions, name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'caesar demo list' to see available scenarios", name)
	}

	// Work on a copy so flag overrides do not leak into the shared scenario
	s := *scenario
	if opts.width > 0 {
		s.Width = opts.width
	}
	if opts.height > 0 {
		s.Height = opts.height
	}
	return &s, nil
}

func executeScenario(opts *demoOptions, scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = opts.captureAll

	frames, err := demo.NewExecutor(execCfg).Run(scenario)
	if err != nil {
		return nil, fmt.Errorf("error running scenario: %w", err)
	}
	return frames, nil
}

func runDemoRun(cmd *cobra.Command, opts *demoOptions, name string) error {
	scenario, err := getScenario(opts, name)
	if err != nil {
		return err
	}

	frames, err := executeScenario(opts, scenario)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(out, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(out, "Annotation: %s\n", f.Annotation)
		}
		content := f.Content
		if opts.plain {
			content = ansi.Strip(content)
		}
		fmt.Fprintln(out, content)
	}
	return nil
}

func runDemoCast(cmd *cobra.Command, opts *demoOptions, name string) error {
	scenario, err := getScenario(opts, name)
	if err != nil {
		return err
	}

	frames, err := executeScenario(opts, scenario)
	if err != nil {
		return err
	}

	outputFile := opts.output
	if outputFile == "" {
		outputFile = name + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height, "caesar: "+scenario.Description); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)
	return nil
}
