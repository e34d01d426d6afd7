package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/pulltoload/cmd/pullsim/internal/plot"
	"github.com/go-drift/pulltoload/cmd/pullsim/internal/scenario"
)

var (
	plotPath    string
	showSamples bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Replay a scenario and print the trace",
	Long: `Replay a scenario file and print every collaborator call in order,
followed by a summary of the final state.

Steps are one of: down, move, up, cancel, nested-start, pre-scroll,
nested-stop, wait, settle, complete, set-loading, all-loaded, mode and
content.`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	runCmd.Flags().StringVar(&plotPath, "plot", "", "write a PNG chart of the offset trace to this path")
	runCmd.Flags().BoolVar(&showSamples, "samples", false, "print every offset sample")
	rootCmd.AddCommand(runCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("running scenario", "path", args[0], "steps", len(s.Steps), "version", s.Version)

	res, err := scenario.Run(s, scenario.Options{Settings: settings, Logger: logger})
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)

	if plotPath != "" {
		if err := writePlot(plotPath, res); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("plot written to "+plotPath))
	}
	return nil
}

func printResult(w io.Writer, res *scenario.Result) {
	name := res.Name
	if name == "" {
		name = "scenario"
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", name, res.Mode)))
	for _, e := range res.Events {
		fmt.Fprintf(w, "%s  %s %-8s %s\n",
			dimStyle.Render(fmt.Sprintf("%8s", e.At)),
			dimStyle.Render(fmt.Sprintf("#%-3d", e.Step)),
			styleSource(e.Source), e.Detail)
	}
	if showSamples {
		fmt.Fprintln(w)
		for _, s := range res.Samples {
			fmt.Fprintf(w, "%8s  %5d  %s\n", s.At, s.Offset, s.State)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "final state %s, offset %d, load-new %d, load-more %d, elapsed %s\n",
		res.Final, res.Offset, res.LoadNew, res.LoadMore, res.Elapsed)
}

func writePlot(path string, res *scenario.Result) error {
	points := make([]plot.Point, len(res.Samples))
	for i, s := range res.Samples {
		points[i] = plot.Point{At: s.At, Offset: s.Offset, Busy: s.State.IsBusy()}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot: %w", err)
	}
	title := res.Name
	if title == "" {
		title = res.Mode.String()
	}
	err = plot.Render(f, points, plot.Options{Title: title, Guides: []int{-res.Header, res.Footer}})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
