// Command seasonctl schedules a league season and computes standings offline,
// reading and writing JSON.
//
// Usage:
//
//	seasonctl schedule --input season.json > fixtures.json
//	seasonctl standings --input fixtures.json --win 3 --draw 1 --loss 0
package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/league-season/internal/platform/logging"
)

var logger = logging.NewJSON(logging.Options{Service: "seasonctl", Writer: os.Stderr, Level: logging.LevelWarn})

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("seasonctl failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seasonctl",
		Short:         "Offline league season scheduling and standings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(scheduleCmd(), standingsCmd())
	return root
}

func scheduleCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate fixtures and assign referees for one season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withIO(cmd, input, output, runSchedule)
		},
	}
	cmd.Flags().StringVar(&input, "input", "-", "season definition JSON file, - for stdin")
	cmd.Flags().StringVar(&output, "output", "-", "output file, - for stdout")
	return cmd
}

func standingsCmd() *cobra.Command {
	var input, output string
	var opts standingsOptions
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Compute the standings table from fixtures JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withIO(cmd, input, output, func(in io.Reader, out io.Writer) error {
				return runStandings(in, out, opts)
			})
		},
	}
	cmd.Flags().StringVar(&input, "input", "-", "fixtures JSON file, - for stdin")
	cmd.Flags().StringVar(&output, "output", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&opts.win, "win", 3, "points for a win")
	cmd.Flags().IntVar(&opts.draw, "draw", 1, "points for a draw")
	cmd.Flags().IntVar(&opts.loss, "loss", 0, "points for a loss")
	cmd.Flags().StringVar(&opts.tieBreakers, "tie-breakers", "", "comma separated tie breakers, empty for the default order")
	return cmd
}

func withIO(cmd *cobra.Command, input, output string, fn func(in io.Reader, out io.Writer) error) error {
	in := cmd.InOrStdin()
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return fn(in, out)
}
