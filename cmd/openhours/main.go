package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/spf13/cobra"

	"github.com/Xevion/go-openhours"
	"github.com/Xevion/go-openhours/internal"
	"github.com/Xevion/go-openhours/internal/config"
	"github.com/Xevion/go-openhours/types"
)

type runOptions struct {
	input   string
	output  string
	day     string
	time    string
	format  string
	workers int
}

var (
	verbose bool

	output  string
	day     string
	clock   string
	format  string
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "openhours INPUT",
	Short: "Evaluate opening hours strings",
	Long: `Reads opening hours such as "mo-fr 9:00-18:00; sa 10:00-14:00; su off"
from the fourth column of a ";" delimited file (or an http(s) URL), checks
whether each place is open at the given day and time, and appends one row per
input row to a CSV file:

  oh_clean,valid/invalid,open,oh_list
`,
	Version:       internal.Version(),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		options := defaultOptions(cfg)
		options.input = args[0]
		if cmd.Flags().Changed("output") {
			options.output = output
		}
		if cmd.Flags().Changed("day") {
			options.day = day
		}
		if cmd.Flags().Changed("time") {
			options.time = clock
		}
		if cmd.Flags().Changed("format") {
			options.format = format
		}
		if cmd.Flags().Changed("workers") {
			options.workers = workers
		}
		return run(cfg, options)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Get a verbose output")

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Path to the output file. Default is output_<day>_<hour>.<minute>.csv")
	rootCmd.Flags().StringVar(&day, "day", "", "The day to check. Default is the current day")
	rootCmd.Flags().StringVar(&clock, "time", "", "The time to check, H:MM. Default is the current time")
	rootCmd.Flags().StringVar(&format, "format", "", "How schedules are written: text, json or yaml (env OPENHOURS_FORMAT)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Rows evaluated in parallel (env OPENHOURS_WORKERS)")
}

// defaultOptions fills in the current day and time and the output name
// derived from them.
func defaultOptions(cfg config.Config) runOptions {
	now := internal.Now()
	today := openhours.WeekdayOf(internal.DefaultWeekday(now)).String()
	return runOptions{
		output:  internal.DefaultOutputPath(today, now),
		day:     today,
		time:    internal.DefaultTime(now),
		format:  cfg.Format,
		workers: cfg.Workers,
	}
}

func setupLogging(verbose bool) {
	var handler slog.Handler
	if verbose {
		handler = devslog.NewHandler(os.Stderr, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{Level: slog.LevelDebug},
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

func run(cfg config.Config, options runOptions) error {
	slog.Debug("Options", "input", options.input, "output", options.output, "day", options.day, "time", options.time)

	app, err := openhours.NewApp(types.NewAppRequest{
		Input:       options.input,
		Output:      options.output,
		Day:         types.DayString(options.day),
		Time:        types.TimeString(options.time),
		Format:      options.format,
		Workers:     options.workers,
		HTTPTimeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Warn("Error during shutdown", "error", err)
		}
	}()

	summary, err := app.Run()
	if err != nil {
		return fmt.Errorf("an I/O error was encountered: %w", err)
	}

	slog.Info("Complete! Please check "+options.output,
		"rows", summary.Rows,
		"invalid", summary.Invalid,
		"unparseable", summary.Unparseable,
		"open", summary.Open,
		"closed", summary.Closed,
		"skipped_ranges", summary.SkippedRange,
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
