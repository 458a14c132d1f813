package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/san-kum/ruin/internal/config"
	"github.com/san-kum/ruin/internal/logging"
	"github.com/san-kum/ruin/internal/report"
	"github.com/san-kum/ruin/internal/ruin"
	"github.com/san-kum/ruin/internal/session"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("games and sets are required (or use -i)")

type options struct {
	matrix      bool
	interactive bool
	plot        bool
	seed        uint64
	configFile  string
	preset      string
	logLevel    string
	prompt      string
}

// main runs the ruin CLI and exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.Warning.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ruin [-m] [-i] [<games> <sets>]",
		Short: "gambler's ruin simulator",
		Long: `ruin flips a fair coin <games> times for each of <sets> sets and
reports wins, losses, win percentage and edge (deviation from 50%).

With -i it starts an interactive session that keeps a running total
across runs. Type 'help' inside the session for the command list.`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.matrix, "matrix", "m", false, "print the outcome matrix")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "start an interactive session")
	rootCmd.Flags().BoolVar(&opts.plot, "plot", false, "chart win percentage per set")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = fresh randomness)")
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&opts.preset, "preset", "", "use preset games/sets")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (info, debug, trace)")
	rootCmd.Flags().StringVar(&opts.prompt, "prompt", config.DefaultPrompt, "interactive prompt")

	rootCmd.AddCommand(newPresetsCmd())

	return rootCmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGAMES\tSETS\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, p.Games, p.Sets, p.Info)
			}
			return w.Flush()
		},
	}
}

// loadConfig layers defaults, preset, config file, environment, then
// flags the user actually set and positional arguments.
func loadConfig(cmd *cobra.Command, args []string, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		if err := cfg.ApplyPreset(opts.preset); err != nil {
			return nil, err
		}
	}

	if opts.configFile != "" {
		if err := cfg.Merge(opts.configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("matrix") {
		cfg.Matrix = opts.matrix
	}
	if flags.Changed("interactive") {
		cfg.Interactive = opts.interactive
	}
	if flags.Changed("plot") {
		cfg.Plot = opts.plot
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("prompt") {
		cfg.Prompt = opts.prompt
	}

	switch len(args) {
	case 0:
	case 2:
		p, err := ruin.ParseParams(args[0], args[1], cfg.Matrix)
		if err != nil {
			return nil, err
		}
		cfg.Games, cfg.Sets = p.Games, p.Sets
	default:
		return nil, fmt.Errorf("%w: usage: %s", errUsage, cmd.UseLine())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	engine := ruin.NewEngine(cfg.NewCoin())
	out := cmd.OutOrStdout()

	if cfg.Interactive {
		ctrl := session.New(engine, session.Options{
			Out:        out,
			Logger:     logger,
			Prompt:     cfg.Prompt,
			ShowMatrix: cfg.Matrix,
			Plot:       cfg.Plot,
			Games:      cfg.Games,
			Sets:       cfg.Sets,
		})

		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)

		return ctrl.Run(cmd.Context(), cmd.InOrStdin(), interrupts)
	}

	if !cfg.HasParams() {
		return fmt.Errorf("%w: usage: %s", errUsage, cmd.UseLine())
	}

	result, err := engine.Simulate(cfg.Params())
	if err != nil {
		return err
	}
	logger.Debug("run complete", "games", cfg.Games, "sets", cfg.Sets, "wins", result.Wins, "losses", result.Losses)

	report.Summary(out, result)
	if cfg.Plot {
		report.Plot(out, result)
	}
	return nil
}
