package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sortviz/algorithm"
	"github.com/lixenwraith/sortviz/app"
	"github.com/lixenwraith/sortviz/audio"
	"github.com/lixenwraith/sortviz/bench"
	"github.com/lixenwraith/sortviz/config"
)

// rootOptions holds flag values; only flags the user set override the config
type rootOptions struct {
	configPath string
	bars       int
	algorithm  string
	speed      float64
	frameRate  int
	seed       uint64
	bogoLimit  int
	debug      bool
	noAudio    bool
	hideDebug  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sortviz",
		Short: "Watch sorting algorithms run one step at a time in the terminal",
		Long: `sortviz draws a shuffled sequence as bars and advances the selected
sorting algorithm one comparison or move per step.

Keys: B I S M Q R G select an algorithm, N reshuffles, Space pauses,
+/- change speed, U mutes, O/P show or hide the debug menu, X quits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "YAML config file")
	f.IntVarP(&opts.bars, "bars", "n", 0, "number of elements (0 fits the terminal width)")
	f.StringVarP(&opts.algorithm, "algorithm", "a", "", "starting algorithm: bubble, insertion, selection, merge, quick, radix, bogo")
	f.Float64VarP(&opts.speed, "speed", "s", 0, "steps per second (0 steps every frame)")
	f.IntVar(&opts.frameRate, "frame-rate", 0, "frames per second")
	f.Uint64Var(&opts.seed, "seed", 0, "shuffle seed (0 picks one from the clock)")
	f.IntVar(&opts.bogoLimit, "bogo-limit", 0, "give up bogo after this many shuffles (0 never)")
	f.BoolVar(&opts.debug, "debug", false, "write logs to logs/sortviz.log")
	f.BoolVar(&opts.noAudio, "no-audio", false, "disable tones")
	f.BoolVar(&opts.hideDebug, "hide-debug", false, "start with the debug menu hidden")

	root.AddCommand(newRunCmd(opts), newBenchCmd(opts), newConfigCmd(opts))
	return root
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive visualizer (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newBenchCmd(opts *rootOptions) *cobra.Command {
	bo := bench.DefaultOptions()
	var algs []string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run algorithms headless and report step and operation counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if logFile := setupLogging(cfg.Debug); logFile != nil {
				defer logFile.Close()
			}

			if len(algs) > 0 {
				bo.Algorithms = bo.Algorithms[:0]
				for _, name := range algs {
					id, err := algorithm.Parse(name)
					if err != nil {
						return err
					}
					bo.Algorithms = append(bo.Algorithms, id)
				}
			}
			bo.Seed = cfg.Seed
			if cfg.BogoLimit > 0 {
				bo.BogoLimit = cfg.BogoLimit
			}

			results, err := bench.Run(cmd.Context(), bo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color := !noColor && isTerminal(out)
			return bench.Write(out, bench.Summarize(results), color)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&algs, "algorithms", nil, "algorithms to run (default all but bogo)")
	f.IntSliceVar(&bo.Sizes, "sizes", bo.Sizes, "sequence sizes")
	f.IntVar(&bo.Trials, "trials", bo.Trials, "shuffles per algorithm and size")
	f.IntVar(&bo.MaxSteps, "max-steps", bo.MaxSteps, "step cap per run (0 none)")
	f.IntVar(&bo.Workers, "workers", 0, "concurrent runs (0 uses GOMAXPROCS)")
	f.BoolVar(&noColor, "no-color", false, "disable ANSI emphasis")
	return cmd
}

// isTerminal reports whether w is a terminal file
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig layers the config file, SORTVIZ_* environment and set flags,
// then validates and resolves a zero seed from the clock
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("bars") {
		cfg.Bars = opts.bars
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = opts.algorithm
	}
	if flags.Changed("speed") {
		cfg.StepsPerSecond = opts.speed
	}
	if flags.Changed("frame-rate") {
		cfg.FrameRate = opts.frameRate
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("bogo-limit") {
		cfg.BogoLimit = opts.bogoLimit
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("no-audio") {
		cfg.Audio.Enabled = !opts.noAudio
	}
	if flags.Changed("hide-debug") {
		cfg.ShowDebug = !opts.hideDebug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// runInteractive owns the terminal for the lifetime of the visualizer
func runInteractive(parent context.Context, cfg *config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: algorithm=%s bars=%d speed=%.1f seed=%d audio=%t",
		cfg.Algorithm, cfg.Bars, cfg.StepsPerSecond, cfg.Seed, cfg.Audio.Enabled)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSORTVIZ CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	player := audio.NewPlayer(&audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: cfg.Audio.SampleRate,
	})
	if err := player.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Cleanup()

	a, err := app.New(screen, cfg, player)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx)
	log.Printf("=== sortviz stopped ===")
	return err
}
