// dotgames is the desktop companion of the LED-matrix game console: it runs
// the same game loop in a terminal simulator and inspects the glyphs and
// configuration used on the device.
//
// Usage:
//
//	dotgames play            - Play in the terminal simulator
//	dotgames list            - List the games on the selection screen
//	dotgames glyphs          - Print the glyph table
//	dotgames config          - Print the resolved configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotgames/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dotgames",
	Short: "dotgames - 8x8 LED matrix games",
	Long: `dotgames runs the 8x8 LED-matrix game console in your terminal.

The simulator drives the exact loop the firmware runs: the keyboard moves a
virtual analog stick, the state machine advances once per tick and the
frame is drawn as a grid of LEDs.

Available commands:
  play     - Play in the terminal simulator
  list     - Show the games on the selection screen
  glyphs   - Print the glyph table
  config   - Print the resolved configuration

Examples:
  dotgames play
  dotgames play --difficulty hard --seed 42
  dotgames config --config ./my.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. fallback is used when --log-file is
// not set. The returned close function must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration and applies --seed.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, src, err := config.Resolve(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	logger.Debug("configuration loaded", "source", src)
	return cfg, nil
}
