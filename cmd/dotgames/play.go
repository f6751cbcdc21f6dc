package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dotgames/internal/config"
	"github.com/vovakirdan/dotgames/internal/platform/tui"
)

// Smallest terminal that fits the matrix panel, status line and help.
const (
	minTermWidth  = 24
	minTermHeight = 14
)

var (
	flagDifficulty string
	flagWalls      string
	flagSnapDir    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal simulator",
	Long: `Start the simulator on the selection screen.

Controls:
  Arrows/WASD  - Move the stick
  Space/Enter  - Press the stick button
  Ctrl+S       - Save the current frame
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Values from the config file
  hard   - Fast start, steep speed-up
  fixed  - Config start speed, no speed-up

Logs go to --log-file only; the simulator owns the terminal.

Examples:
  dotgames play
  dotgames play --difficulty hard
  dotgames play --walls wrap --seed 7
  dotgames play --log-file dotgames.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagWalls, "walls", "", "Override wall policy: solid or wrap")
	playCmd.Flags().StringVar(&flagSnapDir, "snapshots", defaultSnapDir(), "Directory for saved frames")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger("dotgames", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyDifficulty(&cfg, preset)
	}
	if flagWalls != "" {
		cfg.Snake.Walls = flagWalls
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := checkTerminal(); err != nil {
		return err
	}

	logger.Info("starting simulator", "difficulty", flagDifficulty, "walls", cfg.Snake.Walls)
	err = tui.Run(tui.Options{
		Runtime:   cfg.Runtime(),
		Stick:     cfg.Stick(),
		Intensity: cfg.Intensity(),
		Logger:    logger,
		HoldTicks: cfg.Joystick.HoldTicks,
		SnapDir:   flagSnapDir,
	})
	if err != nil {
		return fmt.Errorf("simulator: %w", err)
	}
	logger.Info("simulator stopped")
	return nil
}

// checkTerminal refuses to start when stdout is not a terminal large enough
// for the matrix.
func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("play needs an interactive terminal")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("cannot read terminal size: %w", err)
	}
	if w < minTermWidth || h < minTermHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, minTermWidth, minTermHeight)
	}
	return nil
}

func defaultSnapDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dotgames", "frames")
}
