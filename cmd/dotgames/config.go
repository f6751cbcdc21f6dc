package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotgames/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Prints the configuration the simulator would use, as YAML.

Search order:
  --config path -> ~/.dotgames/config.yaml -> ./configs/dotgames.yaml -> embedded defaults

Examples:
  dotgames config
  dotgames config --defaults > ~/.dotgames/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded default file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger("dotgames", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, src, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	logger.Info("resolved configuration", "source", src)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n%s", src, data)
	return nil
}
