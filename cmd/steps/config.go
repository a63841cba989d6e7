package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-steps/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.steps/configs/steps.yaml or ./configs/steps.yaml and edit it
to change road length, jump timing, block size and difficulty progression.

Examples:
  mkdir -p ~/.steps/configs
  steps config > ~/.steps/configs/steps.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.LoadSteps(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: road %d tiles, jump %d ticks, input delay %d ticks\n",
			cfg.Road.Length, cfg.Player.JumpTicks, cfg.Player.InputDelayTicks)
		return nil
	},
}

func init() {
	configCmd.AddCommand(checkConfigCmd)
}
