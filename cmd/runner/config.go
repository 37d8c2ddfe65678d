package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moon-runner/internal/config"
)

var flagDumpConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order: --config, ~/.moonrunner/configs/runner.yaml,
./configs/runner.yaml, then the built-in defaults. The output is a
complete file that can be edited and passed back with --config.

Examples:
  runner config > my-runner.yaml
  runner config --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom runner config YAML")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagDumpConfig)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
