package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mango-snake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file search order is --config, ~/.mango/configs/snake.yaml,
./configs/snake.yaml, then the built-in defaults. --difficulty is applied
on top.

Examples:
  mango config
  mango config --difficulty hard
  mango config --defaults > ~/.mango/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
