package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/config"
)

var flagWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Prints the built-in roids.yaml. Save it as ~/.arcade/configs/roids.yaml
or ./configs/roids.yaml to override the defaults, or pass it with --config.

Examples:
  roids config > my-roids.yaml
  roids config --write ~/.arcade/configs/roids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagWrite, "write", "", "Write the default config to this path instead of stdout")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML("roids")

	if flagWrite == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(flagWrite), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(flagWrite, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), flagWrite)
	return nil
}
