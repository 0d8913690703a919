// cmd/projinsight/main.go
package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/julianshen/projinsight/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
)

func versionString() string {
	return fmt.Sprintf("projinsight %s (commit: %s, built: %s)", version, commit, date)
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "projinsight",
		Short: "Analyze project folders for skills and resume bullets",
		Long:  heredoc.Doc(`
			projinsight scans a folder of projects, finds where each project begins,
			classifies it as coding, writing or art, detects languages and frameworks,
			infers skills and writes resume-ready accomplishment bullets.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/projinsight/config.toml)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}

	root.AddCommand(versionCmd)
	root.AddCommand(analyzeCmd())
	root.AddCommand(historyCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies .env and PROJINSIGHT_*
// overrides and validates the result.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
