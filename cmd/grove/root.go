package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/grove"
)

// newRootCmd builds the command tree. Each call returns fresh commands so
// tests can run them independently.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:           "grove",
		Short:         "Materialize declarative scene graphs",
		Long:          `grove builds live compositor objects from declarative scene descriptions and prints the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			level, err := parseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			grove.SetLogger(newLogger(cmd.ErrOrStderr(), level))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "grove.yaml", "Path to the YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(newMaterializeCmd(cfg))
	root.AddCommand(newScenesCmd())
	return root
}

// Execute runs the command line.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "grove:", err)
		os.Exit(1)
	}
}
