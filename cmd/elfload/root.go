package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	config     *config
	logger     *slog.Logger
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "elfload",
		Short: "Inspect and drive the load of freestanding ELF binaries",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.config = cfg

			level := slog.LevelInfo
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
			}

			opts.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")

	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newSimulateCommand(opts))

	return cmd
}
