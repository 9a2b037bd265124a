package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"tienda/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tienda",
		Short:         "Store inventory and sales API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Server
	root.AddCommand(newServeCmd())

	// Database
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())

	// Workers
	root.AddCommand(newConsumeCmd())

	return root
}

// loadConfig reads the configuration and installs the default logger for it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return cfg, err
	}
	slog.SetDefault(newLogger(os.Stdout, cfg.Server.Env))
	return cfg, nil
}

// newLogger writes JSON in production and text elsewhere.
func newLogger(w io.Writer, env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
