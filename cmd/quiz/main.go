// Command quiz plays the accent quiz in a terminal and maintains word lists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/accent/internal/config"
	"github.com/okian/accent/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quiz",
		Short: "American accent feature quiz",
		Long: `quiz serves words and asks which American English pronunciation
feature each one demonstrates: stress, t_flap, dark_l and so on.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default: $"+config.EnvConfigFile+")")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(playCmd())
	root.AddCommand(detectCmd())
	root.AddCommand(importCMUCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	loaded, err := config.LoadFile(cmd.Context(), path)
	if err != nil {
		return err
	}
	cfg = loaded

	// Logs go to stderr so they never interleave with the quiz itself.
	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(os.Stderr)); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	level := cfg.LogLevel
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		level = flag
	}
	return logger.SetLevelString(level)
}
