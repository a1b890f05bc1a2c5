package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/accent/internal/bootstrap"
	"github.com/okian/accent/internal/cli"
	"github.com/okian/accent/pkg/logger"
)

func playCmd() *cobra.Command {
	var (
		hideIPA       bool
		hideSyllables bool
		showOriginal  bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		Long: `Serve random words and judge feature guesses until you quit.
Statistics are persisted to the configured storage backend.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logger.Get()

			svc, err := bootstrap.NewService(ctx, cfg, log)
			if err != nil {
				return err
			}
			if err := svc.Start(ctx); err != nil {
				return fmt.Errorf("start quiz: %w", err)
			}
			defer svc.Stop()

			display := cfg.Quiz
			if cmd.Flags().Changed("no-ipa") {
				display.ShowIPA = !hideIPA
			}
			if cmd.Flags().Changed("no-syllables") {
				display.ShowSyllables = !hideSyllables
			}
			if cmd.Flags().Changed("original") {
				display.ShowOriginal = showOriginal
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d words.\n", len(svc.Words(ctx)))
			p := cli.NewPlayer(svc, os.Stdin, cmd.OutOrStdout(),
				cli.WithDisplay(display),
				cli.WithLogger(log.Named("cli")),
			)
			_, err = p.Run(ctx)
			return err
		},
	}
	cmd.Flags().BoolVar(&hideIPA, "no-ipa", false, "hide IPA at start")
	cmd.Flags().BoolVar(&hideSyllables, "no-syllables", false, "hide syllables at start")
	cmd.Flags().BoolVar(&showOriginal, "original", false, "show the original pronunciation at start")
	return cmd
}
