package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/okian/accent/internal/adapters/cmu"
	"github.com/okian/accent/internal/adapters/storage/jsonfile"
	"github.com/okian/accent/internal/bootstrap"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/pkg/logger"
)

func importCMUCmd() *cobra.Command {
	var (
		dictPath string
		outPath  string
		sample   int
		clips    int
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "import-cmu",
		Short: "Build a word list from the CMU pronouncing dictionary",
		Long: `Import reads a CMU dictionary file, keeps alphabetic words, picks the
feature each word quizzes from its detected features and writes a JSON or
YAML word file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logger.Get().Named("import")
			if dictPath == "" {
				dictPath = cfg.CMUDictPath
			}
			if dictPath == "" {
				return fmt.Errorf("--dict is required when cmu_dict_path is not set")
			}
			if outPath == "" {
				outPath = cfg.WordFile
			}

			dict, err := cmu.Load(ctx, dictPath)
			if err != nil {
				return err
			}

			opts := []cmu.ImportOption{
				cmu.WithSample(sample),
				cmu.WithClipCount(clips),
				cmu.WithLogger(log),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, cmu.WithRand(rand.New(rand.NewPCG(seed, seed))))
			}
			entries, err := cmu.NewImporter(detect.New(bootstrap.DetectorOptions(cfg)...), opts...).Import(ctx, dict)
			if err != nil {
				return err
			}

			if err := jsonfile.New(outPath, cfg.StatsFile, jsonfile.WithLogger(log)).SaveAll(ctx, entries); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s.\n", len(entries), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dictPath, "dict", "", "CMU dictionary file (default: cmu_dict_path)")
	cmd.Flags().StringVar(&outPath, "out", "", "word file to write (default: word_file)")
	cmd.Flags().IntVar(&sample, "sample", 0, "keep a random sample of this many words (0 keeps all)")
	cmd.Flags().IntVar(&clips, "clips", 10, "number of clip ids to assign (0 leaves them empty)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for sampling and clip ids")
	return cmd
}
