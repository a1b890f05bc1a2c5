package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/accent/internal/bootstrap"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/internal/domain/phonetic"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect WORD [ARPABET...]",
		Short: "List the features a word demonstrates",
		Long: `Detect prints the pronunciation features found in a word. The
transcription is given as ARPAbet after the word, e.g.

  quiz detect water W AA1 DX ER0

Without a transcription the word is looked up in the configured CMU
dictionary.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			t, err := transcription(cmd, word, args[1:])
			if err != nil {
				return err
			}

			d := detect.New(bootstrap.DetectorOptions(cfg)...)
			set := d.Detect(word, t)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Word: %s\n", word)
			fmt.Fprintf(out, "Syllables: %s\n", strings.Join(t.Syllables(), " | "))
			fmt.Fprintf(out, "IPA: %s\n", t.IPA())
			if len(set) == 0 {
				fmt.Fprintln(out, "Features: none")
				return nil
			}
			fmt.Fprintf(out, "Features: %s\n", strings.Join(set.Slice(), ", "))
			return nil
		},
	}
}

func transcription(cmd *cobra.Command, word string, arpabet []string) (phonetic.Transcription, error) {
	if len(arpabet) > 0 {
		return phonetic.Parse(strings.Join(arpabet, " "))
	}
	dict, err := bootstrap.OpenDictionary(cmd.Context(), cfg)
	if err != nil {
		return phonetic.Transcription{}, err
	}
	if dict == nil {
		return phonetic.Transcription{}, fmt.Errorf("no transcription given and cmu_dict_path is not set")
	}
	return dict.Lookup(word)
}
