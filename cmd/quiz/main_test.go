package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ACCENT_CONFIG", "")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDetectCommand(t *testing.T) {
	convey.Convey("Given the detect command", t, func() {
		convey.Convey("When a transcription is passed", func() {
			out, err := execute(t, "detect", "water", "W", "AA1", "DX", "ER0")

			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "Features: r_coloring, stress, t_flap")
			convey.So(out, convey.ShouldContainSubstring, "Syllables: W AA1 | DX ER0")
		})

		convey.Convey("When no transcription or dictionary is available", func() {
			t.Setenv("ACCENT_CMU_DICT_PATH", "")
			_, err := execute(t, "detect", "water")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestImportCommand(t *testing.T) {
	convey.Convey("Given a small CMU dictionary", t, func() {
		dir := t.TempDir()
		dictPath := filepath.Join(dir, "cmudict.txt")
		outPath := filepath.Join(dir, "words.json")
		convey.So(os.WriteFile(dictPath, []byte(";;; comment\nWATER  W AO1 T ER0\nFEEL  F IY1 L\nO'CLOCK  AH0 K L AA1 K\n"), 0o600), convey.ShouldBeNil)

		convey.Convey("When it is imported", func() {
			out, err := execute(t, "import-cmu", "--dict", dictPath, "--out", outPath, "--seed", "7")

			convey.Convey("Then alphabetic words are written", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "Wrote 2 words")

				b, readErr := os.ReadFile(outPath)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"text": "water"`)
				convey.So(string(b), convey.ShouldContainSubstring, `"feature_id": "t_flap"`)
				convey.So(string(b), convey.ShouldNotContainSubstring, "o'clock")
			})
		})

		convey.Convey("When no dictionary is given", func() {
			t.Setenv("ACCENT_CMU_DICT_PATH", "")
			_, err := execute(t, "import-cmu", "--out", outPath)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
