package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/accent/internal/adapters/storage/jsonfile"
	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/phonetic"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func TestWords(t *testing.T) {
	Convey("Given a store over a temp directory", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		wordPath := filepath.Join(dir, "words.json")
		store := jsonfile.New(wordPath, filepath.Join(dir, "stats.json"))

		Convey("When the word file does not exist", func() {
			words, err := store.LoadAll(ctx)

			So(err, ShouldBeNil)
			So(words, ShouldBeEmpty)
		})

		Convey("When the file holds valid and invalid records", func() {
			So(os.WriteFile(wordPath, []byte(`[
 {"text":"water","syllables":["W AA1","DX ER0"],"feature_id":"t_flap","original_pronunciation":false},
 {"text":"zz","syllables":["Z"],"feature_id":"other"}
]`), 0o600), ShouldBeNil)

			words, err := store.LoadAll(ctx)

			Convey("Then only valid words load", func() {
				So(err, ShouldBeNil)
				So(len(words), ShouldEqual, 1)
				So(words[0].Text, ShouldEqual, "water")
			})
		})

		Convey("When the file is not JSON", func() {
			So(os.WriteFile(wordPath, []byte(`{oops`), 0o600), ShouldBeNil)

			_, err := store.LoadAll(ctx)
			So(errors.Is(err, jsonfile.ErrCorruptFile), ShouldBeTrue)
		})

		Convey("When words are saved", func() {
			city, _ := model.NewWordEntry("city", phonetic.MustParse("S IH1 DX IY0"), catalog.TFlap, model.WithGloss("siddy"))
			car, _ := model.NewWordEntry("car", phonetic.MustParse("K AA1 R"), catalog.RColoring)
			So(store.Save(ctx, city), ShouldBeNil)
			So(store.Save(ctx, car), ShouldBeNil)

			replaced, _ := model.NewWordEntry("city", phonetic.MustParse("S IH1 T IY0"), catalog.Stress)
			So(store.Save(ctx, replaced), ShouldBeNil)

			Convey("Then they read back in order, with replacement by text", func() {
				words, err := store.LoadAll(ctx)
				So(err, ShouldBeNil)
				So(len(words), ShouldEqual, 2)
				So(words[0].Text, ShouldEqual, "city")
				So(words[0].TargetFeature, ShouldEqual, catalog.Stress)
				So(words[1].Text, ShouldEqual, "car")
			})
		})

		Convey("When a whole list is written at once", func() {
			cat, _ := model.NewWordEntry("cat", phonetic.MustParse("K AE1 T"), catalog.Aspiration)
			So(store.SaveAll(ctx, []model.WordEntry{cat}), ShouldBeNil)

			Convey("Then it replaces the file", func() {
				words, err := store.LoadAll(ctx)
				So(err, ShouldBeNil)
				So(len(words), ShouldEqual, 1)
				So(words[0].Text, ShouldEqual, "cat")
			})
		})
	})

	Convey("Given a YAML word file", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		wordPath := filepath.Join(dir, "words.yaml")
		So(os.WriteFile(wordPath, []byte("- text: feel\n  syllables: [\"F IY1 L\"]\n  feature_id: dark_l\n"), 0o600), ShouldBeNil)
		store := jsonfile.New(wordPath, filepath.Join(dir, "stats.json"))

		words, err := store.LoadAll(ctx)
		So(err, ShouldBeNil)
		So(words[0].TargetFeature, ShouldEqual, catalog.DarkL)

		Convey("When a word is saved", func() {
			car, _ := model.NewWordEntry("car", phonetic.MustParse("K AA1 R"), catalog.RColoring)
			So(store.Save(ctx, car), ShouldBeNil)

			words, err := store.LoadAll(ctx)
			So(err, ShouldBeNil)
			So(len(words), ShouldEqual, 2)
		})
	})
}

func TestStats(t *testing.T) {
	Convey("Given a store over a temp directory", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		statsPath := filepath.Join(dir, "nested", "stats.json")
		store := jsonfile.New(filepath.Join(dir, "words.json"), statsPath)

		Convey("When no statistics were written", func() {
			s, err := store.Load(ctx)

			So(err, ShouldBeNil)
			So(s, ShouldResemble, progress.NewStats())
		})

		Convey("When statistics are persisted", func() {
			tr := progress.New()
			tr.SaveAttempt("water", true, "t_flap")
			tr.SaveAttempt("feel", false, "skip")
			So(store.Persist(ctx, tr.Stats()), ShouldBeNil)

			Convey("Then they load back unchanged", func() {
				s, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(s, ShouldResemble, tr.Stats())
			})

			Convey("And no temporary files are left behind", func() {
				entries, err := os.ReadDir(filepath.Dir(statsPath))
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 1)
			})
		})

		Convey("When the statistics file is corrupt", func() {
			So(os.MkdirAll(filepath.Dir(statsPath), 0o755), ShouldBeNil)
			So(os.WriteFile(statsPath, []byte("not json"), 0o600), ShouldBeNil)

			s, err := store.Load(ctx)
			So(err, ShouldBeNil)
			So(s.TotalRounds, ShouldEqual, 0)
		})
	})
}
