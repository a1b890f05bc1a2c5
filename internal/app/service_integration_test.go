package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/accent/internal/adapters/storage/jsonfile"
	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/quiz"
	"github.com/smartystreets/goconvey/convey"
)

func TestServiceWithJSONFiles(t *testing.T) {
	convey.Convey("Given a service over word and stats files", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		wordPath := filepath.Join(dir, "words.json")
		statsPath := filepath.Join(dir, "stats.json")
		convey.So(os.WriteFile(wordPath, []byte(`[
 {"text":"city","syllables":["S IH1","DX IY0"],"feature_id":"t_flap","original_pronunciation":"siddy","ipa_pronunciation":"sih1dxiy0"},
 {"text":"broken","syllables":[],"feature_id":"stress"}
]`), 0o600), convey.ShouldBeNil)

		store := jsonfile.New(wordPath, statsPath)
		s := New(WithWordStore(store), WithStatsStore(store))
		convey.So(s.Start(ctx), convey.ShouldBeNil)

		convey.Convey("When a session plays and the service stops", func() {
			round, err := s.NextWord(ctx, "cli")
			convey.So(err, convey.ShouldBeNil)
			convey.So(round.Word.Gloss, convey.ShouldEqual, "siddy")

			out, err := s.SubmitAnswer(ctx, Answer{SessionID: "cli", Guess: "skip"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(out.Result.Kind, convey.ShouldEqual, quiz.Skipped)

			_, err = s.AddWord(ctx, AddWordRequest{Text: "feel", Syllables: []string{"F IY1 L"}, FeatureID: catalog.DarkL})
			convey.So(err, convey.ShouldBeNil)
			s.Stop()

			convey.Convey("Then a restarted service sees both words and the skipped round", func() {
				again := New(WithWordStore(store), WithStatsStore(store))
				convey.So(again.Start(ctx), convey.ShouldBeNil)
				defer again.Stop()

				convey.So(len(again.Words(ctx)), convey.ShouldEqual, 2)
				stats := again.Stats()
				convey.So(stats.TotalRounds, convey.ShouldEqual, 1)
				convey.So(stats.TotalSkipped, convey.ShouldEqual, 1)
				convey.So(stats.MostMissed["city"], convey.ShouldEqual, 1)
			})
		})
	})
}
