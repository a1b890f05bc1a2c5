package progress_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/okian/accent/internal/domain/progress"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	Convey("Given a new tracker", t, func() {
		var changes atomic.Int64
		tr := progress.New(progress.WithOnChange(func() { changes.Add(1) }))

		Convey("When N correct attempts are saved", func() {
			for i := 0; i < 5; i++ {
				tr.SaveAttempt("water", true, "t_flap")
			}
			s := tr.Stats()

			Convey("Then totals grow by exactly N", func() {
				So(s.TotalRounds, ShouldEqual, 5)
				So(s.TotalCorrect, ShouldEqual, 5)
				So(s.CorrectPerFeature["t_flap"], ShouldEqual, 5)
				So(s.AttemptsPerWord["water"], ShouldEqual, 5)
				So(s.MostMissed, ShouldBeEmpty)
				So(s.Accuracy(), ShouldEqual, 100.0)
				So(changes.Load(), ShouldEqual, 5)
			})
		})

		Convey("When wrong and skipped attempts are saved", func() {
			tr.SaveAttempt("feel", false, "stress")
			tr.SaveAttempt("feel", false, progress.SkipGuess)
			tr.SaveAttempt("city", true, "t_flap")
			s := tr.Stats()

			Convey("Then misses and skips are tallied separately", func() {
				So(s.TotalRounds, ShouldEqual, 3)
				So(s.TotalCorrect, ShouldEqual, 1)
				So(s.TotalSkipped, ShouldEqual, 1)
				So(s.MostMissed["feel"], ShouldEqual, 2)
				So(s.CorrectPerFeature, ShouldResemble, map[string]int{"t_flap": 1})
				So(s.Accuracy(), ShouldEqual, 33.3)
			})
		})

		Convey("When a snapshot is mutated", func() {
			tr.SaveAttempt("water", true, "t_flap")
			s := tr.Stats()
			s.TotalRounds = 99
			s.AttemptsPerWord["water"] = 99

			Convey("Then the tracker is unaffected", func() {
				again := tr.Stats()
				So(again.TotalRounds, ShouldEqual, 1)
				So(again.AttemptsPerWord["water"], ShouldEqual, 1)
			})
		})

		Convey("When reading twice without a mutation", func() {
			tr.SaveAttempt("water", false, "stress")
			So(tr.Stats(), ShouldResemble, tr.Stats())
		})

		Convey("When reset", func() {
			tr.SaveAttempt("water", true, "t_flap")
			tr.Reset()

			So(tr.Stats(), ShouldResemble, progress.NewStats())
			So(changes.Load(), ShouldEqual, 2)
		})

		Convey("When restored from persisted values", func() {
			tr.Restore(progress.Stats{TotalRounds: 4, TotalCorrect: 3})
			tr.SaveAttempt("water", true, "t_flap")
			s := tr.Stats()

			Convey("Then counting continues from them without firing the hook", func() {
				So(s.TotalRounds, ShouldEqual, 5)
				So(s.TotalCorrect, ShouldEqual, 4)
				So(changes.Load(), ShouldEqual, 1)
			})
		})

		Convey("When many goroutines save concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 20; j++ {
						tr.SaveAttempt("water", j%2 == 0, "t_flap")
					}
				}()
			}
			wg.Wait()

			Convey("Then no increment is lost", func() {
				s := tr.Stats()
				So(s.TotalRounds, ShouldEqual, 1000)
				So(s.TotalCorrect, ShouldEqual, 500)
				So(s.MostMissed["water"], ShouldEqual, 500)
			})
		})
	})
}

func TestTopMissed(t *testing.T) {
	Convey("Given missed words with ties", t, func() {
		s := progress.Stats{MostMissed: map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}}

		Convey("Then they sort by count then word", func() {
			So(s.TopMissed(3), ShouldResemble, []progress.Count{
				{Key: "c", Count: 5}, {Key: "a", Count: 2}, {Key: "b", Count: 2},
			})
			So(len(s.TopMissed(0)), ShouldEqual, 4)
		})
	})
}
