package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metrics register under the custom names", func() {
				So(manager, ShouldNotBeNil)
				manager.wordsServed.Inc()

				families, err := registry.Gather()
				So(err, ShouldBeNil)

				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_unit_words_served_total"], ShouldBeTrue)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording round outcomes", func() {
			before := testutil.ToFloat64(globalManager.roundsTotal.WithLabelValues(OutcomeCorrect))
			So(RecordRound(OutcomeCorrect), ShouldBeNil)

			Convey("Then the outcome counter increases", func() {
				after := testutil.ToFloat64(globalManager.roundsTotal.WithLabelValues(OutcomeCorrect))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When recording an unknown outcome", func() {
			err := RecordRound("maybe")
			So(errors.Is(err, ErrUnknownOutcome), ShouldBeTrue)
		})

		Convey("When recording persistence results", func() {
			writes := testutil.ToFloat64(globalManager.persistWrites)
			failures := testutil.ToFloat64(globalManager.persistErrors)

			RecordPersist(1.5, 1700000000, nil)
			RecordPersist(2.5, 1700000001, errors.New("disk full"))

			So(testutil.ToFloat64(globalManager.persistWrites)-writes, ShouldEqual, 1)
			So(testutil.ToFloat64(globalManager.persistErrors)-failures, ShouldEqual, 1)
			So(testutil.ToFloat64(globalManager.persistLastUnix), ShouldEqual, 1700000000)
		})

		Convey("When setting gauges", func() {
			UpdateRepositoryWords(42)
			UpdateActiveSessions(3)
			UpdateQueueCapacity(8)

			So(testutil.ToFloat64(globalManager.repositoryWords), ShouldEqual, 42)
			So(testutil.ToFloat64(globalManager.activeSessions), ShouldEqual, 3)
			So(testutil.ToFloat64(globalManager.queueCapacity), ShouldEqual, 8)
		})

		Convey("When recording the remaining counters", func() {
			So(func() {
				RecordWordServed()
				RecordDuplicateAnswer()
				RecordDetection("stress")
				RecordWordAdded()
				RecordLookupMiss()
				RecordRepositoryError("duplicate")
				UpdateQueueSize(1)
				RecordQueueEnqueue()
				RecordQueueCoalesced()
				RecordWordStoreWrite(nil)
				RecordHTTPRequest("/features", "GET", "200")
				RecordHTTPRequestDuration("/features", "GET", "200", 1.2)
				RecordErrorByEndpoint("/words", "POST", "conflict")
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(10)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("When reading the registry", func() {
			So(GetRegistry(), ShouldEqual, customRegistry)
		})
	})
}
