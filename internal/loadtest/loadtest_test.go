package loadtest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/accent/internal/adapters/http/api"
	service "github.com/okian/accent/internal/app"
	"github.com/okian/accent/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	svc := service.New()
	if err := svc.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(svc.Stop)

	mux := http.NewServeMux()
	api.NewServer(svc, api.AppInfo{AppName: "test"}).Register(ctx, mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	convey.Convey("Given a running quiz server", t, func() {
		srv := newTestServer(t)

		convey.Convey("When several sessions play concurrently", func() {
			stats, err := Run(context.Background(), &Config{
				BaseURL:     srv.URL,
				Sessions:    8,
				Rounds:      10,
				Workers:     4,
				ReplayEvery: 3,
				Timeout:     5 * time.Second,
				Seed:        42,
			})

			convey.Convey("Then every answer is judged once and replays are served from cache", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stats.Judged, convey.ShouldEqual, 80)
				convey.So(stats.Replayed, convey.ShouldEqual, 24)
				convey.So(stats.Submitted, convey.ShouldEqual, 104)
				convey.So(stats.After-stats.Before, convey.ShouldEqual, 80)
				convey.So(stats.Failed, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the server is unreachable", func() {
			_, err := Run(context.Background(), &Config{BaseURL: "http://127.0.0.1:1", Sessions: 1, Rounds: 1, Timeout: time.Second})
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestVerify(t *testing.T) {
	convey.Convey("Given run statistics", t, func() {
		convey.Convey("When the server total grew by the judged count", func() {
			convey.So(verify(&Stats{Judged: 3, Correct: 1, Wrong: 1, Skipped: 1, Before: 10, After: 13}), convey.ShouldBeNil)
		})

		convey.Convey("When a replay was scored again", func() {
			err := verify(&Stats{Judged: 3, Correct: 1, Wrong: 1, Skipped: 1, Before: 10, After: 14})
			convey.So(errors.Is(err, ErrStatsMismatch), convey.ShouldBeTrue)
		})
	})
}
