package quiz

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/okian/accent/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestRecordOutcome(t *testing.T) {
	convey.Convey("Given a manager logging at debug level", t, func() {
		_ = logger.Init()
		logger.SetLevel(slog.LevelDebug)
		defer logger.SetLevel(slog.LevelInfo)

		var buf bytes.Buffer
		m := New(nil, nil, WithLogger(logger.New(logger.WithWriter(&buf))))

		convey.Convey("When an outcome has no metric label", func() {
			m.recordOutcome(context.Background(), FeedbackKind(42))

			convey.Convey("Then the failure is logged", func() {
				convey.So(buf.String(), convey.ShouldContainSubstring, "round outcome not recorded")
			})
		})

		convey.Convey("When the outcome is known", func() {
			m.recordOutcome(context.Background(), Correct)
			convey.So(buf.String(), convey.ShouldBeEmpty)
		})
	})
}
