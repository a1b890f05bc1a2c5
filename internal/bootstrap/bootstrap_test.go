package bootstrap

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/accent/internal/adapters/storage/jsonfile"
	"github.com/okian/accent/internal/adapters/storage/memory"
	"github.com/okian/accent/internal/adapters/storage/sqlite"
	"github.com/okian/accent/internal/config"
	"github.com/okian/accent/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func TestOpenStore(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		cfg := config.New(ctx)
		cfg.WordFile = filepath.Join(dir, "words.json")
		cfg.StatsFile = filepath.Join(dir, "stats.json")
		cfg.SQLitePath = filepath.Join(dir, "accent.db")

		convey.Convey("When storage is json", func() {
			st, err := OpenStore(ctx, cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)
			_, ok := st.(*jsonfile.Store)
			convey.So(ok, convey.ShouldBeTrue)
		})

		convey.Convey("When storage is sqlite", func() {
			cfg.Storage = config.StorageSQLite
			st, err := OpenStore(ctx, cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)
			_, ok := st.(*sqlite.Store)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(st.(io.Closer).Close(), convey.ShouldBeNil)

			_, statErr := os.Stat(cfg.SQLitePath)
			convey.So(statErr, convey.ShouldBeNil)
		})

		convey.Convey("When storage is memory", func() {
			cfg.Storage = config.StorageMemory
			st, err := OpenStore(ctx, cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)
			_, ok := st.(*memory.Store)
			convey.So(ok, convey.ShouldBeTrue)
		})

		convey.Convey("When storage is unknown", func() {
			cfg.Storage = "s3"
			_, err := OpenStore(ctx, cfg, logger.Get())
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

func TestNewService(t *testing.T) {
	convey.Convey("Given a memory config with a dictionary", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		dictPath := filepath.Join(dir, "cmudict.txt")
		convey.So(os.WriteFile(dictPath, []byte(";;; test\nTOMATO  T AH0 M EY1 T OW2\n"), 0o600), convey.ShouldBeNil)

		cfg := config.New(ctx)
		cfg.Storage = config.StorageMemory
		cfg.CMUDictPath = dictPath

		convey.Convey("When the service is built and started", func() {
			svc, err := NewService(ctx, cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			convey.Convey("Then dictionary words resolve", func() {
				p, err := svc.IPA(ctx, "tomato")
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Source, convey.ShouldEqual, "cmudict")
			})

			convey.Convey("And the catalog examples are seeded", func() {
				convey.So(svc.Words(ctx), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When the dictionary file is missing", func() {
			cfg.CMUDictPath = filepath.Join(dir, "absent.txt")
			_, err := NewService(ctx, cfg, logger.Get())
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When no dictionary is configured", func() {
			cfg.CMUDictPath = ""
			d, err := OpenDictionary(ctx, cfg)
			convey.So(err, convey.ShouldBeNil)
			convey.So(d, convey.ShouldBeNil)
		})
	})
}
