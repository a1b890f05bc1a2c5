package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/accent/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Storage, convey.ShouldEqual, config.StorageJSON)
			convey.So(cfg.SentencesMin, convey.ShouldEqual, 1)
			convey.So(cfg.SentencesMax, convey.ShouldEqual, 10)
			convey.So(cfg.StressMinSyllables, convey.ShouldEqual, 2)
			convey.So(cfg.RhythmMinSyllables, convey.ShouldEqual, 3)
			convey.So(cfg.Quiz.ShowIPA, convey.ShouldBeTrue)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with bad values", t, func() {
		cases := map[string]func(*config.Config){
			"empty addr":         func(c *config.Config) { c.Addr = "" },
			"unknown storage":    func(c *config.Config) { c.Storage = "s3" },
			"missing word file":  func(c *config.Config) { c.WordFile = "" },
			"missing sqlite":     func(c *config.Config) { c.Storage = config.StorageSQLite; c.SQLitePath = "" },
			"inverted sentences": func(c *config.Config) { c.SentencesMin = 5; c.SentencesMax = 2 },
			"default outside":    func(c *config.Config) { c.SentencesDefault = 11 },
			"zero threshold":     func(c *config.Config) { c.StressMinSyllables = 0 },
			"zero queue":         func(c *config.Config) { c.PersistQueueSize = 0 },
			"negative suggest":   func(c *config.Config) { c.MaxSuggestions = -1 },
		}

		for name, mutate := range cases {
			convey.Convey("When the config has "+name, func() {
				cfg := config.New(context.Background())
				mutate(cfg)

				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}

		convey.Convey("And memory storage needs no paths", func() {
			cfg := config.New(context.Background())
			cfg.Storage = config.StorageMemory
			cfg.WordFile, cfg.StatsFile, cfg.SQLitePath = "", "", ""
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
