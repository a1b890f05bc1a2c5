package cmu_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/okian/accent/internal/adapters/cmu"
	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/detect"
	"github.com/okian/accent/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

const sample = `;;; # CMUdict  --  Major Version: 0.07
;;; comment line
WATER  W AO1 T ER0
WATER(2)  W AA1 T ER0
FEEL  F IY1 L
O'BRIEN  OW0 B R AY1 AH0 N
ABC
banana B AH0 N AE1 N AH0 # new style
`

func TestParse(t *testing.T) {
	ctx := context.Background()

	Convey("Given a dictionary in mixed layouts", t, func() {
		d, err := cmu.Parse(ctx, strings.NewReader(sample))
		So(err, ShouldBeNil)

		Convey("Then comments are skipped and variants grouped", func() {
			So(d.Words(), ShouldResemble, []string{"water", "feel", "o'brien", "banana"})
			So(len(d.Variants("WATER")), ShouldEqual, 2)
			So(d.Malformed(), ShouldEqual, 1)
		})

		Convey("Then lookup returns the first variant", func() {
			tr, err := d.Lookup("Water")
			So(err, ShouldBeNil)
			So(tr.String(), ShouldEqual, "W AO1 T ER0")
		})

		Convey("Then trailing notes are dropped", func() {
			tr, err := d.Lookup("banana")
			So(err, ShouldBeNil)
			So(tr.String(), ShouldEqual, "B AH0 N AE1 N AH0")
		})

		Convey("Then unknown words report ErrNotFound", func() {
			_, err := d.Lookup("zzz")
			So(errors.Is(err, cmu.ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a source with only comments", t, func() {
		_, err := cmu.Parse(ctx, strings.NewReader(";;; nothing\n"))
		So(errors.Is(err, cmu.ErrEmptyDictionary), ShouldBeTrue)
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	Convey("Given an importer over the sample dictionary", t, func() {
		d, err := cmu.Parse(ctx, strings.NewReader(sample))
		So(err, ShouldBeNil)
		im := cmu.NewImporter(detect.New(), cmu.WithRand(rand.New(rand.NewPCG(1, 2))))

		Convey("When importing everything", func() {
			entries, err := im.Import(ctx, d)
			So(err, ShouldBeNil)

			Convey("Then only alphabetic words are kept", func() {
				texts := make([]string, len(entries))
				for i, e := range entries {
					texts[i] = e.Text
				}
				So(texts, ShouldResemble, []string{"water", "feel", "banana"})
			})

			Convey("Then targets follow the priority list", func() {
				So(entries[0].TargetFeature, ShouldEqual, catalog.TFlap)
				So(entries[1].TargetFeature, ShouldEqual, catalog.DarkL)
				So(entries[2].TargetFeature, ShouldEqual, catalog.Stress)
			})

			Convey("Then clip ids are assigned", func() {
				for _, e := range entries {
					So(e.ClipID, ShouldStartWith, "clip")
				}
			})
		})

		Convey("When sampling", func() {
			sampled := cmu.NewImporter(detect.New(), cmu.WithSample(2), cmu.WithClipCount(0))
			entries, err := sampled.Import(ctx, d)

			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 2)
			So(entries[0].ClipID, ShouldBeEmpty)
		})
	})

	Convey("Given words where nothing is detected", t, func() {
		So(cmu.PickFeature("strength", detect.Set{}), ShouldEqual, catalog.Intonation)
		So(cmu.PickFeature("ah", detect.Set{}), ShouldEqual, catalog.Assimilation)
	})
}
