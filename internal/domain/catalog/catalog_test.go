package catalog_test

import (
	"errors"
	"testing"

	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/phonetic"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given the feature catalog", t, func() {
		Convey("When listing ids", func() {
			ids := catalog.IDs()

			Convey("Then all thirteen features are present in declaration order", func() {
				So(ids, ShouldResemble, []string{
					"stress", "rhythm", "reduction", "linking", "assimilation",
					"t_flap", "dark_l", "glottalization", "r_coloring",
					"aspiration", "nasal_flap", "intonation", "contractions",
				})
			})
		})

		Convey("When listing summaries", func() {
			list := catalog.List()

			So(len(list), ShouldEqual, 13)
			So(list[5].ID, ShouldEqual, catalog.TFlap)
			So(list[5].Name, ShouldEqual, "T/D Flapping")
		})

		Convey("When getting a known feature", func() {
			def, err := catalog.Get(catalog.DarkL)

			Convey("Then the full definition is returned", func() {
				So(err, ShouldBeNil)
				So(def.Name, ShouldEqual, "Dark L (Velarization)")
				So(def.Rules, ShouldNotBeEmpty)
				So(def.CommonMistakes, ShouldNotBeEmpty)
				So(def.Examples[0].Word, ShouldEqual, "feel")
			})

			Convey("And mutating it does not leak into the catalog", func() {
				def.Examples[0].Word = "mutated"
				def.Rules[0] = "mutated"

				again, _ := catalog.Get(catalog.DarkL)
				So(again.Examples[0].Word, ShouldEqual, "feel")
				So(again.Rules[0], ShouldNotEqual, "mutated")
			})
		})

		Convey("When getting an unknown feature", func() {
			_, err := catalog.Get("vibrato")
			_, exErr := catalog.Examples("vibrato")

			Convey("Then ErrUnknownFeature is returned", func() {
				So(errors.Is(err, catalog.ErrUnknownFeature), ShouldBeTrue)
				So(errors.Is(exErr, catalog.ErrUnknownFeature), ShouldBeTrue)
				So(catalog.Has("vibrato"), ShouldBeFalse)
				So(catalog.Has(catalog.Intonation), ShouldBeTrue)
			})
		})

		Convey("When reading every example transcription", func() {
			Convey("Then each one parses", func() {
				for _, def := range catalog.All() {
					for _, ex := range def.Examples {
						_, err := phonetic.Parse(ex.Transcription)
						So(err, ShouldBeNil)
					}
				}
			})
		})
	})
}
