package storage_test

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/okian/accent/internal/adapters/storage"
	"github.com/okian/accent/internal/domain/catalog"
	"github.com/okian/accent/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWordRecord(t *testing.T) {
	Convey("Given word records in the generated file format", t, func() {
		raw := `[
  {"text": "water", "clip_id": "clip3", "syllables": ["W AA1", "DX ER0"],
   "original_pronunciation": false, "ipa_pronunciation": "waa1dxer0", "feature_id": "t_flap"},
  {"text": "Feel", "syllables": ["F IY1 L"], "original_pronunciation": "feeul",
   "ipa_pronunciation": "fiːɫ", "feature_id": "dark_l"},
  {"text": "xyz", "syllables": ["Z"], "feature_id": "other"},
  {"text": "blank", "syllables": [], "feature_id": "stress"}
]`
		var recs []storage.WordRecord
		So(json.Unmarshal([]byte(raw), &recs), ShouldBeNil)

		Convey("When decoding them", func() {
			entries, skipped := storage.Decode(recs)

			Convey("Then valid records become entries", func() {
				So(len(entries), ShouldEqual, 2)
				So(entries[0].Text, ShouldEqual, "water")
				So(entries[0].Gloss, ShouldEqual, "")
				So(entries[0].ClipID, ShouldEqual, "clip3")
				So(entries[0].DisplayIPA(), ShouldEqual, "/wˈɑɾɚ/")

				So(entries[1].Text, ShouldEqual, "feel")
				So(entries[1].Gloss, ShouldEqual, "feeul")
				So(entries[1].DisplayIPA(), ShouldEqual, "fiːɫ")
			})

			Convey("And invalid records are reported, not fatal", func() {
				So(len(skipped), ShouldEqual, 2)
				So(skipped[0].Text, ShouldEqual, "xyz")
				So(errors.Is(skipped[0].Err, catalog.ErrUnknownFeature), ShouldBeTrue)
				So(skipped[1].Index, ShouldEqual, 3)
				So(errors.Is(skipped[1].Err, model.ErrInvalidWord), ShouldBeTrue)
			})
		})

		Convey("When a gloss has the wrong type", func() {
			var r storage.WordRecord
			err := json.Unmarshal([]byte(`{"text":"a","original_pronunciation":[1]}`), &r)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a YAML word list", t, func() {
		raw := `
- text: city
  syllables: ["S IH1", "DX IY0"]
  feature_id: t_flap
  original_pronunciation: true
- text: car
  syllables: ["K AA1 R"]
  feature_id: r_coloring
  original_pronunciation: kar
`
		var recs []storage.WordRecord
		So(yaml.Unmarshal([]byte(raw), &recs), ShouldBeNil)

		entries, skipped := storage.Decode(recs)
		So(skipped, ShouldBeEmpty)
		So(entries[0].Gloss, ShouldEqual, "")
		So(entries[1].Gloss, ShouldEqual, "kar")
	})

	Convey("Given an entry", t, func() {
		recs := []storage.WordRecord{{Text: "city", Syllables: []string{"S IH1", "DX IY0"}, FeatureID: catalog.TFlap, ClipID: "c1"}}
		entries, _ := storage.Decode(recs)

		Convey("When converting it back", func() {
			So(storage.FromEntry(entries[0]), ShouldResemble, recs[0])
		})
	})
}
