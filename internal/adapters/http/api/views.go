package api

import (
	"github.com/okian/accent/internal/domain/model"
	"github.com/okian/accent/internal/domain/quiz"
)

// wordView is the wire form of a quiz word.
type wordView struct {
	Text                  string   `json:"text"`
	Syllables             []string `json:"syllables"`
	FeatureID             string   `json:"feature_id"`
	OriginalPronunciation string   `json:"original_pronunciation"`
	IPA                   string   `json:"ipa"`
	ClipID                string   `json:"clip_id,omitempty"`
}

func newWordView(w model.WordEntry) wordView {
	syllables := w.Syllables
	if syllables == nil {
		syllables = []string{}
	}
	return wordView{
		Text:                  w.Text,
		Syllables:             syllables,
		FeatureID:             w.TargetFeature,
		OriginalPronunciation: w.Gloss,
		IPA:                   w.DisplayIPA(),
		ClipID:                w.ClipID,
	}
}

func newWordViews(words []model.WordEntry) []wordView {
	out := make([]wordView, len(words))
	for i, w := range words {
		out[i] = newWordView(w)
	}
	return out
}

type roundView struct {
	SessionID string   `json:"session_id"`
	Round     uint64   `json:"round"`
	Word      wordView `json:"word"`
}

func newRoundView(r quiz.Round) roundView {
	return roundView{SessionID: r.SessionID, Round: r.Number, Word: newWordView(r.Word)}
}
