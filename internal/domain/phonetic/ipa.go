package phonetic

import "strings"

// arpabetIPA maps ARPAbet base symbols to IPA.
var arpabetIPA = map[string]string{
	// Consonants
	"B": "b", "P": "p", "T": "t", "D": "d", "K": "k", "G": "ɡ",
	"CH": "tʃ", "JH": "dʒ", "F": "f", "V": "v", "TH": "θ", "DH": "ð",
	"S": "s", "Z": "z", "SH": "ʃ", "ZH": "ʒ", "HH": "h",
	"M": "m", "N": "n", "NG": "ŋ", "L": "l", "R": "ɹ", "Y": "j", "W": "w",
	"DX": "ɾ", "Q": "ʔ", "EL": "l̩", "EM": "m̩", "EN": "n̩",
	// Vowels
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ", "AW": "aʊ", "AY": "aɪ",
	"EH": "ɛ", "ER": "ɝ", "EY": "eɪ", "IH": "ɪ", "IY": "i",
	"OW": "oʊ", "OY": "ɔɪ", "UH": "ʊ", "UW": "u", "AX": "ə", "AXR": "ɚ",
	"IX": "ɨ", "UX": "ʉ",
}

// IPA renders t as a slash-delimited IPA string. Primary and secondary
// stress become ˈ and ˌ before the stressed vowel; unstressed AH and ER are
// written as their reduced forms ə and ɚ. Unknown symbols pass through in
// lower case and boundaries become spaces.
func (t Transcription) IPA() string {
	var b strings.Builder
	b.WriteByte('/')
	for _, u := range t.units {
		if u.IsBoundary() {
			b.WriteByte(' ')
			continue
		}
		switch u.stress {
		case StressPrimary:
			b.WriteString("ˈ")
		case StressSecondary:
			b.WriteString("ˌ")
		}
		b.WriteString(unitIPA(u))
	}
	b.WriteByte('/')
	return b.String()
}

func unitIPA(u Unit) string {
	if u.stress == StressNone && u.IsVowel() {
		switch u.base {
		case "AH":
			return "ə"
		case "ER":
			return "ɚ"
		}
	}
	if ipa, ok := arpabetIPA[u.base]; ok {
		return ipa
	}
	return strings.ToLower(u.base)
}
