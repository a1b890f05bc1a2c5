// Package catalog is the read-only registry of American English
// pronunciation features and their teaching material.
package catalog

import "fmt"

// Feature ids in declaration order.
const (
	Stress         = "stress"
	Rhythm         = "rhythm"
	Reduction      = "reduction"
	Linking        = "linking"
	Assimilation   = "assimilation"
	TFlap          = "t_flap"
	DarkL          = "dark_l"
	Glottalization = "glottalization"
	RColoring      = "r_coloring"
	Aspiration     = "aspiration"
	NasalFlap      = "nasal_flap"
	Intonation     = "intonation"
	Contractions   = "contractions"
)

// Example is one demonstration word for a feature.
type Example struct {
	Word          string `json:"word"`
	Transcription string `json:"syllables"`
	Note          string `json:"note"`
}

// FeatureDefinition describes one pronunciation feature.
type FeatureDefinition struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Explanation    string    `json:"explanation"`
	Rules          []string  `json:"rules"`
	Examples       []Example `json:"examples"`
	CommonMistakes []string  `json:"common_mistakes"`
}

// Summary is the short listing form of a feature.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// byID indexes definitions; built once from the declaration table.
var byID = func() map[string]int {
	m := make(map[string]int, len(definitions))
	for i, d := range definitions {
		if _, dup := m[d.ID]; dup {
			panic("catalog: duplicate feature id " + d.ID)
		}
		m[d.ID] = i
	}
	return m
}()

// Get returns the definition for id.
func Get(id string) (FeatureDefinition, error) {
	i, ok := byID[id]
	if !ok {
		return FeatureDefinition{}, fmt.Errorf("%w: %q", ErrUnknownFeature, id)
	}
	return definitions[i].clone(), nil
}

// Has reports whether id names a catalog feature.
func Has(id string) bool {
	_, ok := byID[id]
	return ok
}

// List returns every feature summary in declaration order.
func List() []Summary {
	out := make([]Summary, len(definitions))
	for i, d := range definitions {
		out[i] = Summary{ID: d.ID, Name: d.Name, Description: d.Description}
	}
	return out
}

// IDs returns every feature id in declaration order.
func IDs() []string {
	out := make([]string, len(definitions))
	for i, d := range definitions {
		out[i] = d.ID
	}
	return out
}

// Examples returns the example words for id.
func Examples(id string) ([]Example, error) {
	d, err := Get(id)
	if err != nil {
		return nil, err
	}
	return d.Examples, nil
}

// All returns the complete guide in declaration order.
func All() []FeatureDefinition {
	out := make([]FeatureDefinition, len(definitions))
	for i, d := range definitions {
		out[i] = d.clone()
	}
	return out
}

func (d FeatureDefinition) clone() FeatureDefinition {
	d.Rules = append([]string(nil), d.Rules...)
	d.Examples = append([]Example(nil), d.Examples...)
	d.CommonMistakes = append([]string(nil), d.CommonMistakes...)
	return d
}
