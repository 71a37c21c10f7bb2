// Package translation holds the typed translation result and the decoder
// that maps the endpoint's positional array response onto it.
//
// Every field is optional on the wire. Absent strings decode to "", absent
// lists to empty slices, and absent weights to nil.
package translation

import "strings"

// Translation is the decoded result of one request.
type Translation struct {
	TranslatedText      string               `json:"translated_text"`
	SourceText          string               `json:"source_text"`
	TranslatedTranslit  string               `json:"translated_translit,omitempty"`
	SourceTranslit      string               `json:"source_translit,omitempty"`
	SourceLanguage      string               `json:"source_language,omitempty"`
	VariantGroups       []VariantGroup       `json:"variant_groups"`
	Segments            []Segment            `json:"segments"`
	Correction          Correction           `json:"correction"`
	LanguageSuggestions []LanguageSuggestion `json:"language_suggestions"`
	SynonymGroups       []SynonymGroup       `json:"synonym_groups"`
	DefinitionGroups    []DefinitionGroup    `json:"definition_groups"`
	Examples            []UsageExample       `json:"examples"`
	SeeAlso             []string             `json:"see_also"`
}

// VariantGroup lists alternative translations for one speech part.
type VariantGroup struct {
	SpeechPart string    `json:"speech_part,omitempty"`
	Variants   []Variant `json:"variants"`
	// MaxWeight is the largest present variant weight, or 0.
	MaxWeight float64 `json:"max_weight"`
}

type Variant struct {
	Translation string   `json:"translation,omitempty"`
	Synonyms    []string `json:"synonyms"`
	Weight      *float64 `json:"weight,omitempty"`
}

// Segment is one source span with its own alternatives.
type Segment struct {
	Source       string   `json:"source,omitempty"`
	Translations []string `json:"translations"`
}

// Correction is a typo-fix suggestion. Text may be set without HTML, e.g.
// when the server only switches the writing system.
type Correction struct {
	HTML string `json:"html,omitempty"`
	Text string `json:"text,omitempty"`
}

// Corrected reports whether the server suggested different text.
func (c Correction) Corrected() bool {
	return c.Text != ""
}

// TypoCount returns the number of highlighted spans in the HTML form.
func (c Correction) TypoCount() int {
	return strings.Count(c.HTML, "<b><i>")
}

type LanguageSuggestion struct {
	Language string  `json:"language"`
	Weight   float64 `json:"weight"`
}

type SynonymGroup struct {
	SpeechPart string   `json:"speech_part,omitempty"`
	Synonyms   []string `json:"synonyms"`
	DictEntry  string   `json:"dict_entry,omitempty"`
}

type DefinitionGroup struct {
	SpeechPart  string       `json:"speech_part,omitempty"`
	Definitions []Definition `json:"definitions"`
}

type Definition struct {
	Text      string `json:"text,omitempty"`
	DictEntry string `json:"dict_entry,omitempty"`
	Example   string `json:"example,omitempty"`
}

// UsageExample holds an example sentence; the queried word is wrapped in <b>.
type UsageExample struct {
	HTML      string `json:"html,omitempty"`
	DictEntry string `json:"dict_entry,omitempty"`
}

// SuggestedLanguages returns the language codes of the suggestions in order.
func (t *Translation) SuggestedLanguages() []string {
	out := make([]string, 0, len(t.LanguageSuggestions))
	for _, s := range t.LanguageSuggestions {
		out = append(out, s.Language)
	}
	return out
}

// VariantTranslations returns the translations of g's variants in order.
func (g VariantGroup) VariantTranslations() []string {
	out := make([]string, 0, len(g.Variants))
	for _, v := range g.Variants {
		out = append(out, v.Translation)
	}
	return out
}
