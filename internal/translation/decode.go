package translation

import "strings"

// Positions in the top-level response array.
const (
	idxSentences   = 0
	idxVariants    = 1
	idxSourceLang  = 2
	idxSegments    = 5
	idxCorrection  = 7
	idxLangSuggest = 8
	idxSynonyms    = 11
	idxDefinitions = 12
	idxExamples    = 13
	idxSeeAlso     = 14
)

// Decode maps a generic JSON tree onto a Translation. It never fails:
// missing, mistyped, or truncated parts decode to empty values.
func Decode(tree any) *Translation {
	t := &Translation{
		SourceLanguage: String(tree, idxSourceLang),
		Correction:     decodeCorrection(Array(tree, idxCorrection)),
		SeeAlso:        Strings(tree, idxSeeAlso, 0),
	}
	decodeSentences(t, Array(tree, idxSentences))

	t.VariantGroups = decodeEach(Array(tree, idxVariants), decodeVariantGroup)
	t.Segments = decodeEach(Array(tree, idxSegments), decodeSegment)
	t.LanguageSuggestions = decodeLanguageSuggestions(Array(tree, idxLangSuggest))
	t.SynonymGroups = decodeEach(Array(tree, idxSynonyms), decodeSynonymGroup)
	t.DefinitionGroups = decodeEach(Array(tree, idxDefinitions), decodeDefinitionGroup)
	t.Examples = decodeEach(Array(tree, idxExamples, 0), decodeUsageExample)
	return t
}

func decodeEach[T any](items []any, fn func(any) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// decodeSentences concatenates sentence fragments in document order. A
// sentence row is [translated, source, translatedTranslit, sourceTranslit, ...];
// the server sends the transliterations as a separate [null, null, tt, st] row.
func decodeSentences(t *Translation, sentences []any) {
	var translated, source, translatedTranslit, sourceTranslit strings.Builder
	for _, s := range sentences {
		translated.WriteString(String(s, 0))
		source.WriteString(String(s, 1))
		translatedTranslit.WriteString(String(s, 2))
		sourceTranslit.WriteString(String(s, 3))
	}
	t.TranslatedText = translated.String()
	t.SourceText = source.String()
	t.TranslatedTranslit = translatedTranslit.String()
	t.SourceTranslit = sourceTranslit.String()
}

func decodeVariantGroup(v any) VariantGroup {
	g := VariantGroup{
		SpeechPart: String(v, 0),
		Variants:   decodeEach(Array(v, 2), decodeVariant),
	}
	for _, variant := range g.Variants {
		if variant.Weight != nil && *variant.Weight > g.MaxWeight {
			g.MaxWeight = *variant.Weight
		}
	}
	return g
}

func decodeVariant(v any) Variant {
	variant := Variant{
		Translation: String(v, 0),
		Synonyms:    Strings(v, 1),
	}
	if w, ok := Number(v, 3); ok {
		variant.Weight = &w
	}
	return variant
}

func decodeSegment(v any) Segment {
	seg := Segment{Source: String(v, 0)}
	alternatives := Array(v, 2)
	seg.Translations = make([]string, 0, len(alternatives))
	for _, alt := range alternatives {
		if s, ok := At(alt, 0); ok {
			if str, ok := s.(string); ok {
				seg.Translations = append(seg.Translations, str)
			}
		}
	}
	return seg
}

func decodeCorrection(v []any) Correction {
	return Correction{
		HTML: String(v, 0),
		Text: String(v, 1),
	}
}

// decodeLanguageSuggestions zips the code and weight arrays, truncating to
// the shorter one.
func decodeLanguageSuggestions(v []any) []LanguageSuggestion {
	codes := Array(v, 0)
	weights := Array(v, 2)
	n := min(len(codes), len(weights))
	out := make([]LanguageSuggestion, 0, n)
	for i := 0; i < n; i++ {
		w, _ := Number(weights[i])
		out = append(out, LanguageSuggestion{
			Language: String(codes[i]),
			Weight:   w,
		})
	}
	return out
}

func decodeSynonymGroup(v any) SynonymGroup {
	return SynonymGroup{
		SpeechPart: String(v, 0),
		Synonyms:   Strings(v, 1, 0, 0),
		DictEntry:  String(v, 1, 0, 1),
	}
}

func decodeDefinitionGroup(v any) DefinitionGroup {
	return DefinitionGroup{
		SpeechPart:  String(v, 0),
		Definitions: decodeEach(Array(v, 1), decodeDefinition),
	}
}

func decodeDefinition(v any) Definition {
	return Definition{
		Text:      String(v, 0),
		DictEntry: String(v, 1),
		Example:   String(v, 2),
	}
}

func decodeUsageExample(v any) UsageExample {
	return UsageExample{
		HTML:      String(v, 0),
		DictEntry: String(v, 5),
	}
}
