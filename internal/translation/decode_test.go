package translation

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/oukeidos/gt/internal/semijson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string) any {
	t.Helper()
	var tree any
	require.NoError(t, json.Unmarshal([]byte(semijson.Repair(raw)), &tree))
	return tree
}

func TestDecode_Sentences(t *testing.T) {
	tr := Decode(parse(t, `[[["simultaneous","одновременный"]]]`))

	assert.Equal(t, "simultaneous", tr.TranslatedText)
	assert.Equal(t, "одновременный", tr.SourceText)
	assert.Empty(t, tr.TranslatedTranslit)
	assert.Empty(t, tr.SourceTranslit)
}

func TestDecode_SentencesWithTransliteration(t *testing.T) {
	raw := `[[["Здравствуйте","hello",,,1],[,,"Zdravstvuyte","heˈlō,həˈlō"]],,"en"]`
	tr := Decode(parse(t, raw))

	assert.Equal(t, "Здравствуйте", tr.TranslatedText)
	assert.Equal(t, "hello", tr.SourceText)
	assert.Equal(t, "Zdravstvuyte", tr.TranslatedTranslit)
	assert.Equal(t, "heˈlō,həˈlō", tr.SourceTranslit)
	assert.Equal(t, "en", tr.SourceLanguage)
}

func TestDecode_MultipleSentencesConcatenate(t *testing.T) {
	raw := `[[["One. ","Один. "],["Two.","Два."],"junk",[1,2]]]`
	tr := Decode(parse(t, raw))

	assert.Equal(t, "One. Two.", tr.TranslatedText)
	assert.Equal(t, "Один. Два.", tr.SourceText)
}

func TestDecode_VariantGroup(t *testing.T) {
	raw := `[[],[["noun",0,[["jar",["container","vessel"],0,5]]]]]`
	tr := Decode(parse(t, raw))

	require.Len(t, tr.VariantGroups, 1)
	g := tr.VariantGroups[0]
	assert.Equal(t, "noun", g.SpeechPart)
	require.Len(t, g.Variants, 1)
	assert.Equal(t, "jar", g.Variants[0].Translation)
	assert.Equal(t, []string{"container", "vessel"}, g.Variants[0].Synonyms)
	require.NotNil(t, g.Variants[0].Weight)
	assert.Equal(t, 5.0, *g.Variants[0].Weight)
	assert.Equal(t, 5.0, g.MaxWeight)
	assert.Equal(t, []string{"jar"}, g.VariantTranslations())
}

func TestDecode_VariantMaxWeight(t *testing.T) {
	raw := `[[],[["verb",,[["a",[],,0.25],["b",[],,0.75],["c"],["d",,,"heavy"]]],["adverb",,[["e"]]]]]`
	tr := Decode(parse(t, raw))

	require.Len(t, tr.VariantGroups, 2)
	verbs := tr.VariantGroups[0]
	assert.Equal(t, 0.75, verbs.MaxWeight)
	require.Len(t, verbs.Variants, 4)
	assert.Nil(t, verbs.Variants[2].Weight)
	assert.Nil(t, verbs.Variants[3].Weight, "non-numeric weight is absent")
	assert.Empty(t, verbs.Variants[2].Synonyms)

	assert.Equal(t, 0.0, tr.VariantGroups[1].MaxWeight, "no weights present")
}

func TestDecode_Correction(t *testing.T) {
	tr := Decode(parse(t, `[[],,,,,,,["<b><i>hello</i></b>","hello"]]`))
	assert.Equal(t, "<b><i>hello</i></b>", tr.Correction.HTML)
	assert.Equal(t, "hello", tr.Correction.Text)
	assert.True(t, tr.Correction.Corrected())
	assert.Equal(t, 1, tr.Correction.TypoCount())

	for _, raw := range []string{`[[],,,,,,,null]`, `[[]]`, `[[],,,,,,,"oops"]`} {
		tr := Decode(parse(t, raw))
		assert.Empty(t, tr.Correction.HTML, raw)
		assert.Empty(t, tr.Correction.Text, raw)
		assert.False(t, tr.Correction.Corrected(), raw)
	}
}

func TestDecode_CorrectionTextWithoutHTML(t *testing.T) {
	tr := Decode(parse(t, `[[],,,,,,,[,"privet"]]`))
	assert.Empty(t, tr.Correction.HTML)
	assert.Equal(t, "privet", tr.Correction.Text)
	assert.Equal(t, 0, tr.Correction.TypoCount())
}

func TestDecode_Segments(t *testing.T) {
	raw := `[[],,,,,[["hello",,[["привет",,true,false],["здравствуйте",,true,false],[]]],[,,"bad"]]]`
	tr := Decode(parse(t, raw))

	require.Len(t, tr.Segments, 2)
	assert.Equal(t, "hello", tr.Segments[0].Source)
	assert.Equal(t, []string{"привет", "здравствуйте"}, tr.Segments[0].Translations)
	assert.Empty(t, tr.Segments[1].Source)
	assert.Empty(t, tr.Segments[1].Translations)
}

func TestDecode_LanguageSuggestions(t *testing.T) {
	raw := `[[],,,,,,,,[["en","de","fr"],,[0.9,0.1],["en"]]]`
	tr := Decode(parse(t, raw))

	assert.Equal(t, []LanguageSuggestion{
		{Language: "en", Weight: 0.9},
		{Language: "de", Weight: 0.1},
	}, tr.LanguageSuggestions)
	assert.Equal(t, []string{"en", "de"}, tr.SuggestedLanguages())
}

func TestDecode_SynonymsDefinitionsExamplesSeeAlso(t *testing.T) {
	raw := `[[],,,,,,,,,,,` +
		`[["exclamation",[[["hi","hey"],"m_en_us1"]],"hello"]],` +
		`[["noun",[["an utterance of hello","m_en_us2","she was getting polite nods and hellos"]],"hello"],["verb",[["say or shout hello","m_en_us3"]]]],` +
		`[[["<b>hello</b> there",,,,3,"m_en_us4"],["bare"]]],` +
		`[["hello world","hullo",7]]]`
	tr := Decode(parse(t, raw))

	require.Len(t, tr.SynonymGroups, 1)
	assert.Equal(t, SynonymGroup{SpeechPart: "exclamation", Synonyms: []string{"hi", "hey"}, DictEntry: "m_en_us1"}, tr.SynonymGroups[0])

	require.Len(t, tr.DefinitionGroups, 2)
	assert.Equal(t, "noun", tr.DefinitionGroups[0].SpeechPart)
	assert.Equal(t, []Definition{{
		Text:      "an utterance of hello",
		DictEntry: "m_en_us2",
		Example:   "she was getting polite nods and hellos",
	}}, tr.DefinitionGroups[0].Definitions)
	assert.Equal(t, "", tr.DefinitionGroups[1].Definitions[0].Example)

	require.Len(t, tr.Examples, 2)
	assert.Equal(t, UsageExample{HTML: "<b>hello</b> there", DictEntry: "m_en_us4"}, tr.Examples[0])
	assert.Equal(t, UsageExample{HTML: "bare"}, tr.Examples[1])

	assert.Equal(t, []string{"hello world", "hullo"}, tr.SeeAlso)
}

func TestDecode_EmptyInputsHaveSafeDefaults(t *testing.T) {
	for _, tree := range []any{nil, "text", 3.0, true, []any{}, map[string]any{"a": 1.0}} {
		tr := Decode(tree)
		assertWellTyped(t, tr)
		assert.Empty(t, tr.TranslatedText)
		assert.Empty(t, tr.SourceLanguage)
	}
}

func TestDecode_NeverPanicsOnRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		tree := randomTree(rng, 0)
		require.NotPanics(t, func() {
			assertWellTyped(t, Decode(tree))
		})
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(`[[["simultaneous","одновременный"]]]`)
	f.Add(`[[],[["noun",0,[["jar",["container","vessel"],0,5]]]]]`)
	f.Add(`[[],,,,,,,["<b><i>hello</i></b>","hello"],[[1],,["x"]]]`)
	f.Add(`[1,[2,[3,,]],,]`)
	f.Fuzz(func(t *testing.T, raw string) {
		var tree any
		if err := json.Unmarshal([]byte(semijson.Repair(raw)), &tree); err != nil {
			return
		}
		assertWellTyped(t, Decode(tree))
	})
}

func assertWellTyped(t *testing.T, tr *Translation) {
	t.Helper()
	require.NotNil(t, tr)
	assert.NotNil(t, tr.VariantGroups)
	assert.NotNil(t, tr.Segments)
	assert.NotNil(t, tr.LanguageSuggestions)
	assert.NotNil(t, tr.SynonymGroups)
	assert.NotNil(t, tr.DefinitionGroups)
	assert.NotNil(t, tr.Examples)
	assert.NotNil(t, tr.SeeAlso)
	for _, g := range tr.VariantGroups {
		assert.NotNil(t, g.Variants)
		assert.GreaterOrEqual(t, g.MaxWeight, 0.0)
	}
	_, err := json.Marshal(tr)
	assert.NoError(t, err)
}

// randomTree builds arbitrarily nested arrays of scalars, nulls, and the
// occasional object, biased towards shapes the decoder indexes into.
func randomTree(rng *rand.Rand, depth int) any {
	kind := rng.Intn(10)
	if depth > 5 {
		kind = rng.Intn(5)
	}
	switch kind {
	case 0:
		return nil
	case 1:
		return rng.Intn(2) == 0
	case 2:
		return rng.Float64() * 10
	case 3, 4:
		return []string{"", "noun", "hello", "<b><i>x</i></b>"}[rng.Intn(4)]
	case 5:
		return map[string]any{"k": randomTree(rng, depth+1)}
	default:
		n := rng.Intn(16)
		arr := make([]any, n)
		for i := range arr {
			arr[i] = randomTree(rng, depth+1)
		}
		return arr
	}
}
