// Package notify prepares translations of the current X selection for a
// desktop popup.
package notify

import (
	"fmt"
	"strings"

	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/translation"
)

// Message is the content of one popup.
type Message struct {
	Summary     string
	Translation string
	// Emphasize is set when variant groups follow the translation.
	Emphasize bool
	Translit  string
	// Variants holds one "<speech part>s: v1, v2" line per group.
	Variants []string
	SeeAlso  []string
}

// Options returns the request options for a popup lookup.
func Options(translit bool, seeAlso SeeAlso) gtclient.Options {
	return gtclient.Options{
		IncludeTranslation: true,
		IncludeTranslit:    translit,
		IncludeVariants:    true,
		IncludeSeeAlso:     seeAlso.Enabled(),
		SuggestLanguage:    true,
	}
}

// Build lays out tr. requestedSource is the language the user asked for,
// so "auto" lookups show the detected language.
func Build(tr *translation.Translation, requestedSource string, seeAlso SeeAlso) Message {
	m := Message{
		Translation: tr.TranslatedText,
		Emphasize:   len(tr.VariantGroups) > 0,
		Translit:    tr.TranslatedTranslit,
		SeeAlso:     seeAlso.Slice(tr.SeeAlso),
	}
	if requestedSource == language.Auto {
		m.Summary = fmt.Sprintf("(Language detected: %s)", tr.SourceLanguage)
	}
	for _, g := range tr.VariantGroups {
		m.Variants = append(m.Variants, fmt.Sprintf("%ss: %s", g.SpeechPart, strings.Join(g.VariantTranslations(), ", ")))
	}
	return m
}

// Body renders m as plain text for a system notification.
func (m Message) Body() string {
	var b strings.Builder
	b.WriteString(m.Translation)
	if m.Translit != "" {
		b.WriteString("\n" + m.Translit)
	}
	for _, v := range m.Variants {
		b.WriteString("\n\n" + v)
	}
	return b.String()
}

// Params is one pending lookup.
type Params struct {
	SourceLang string
	TargetLang string
	Text       string
}

// Queue holds lookups in the order they were requested. Choosing a see-also
// entry appends a lookup for that word.
type Queue struct {
	items []Params
}

func NewQueue(first Params) *Queue {
	return &Queue{items: []Params{first}}
}

func (q *Queue) Push(p Params) {
	q.items = append(q.items, p)
}

// Next removes and returns the oldest pending lookup.
func (q *Queue) Next() (Params, bool) {
	if len(q.items) == 0 {
		return Params{}, false
	}
	p := q.items[0]
	q.items = q.items[1:]
	return p, true
}

func (q *Queue) Len() int { return len(q.items) }
