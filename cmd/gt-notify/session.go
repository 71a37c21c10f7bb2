package main

import (
	"context"
	"strings"
	"sync"

	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/notify"
	"github.com/oukeidos/gt/internal/translation"
)

type translator interface {
	Translate(ctx context.Context, sourceLang, targetLang, text string, opts gtclient.Options) (*translation.Translation, error)
}

var readSelection = notify.ReadSelection

// session runs the lookups of one gt-notify invocation. The first lookup
// translates the selection; each chosen see-also entry queues another.
type session struct {
	tr       translator
	translit bool
	seeAlso  notify.SeeAlso

	mu    sync.Mutex
	queue *notify.Queue
}

func newSession(tr translator, opts options, text string) *session {
	return &session{
		tr:       tr,
		translit: opts.translit,
		seeAlso:  opts.seeAlso,
		queue: notify.NewQueue(notify.Params{
			SourceLang: opts.sourceLang,
			TargetLang: opts.targetLang,
			Text:       strings.TrimSpace(text),
		}),
	}
}

// next pops the oldest pending lookup.
func (s *session) next() (notify.Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Next()
}

// follow queues word in the language pair of the lookup that listed it.
func (s *session) follow(from notify.Params, word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Push(notify.Params{
		SourceLang: from.SourceLang,
		TargetLang: from.TargetLang,
		Text:       word,
	})
}

func (s *session) lookup(ctx context.Context, p notify.Params) (notify.Message, error) {
	tr, err := s.tr.Translate(ctx, p.SourceLang, p.TargetLang, p.Text, notify.Options(s.translit, s.seeAlso))
	if err != nil {
		return notify.Message{}, err
	}
	return notify.Build(tr, p.SourceLang, s.seeAlso), nil
}

// selectionText reads sel via xsel. The clipboard falls back to fallback
// when xsel is unavailable.
func selectionText(ctx context.Context, sel string, fallback func() string) (string, error) {
	text, err := readSelection(ctx, sel)
	if err != nil && sel == "clipboard" && fallback != nil {
		return fallback(), nil
	}
	return text, err
}
