package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/gt/internal/apperrors"
	"github.com/oukeidos/gt/internal/config"
	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/logger"
	"github.com/oukeidos/gt/internal/notify"
)

const (
	appID            = "com.oukeidos.gt-notify"
	selectionTimeout = 5 * time.Second
	maxButtonColumns = 3
)

// popupTheme bumps the text size a little for readability at a glance.
type popupTheme struct{ fyne.Theme }

func (m popupTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameText {
		return 16
	}
	return m.Theme.Size(n)
}

// prefStore is the subset of fyne.Preferences used for the language pair.
type prefStore interface {
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
}

// resolveLanguages fills a missing language pair from prefs and remembers
// an explicit one.
func resolveLanguages(prefs prefStore, opts options) options {
	if opts.sourceLang == "" || opts.targetLang == "" {
		opts.sourceLang = prefs.StringWithFallback("SourceLang", language.Auto)
		opts.targetLang = prefs.StringWithFallback("TargetLang", "en")
		return opts
	}
	prefs.SetString("SourceLang", opts.sourceLang)
	prefs.SetString("TargetLang", opts.targetLang)
	return opts
}

type notifyApp struct {
	app           fyne.App
	window        fyne.Window
	tr            translator
	opts          options
	lookupTimeout time.Duration

	session         *session
	closeTimer      *time.Timer
	panicNoticeOnce sync.Once
}

func runApp(cfg *config.Config, opts options) error {
	fa := app.NewWithID(appID)
	fa.Settings().SetTheme(popupTheme{Theme: theme.DefaultTheme()})
	fa.SetIcon(theme.InfoIcon())
	opts = resolveLanguages(fa.Preferences(), opts)

	w := fa.NewWindow("gt")
	w.SetIcon(theme.InfoIcon())
	w.Resize(fyne.NewSize(360, 120))
	w.CenterOnScreen()

	na := &notifyApp{
		app:           fa,
		window:        w,
		tr:            newClient(cfg),
		opts:          opts,
		lookupTimeout: cfg.Timeout,
	}
	na.start()

	if opts.system {
		fa.Run()
		return nil
	}
	w.ShowAndRun()
	return nil
}

// start reads the selection and runs the first lookup.
func (a *notifyApp) start() {
	a.showStatus("Reading selection...")
	a.safeGo("selection", func() {
		ctx, cancel := context.WithTimeout(context.Background(), selectionTimeout)
		defer cancel()
		text, err := selectionText(ctx, a.opts.selection, a.clipboardContent)
		a.safeDo("selection.done", func() {
			if err != nil {
				logger.Error("Failed to read selection", "selection", a.opts.selection, "error", err)
				a.showError(err.Error())
				return
			}
			if strings.TrimSpace(text) == "" {
				a.showError("The " + a.opts.selection + " selection is empty.")
				return
			}
			a.session = newSession(a.tr, a.opts, text)
			a.advance()
		})
	})
}

func (a *notifyApp) clipboardContent() string {
	var text string
	fyne.DoAndWait(func() {
		text = a.app.Clipboard().Content()
	})
	return text
}

// advance shows the next queued lookup, or quits when none is left.
func (a *notifyApp) advance() {
	p, ok := a.session.next()
	if !ok {
		a.app.Quit()
		return
	}
	a.showStatus("Translating...")
	a.safeGo("lookup", func() {
		ctx := context.Background()
		cancel := func() {}
		if a.lookupTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, a.lookupTimeout)
		}
		defer cancel()

		msg, err := a.session.lookup(ctx, p)
		a.safeDo("lookup.done", func() {
			if err != nil {
				logger.Error("Translation failed", "source", p.SourceLang, "target", p.TargetLang, "error", err)
				a.showError(apperrors.PublicMessage(err))
				return
			}
			a.deliver(p, msg)
		})
	})
}

func (a *notifyApp) deliver(p notify.Params, msg notify.Message) {
	if a.opts.system {
		title := "gt"
		if msg.Summary != "" {
			title += " " + msg.Summary
		}
		a.app.SendNotification(fyne.NewNotification(title, msg.Body()))
		a.advance()
		return
	}
	a.render(p, msg)
}

func (a *notifyApp) render(p notify.Params, msg notify.Message) {
	var objs []fyne.CanvasObject
	if msg.Summary != "" {
		objs = append(objs, widget.NewLabelWithStyle(msg.Summary, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
	}

	translated := widget.NewLabelWithStyle(msg.Translation, fyne.TextAlignLeading, fyne.TextStyle{Bold: msg.Emphasize})
	translated.Wrapping = fyne.TextWrapWord
	objs = append(objs, translated)

	if msg.Translit != "" {
		objs = append(objs, widget.NewLabelWithStyle(msg.Translit, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
	}
	if len(msg.Variants) > 0 {
		objs = append(objs, widget.NewSeparator())
		for _, v := range msg.Variants {
			l := widget.NewLabel(v)
			l.Wrapping = fyne.TextWrapWord
			objs = append(objs, l)
		}
	}

	if len(msg.SeeAlso) > 0 {
		buttons := make([]fyne.CanvasObject, 0, len(msg.SeeAlso))
		for _, word := range msg.SeeAlso {
			buttons = append(buttons, widget.NewButton(word, func() {
				a.session.follow(p, word)
				a.advance()
			}))
		}
		objs = append(objs, widget.NewSeparator(),
			container.NewGridWithColumns(min(maxButtonColumns, len(buttons)), buttons...))
	}

	a.window.SetContent(container.NewPadded(container.NewVBox(objs...)))
	a.resetCloseTimer()
}

// resetCloseTimer moves on after the configured timeout. A zero timeout
// keeps the popup until the window is closed.
func (a *notifyApp) resetCloseTimer() {
	if a.closeTimer != nil {
		a.closeTimer.Stop()
	}
	d := a.opts.closeAfter()
	if d <= 0 {
		return
	}
	a.closeTimer = time.AfterFunc(d, func() {
		a.safeDo("timeout", a.advance)
	})
}

func (a *notifyApp) showStatus(text string) {
	if a.opts.system {
		return
	}
	a.window.SetContent(container.NewPadded(widget.NewLabel(text)))
}

func (a *notifyApp) showError(text string) {
	if a.opts.system {
		a.app.SendNotification(fyne.NewNotification("gt", text))
		a.app.Quit()
		return
	}
	l := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	l.Wrapping = fyne.TextWrapWord
	a.window.SetContent(container.NewPadded(container.NewVBox(l,
		widget.NewButton("Close", a.app.Quit))))
}
