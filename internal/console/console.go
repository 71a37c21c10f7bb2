// Package console renders translations for a terminal.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/translation"
)

type Translator interface {
	Translate(ctx context.Context, sourceLang, targetLang, text string, opts gtclient.Options) (*translation.Translation, error)
}

// Request describes one console lookup.
type Request struct {
	SourceLang string
	TargetLang string
	Text       string
	Options    gtclient.Options
	// Extended lists source-language synonyms for every variant.
	Extended bool
	// JSON prints the decoded result instead of the text layout.
	JSON bool
}

type Printer struct {
	Out     io.Writer
	Palette Palette
}

// Run translates req and prints the result. When the server proposes a
// corrected text, it reports the correction and translates that text instead.
func (p *Printer) Run(ctx context.Context, tr Translator, req Request) error {
	result, err := tr.Translate(ctx, req.SourceLang, req.TargetLang, req.Text, req.Options)
	if err != nil {
		return err
	}

	if result.Correction.Corrected() {
		if !req.JSON {
			p.printCorrection(result.Correction)
		}
		result, err = tr.Translate(ctx, req.SourceLang, req.TargetLang, result.Correction.Text, req.Options)
		if err != nil {
			return err
		}
	}

	if req.JSON {
		enc := json.NewEncoder(p.Out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	p.Print(result, req)
	return nil
}

func (p *Printer) printCorrection(c translation.Correction) {
	if c.HTML != "" {
		p.line(p.Palette.Colorize("no", fmt.Sprintf("Typo(s) corrected: %d", c.TypoCount())))
		return
	}
	p.line(p.Palette.Colorize("no", "Text was corrected"))
}

// Print writes every section present in t.
func (p *Printer) Print(t *translation.Translation, req Request) {
	if req.SourceLang == language.Auto {
		p.line(p.Palette.Colorize("no", "Language detected: "+t.SourceLanguage))
	}

	if req.Options.SuggestLanguage {
		suggested := t.SuggestedLanguages()
		switch {
		case len(suggested) == 0:
			p.line(p.Palette.Colorize("no", "No languages were suggested"))
		case !slices.Equal(suggested, []string{t.SourceLanguage}):
			p.line(p.Palette.Colorize("no", "Language(s) suggested: "+strings.Join(suggested, ", ")))
		}
	}

	p.line(t.TranslatedText)
	if t.TranslatedTranslit != "" {
		p.line(p.Palette.Colorize("tr", t.TranslatedTranslit))
	}

	for _, g := range t.VariantGroups {
		if req.Extended {
			p.printExtendedGroup(g)
			continue
		}
		p.line(fmt.Sprintf(" %s: %s",
			p.Palette.Colorize("sp", g.SpeechPart),
			p.Palette.Colorize("tv", strings.Join(g.VariantTranslations(), ", "))))
	}

	if len(t.Examples) > 0 {
		p.header("Examples")
		bold, reset := p.Palette.span("bo")
		for _, ex := range t.Examples {
			html := strings.NewReplacer("<b>", bold, "</b>", reset).Replace(ex.HTML)
			p.line(" " + html)
		}
	}

	if len(t.DefinitionGroups) > 0 {
		p.header("Definitions")
		for _, g := range t.DefinitionGroups {
			p.line(fmt.Sprintf(" %s:", p.Palette.Colorize("sp", g.SpeechPart)))
			for _, d := range g.Definitions {
				if d.Example != "" {
					p.line(fmt.Sprintf("  %s -- %s", d.Text, p.Palette.Colorize("ex", d.Example)))
				} else {
					p.line("  " + d.Text)
				}
			}
		}
	}

	if len(t.SynonymGroups) > 0 {
		p.header("Synonyms")
		for _, g := range t.SynonymGroups {
			p.line(fmt.Sprintf(" %s: %s", p.Palette.Colorize("sp", g.SpeechPart), strings.Join(g.Synonyms, ", ")))
		}
	}

	if len(t.SeeAlso) > 0 {
		p.header("See also")
		p.line(" " + strings.Join(t.SeeAlso, ", "))
	}
}

// printExtendedGroup aligns the synonym column on display width so wide
// scripts line up.
func (p *Printer) printExtendedGroup(g translation.VariantGroup) {
	p.line(fmt.Sprintf(" %s:", p.Palette.Colorize("sp", g.SpeechPart)))
	width := 0
	for _, v := range g.Variants {
		width = max(width, uniseg.StringWidth(v.Translation))
	}
	for _, v := range g.Variants {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(v.Translation))
		p.line(fmt.Sprintf("  %s:%s %s",
			p.Palette.Colorize("tv", v.Translation),
			pad,
			p.Palette.Colorize("os", strings.Join(v.Synonyms, ", "))))
	}
}

func (p *Printer) header(title string) {
	p.line("")
	p.line(p.Palette.Colorize("he", title) + ":")
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.Out, s)
}
