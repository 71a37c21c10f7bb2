package console

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultColors is the built-in part=SGR list. Parts:
//
//	no  notice
//	tr  transliteration
//	sp  speech part name
//	tv  speech part specific translation variant
//	os  synonym in the source language
//	he  header
//	ex  usage example of a definition
//	bo  highlighted word inside an example
const DefaultColors = "no=1;33:tr=32:sp=1;34:tv=1;31:os=:he=1;32:ex=33:bo=1;4"

var isTerminal = term.IsTerminal

// ParseColors parses a colon-separated part=SGR list. Items without "=" are
// ignored.
func ParseColors(s string) map[string]string {
	out := make(map[string]string)
	for _, kv := range strings.Split(s, ":") {
		part, sgr, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[part] = sgr
	}
	return out
}

type Palette struct {
	colors  map[string]string
	enabled bool
}

// NewPalette merges override over DefaultColors. A disabled palette returns
// text unchanged.
func NewPalette(override string, enabled bool) Palette {
	colors := ParseColors(DefaultColors)
	for k, v := range ParseColors(override) {
		colors[k] = v
	}
	return Palette{colors: colors, enabled: enabled}
}

func (p Palette) Colorize(part, text string) string {
	start, end := p.span(part)
	return start + text + end
}

func (p Palette) span(part string) (string, string) {
	if !p.enabled {
		return "", ""
	}
	sgr, ok := p.colors[part]
	if !ok {
		return "", ""
	}
	return "\033[" + sgr + "m", "\033[0m"
}

// ANSICapable reports whether f is a terminal and TERM allows escape codes.
func ANSICapable(f *os.File) bool {
	if f == nil || !isTerminal(int(f.Fd())) {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}
