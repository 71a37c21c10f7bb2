package gtclient

import (
	"fmt"
	"strings"
)

// Options selects which data categories the server includes in a reply.
// Each enabled flag adds one dt parameter to the request.
type Options struct {
	IncludeTranslation bool
	IncludeTranslit    bool
	IncludeVariants    bool
	IncludeSegments    bool
	IncludeExamples    bool
	IncludeDefinitions bool
	IncludeSeeAlso     bool
	IncludeSynonyms    bool
	SuggestLanguage    bool
	CorrectTypos       bool
	// InterfaceLang names speech parts in the reply. Empty leaves the
	// server default (English).
	InterfaceLang string
}

// DefaultOptions requests the translation only.
func DefaultOptions() Options {
	return Options{IncludeTranslation: true}
}

// AllOptions requests every data category.
func AllOptions() Options {
	return Options{
		IncludeTranslation: true,
		IncludeTranslit:    true,
		IncludeVariants:    true,
		IncludeSegments:    true,
		IncludeExamples:    true,
		IncludeDefinitions: true,
		IncludeSeeAlso:     true,
		IncludeSynonyms:    true,
		SuggestLanguage:    true,
		CorrectTypos:       true,
	}
}

type dataType struct {
	code string
	get  func(*Options) *bool
}

// Order matters: the request lists dt values in this sequence.
var dataTypes = []dataType{
	{"t", func(o *Options) *bool { return &o.IncludeTranslation }},
	{"rm", func(o *Options) *bool { return &o.IncludeTranslit }},
	{"bd", func(o *Options) *bool { return &o.IncludeVariants }},
	{"at", func(o *Options) *bool { return &o.IncludeSegments }},
	{"ex", func(o *Options) *bool { return &o.IncludeExamples }},
	{"md", func(o *Options) *bool { return &o.IncludeDefinitions }},
	{"rw", func(o *Options) *bool { return &o.IncludeSeeAlso }},
	{"ss", func(o *Options) *bool { return &o.IncludeSynonyms }},
	{"ld", func(o *Options) *bool { return &o.SuggestLanguage }},
	{"qc", func(o *Options) *bool { return &o.CorrectTypos }},
}

// DataTypes returns the dt codes enabled in o.
func (o Options) DataTypes() []string {
	out := make([]string, 0, len(dataTypes))
	for _, dt := range dataTypes {
		if *dt.get(&o) {
			out = append(out, dt.code)
		}
	}
	return out
}

// ParseDataTypes builds Options from dt codes such as "t", "bd", "rm".
// An empty list yields DefaultOptions.
func ParseDataTypes(codes []string) (Options, error) {
	if len(codes) == 0 {
		return DefaultOptions(), nil
	}
	var opts Options
	for _, raw := range codes {
		for _, code := range strings.Split(raw, ",") {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}
			found := false
			for _, dt := range dataTypes {
				if dt.code == code {
					*dt.get(&opts) = true
					found = true
					break
				}
			}
			if !found {
				return Options{}, fmt.Errorf("unknown data type %q", code)
			}
		}
	}
	return opts, nil
}
