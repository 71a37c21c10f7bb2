package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oukeidos/gt/internal/console"
	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/spf13/cobra"
)

type translateOptions struct {
	translit      bool
	resultOnly    bool
	extended      bool
	examples      bool
	definitions   bool
	seeAlso       bool
	synonyms      bool
	correct       bool
	suggestLang   bool
	json          bool
	interfaceLang string
}

func newTranslateCmd(global *globalOptions) *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "translate <source> <target> <text...>",
		Short: "Translate text (default action)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				_ = cmd.Usage()
				return fmt.Errorf("source language, target language, and text are required")
			}
			return runTranslate(cmd, args, global, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addTranslateFlags(cmd, &opts)
	return cmd
}

func addTranslateFlags(cmd *cobra.Command, opts *translateOptions) {
	cmd.Flags().BoolVarP(&opts.translit, "translit", "t", false, "Show translation transliteration")
	cmd.Flags().BoolVarP(&opts.resultOnly, "result-only", "r", false, "Do not show translation variants")
	cmd.Flags().BoolVarP(&opts.extended, "extended", "x", false, "Show source-language synonyms for each variant")
	cmd.Flags().BoolVarP(&opts.examples, "examples", "e", false, "Show usage examples")
	cmd.Flags().BoolVarP(&opts.definitions, "definitions", "d", false, "Show definitions")
	cmd.Flags().BoolVarP(&opts.seeAlso, "see-also", "a", false, `Show the "see also" list`)
	cmd.Flags().BoolVarP(&opts.synonyms, "synonyms", "s", false, "Show synonym lists")
	cmd.Flags().BoolVarP(&opts.correct, "correct", "c", false, "Auto-correct the source text")
	cmd.Flags().BoolVarP(&opts.suggestLang, "suggest-lang", "l", false, "Suggest source languages")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the decoded translation as JSON")
	cmd.Flags().StringVar(&opts.interfaceLang, "interface-lang", "", "Language for speech part names (default from config)")
	cmd.MarkFlagsMutuallyExclusive("result-only", "extended")
}

func (o *translateOptions) requestOptions() gtclient.Options {
	return gtclient.Options{
		IncludeTranslation: true,
		IncludeTranslit:    o.translit,
		IncludeVariants:    !o.resultOnly,
		IncludeExamples:    o.examples,
		IncludeDefinitions: o.definitions,
		IncludeSeeAlso:     o.seeAlso,
		IncludeSynonyms:    o.synonyms,
		SuggestLanguage:    o.suggestLang,
		CorrectTypos:       o.correct,
	}
}

func runTranslate(cmd *cobra.Command, args []string, global *globalOptions, opts *translateOptions) error {
	if len(args) < 3 {
		return fmt.Errorf("source language, target language, and text are required")
	}
	sourceLang, targetLang := args[0], args[1]
	text := strings.Join(args[2:], " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is empty")
	}
	if err := checkLanguages(cmd.ErrOrStderr(), sourceLang, targetLang); err != nil {
		return err
	}

	cfg, err := setup(global)
	if err != nil {
		return err
	}

	reqOpts := opts.requestOptions()
	reqOpts.InterfaceLang = cfg.InterfaceLang
	if cmd.Flags().Changed("interface-lang") {
		reqOpts.InterfaceLang = opts.interfaceLang
	}

	out := cmd.OutOrStdout()
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = console.ANSICapable(f)
	}
	printer := &console.Printer{
		Out:     out,
		Palette: console.NewPalette(cfg.Colors, colored),
	}

	ctx, stop := signalContext()
	defer stop()

	return printer.Run(ctx, newClient(cfg), console.Request{
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Text:       text,
		Options:    reqOpts,
		Extended:   opts.extended,
		JSON:       opts.json,
	})
}
