package main

import (
	"fmt"
	"strings"

	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/speech"
	"github.com/spf13/cobra"
)

var playSpeech = speech.Play

type sayOptions struct {
	player  string
	urlOnly bool
}

func newSayCmd(global *globalOptions) *cobra.Command {
	opts := sayOptions{}
	cmd := &cobra.Command{
		Use:   "say <lang> <text...>",
		Short: "Speak text with an external audio player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				_ = cmd.Usage()
				return fmt.Errorf("language and text are required")
			}
			return runSay(cmd, args, global, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVarP(&opts.player, "player", "p", "", "Player command; the URL is appended (default $GT_PLAYER, $PLAYER, or mplayer)")
	cmd.Flags().BoolVar(&opts.urlOnly, "url-only", false, "Print the speech URL instead of playing it")
	return cmd
}

func runSay(cmd *cobra.Command, args []string, global *globalOptions, opts *sayOptions) error {
	lang := args[0]
	text := strings.Join(args[1:], " ")
	if lang == language.Auto {
		return fmt.Errorf("speech needs an explicit language, not %q", language.Auto)
	}
	if err := language.ValidateTarget(lang); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	cfg, err := setup(global)
	if err != nil {
		return err
	}

	speechURL := speech.URL(cfg.SpeechEndpoint, lang, text, now())
	if opts.urlOnly {
		fmt.Fprintln(cmd.OutOrStdout(), speechURL)
		return nil
	}

	ctx, stop := signalContext()
	defer stop()
	return playSpeech(ctx, speech.ResolvePlayer(opts.player, cfg.Player), speechURL)
}
