package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oukeidos/gt/internal/apperrors"
	"github.com/oukeidos/gt/internal/files"
	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/logger"
	"github.com/oukeidos/gt/internal/prompt"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	output string
	yes    bool
	keep   bool
}

var confirmOverwrite = func(path string, force bool) (bool, error) {
	return prompt.DefaultConfirmer().ConfirmOverwrite(path, force)
}

func newDumpCmd(global *globalOptions) *cobra.Command {
	opts := dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump <source> <target> <text...>",
		Short: "Print the full server response as formatted JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				_ = cmd.Usage()
				return fmt.Errorf("source language, target language, and text are required")
			}
			return runDump(cmd, args, global, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the JSON to a file instead of stdout")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite the output file without asking")
	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "Keep an existing output file and write next to it")
	cmd.MarkFlagsMutuallyExclusive("yes", "keep")
	return cmd
}

func runDump(cmd *cobra.Command, args []string, global *globalOptions, opts *dumpOptions) error {
	sourceLang, targetLang := args[0], args[1]
	text := strings.Join(args[2:], " ")
	if err := checkLanguages(cmd.ErrOrStderr(), sourceLang, targetLang); err != nil {
		return err
	}

	cfg, err := setup(global)
	if err != nil {
		return err
	}

	outPath := opts.output
	if outPath != "" {
		outPath, err = resolveOutputPath(outPath, opts)
		if err != nil {
			return err
		}
		if outPath == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
	}

	ctx, stop := signalContext()
	defer stop()

	reqOpts := gtclient.AllOptions()
	reqOpts.InterfaceLang = cfg.InterfaceLang
	raw, err := newClient(cfg).Raw(ctx, sourceLang, targetLang, text, reqOpts)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return apperrors.MalformedResponse(err)
	}
	pretty.WriteByte('\n')

	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(pretty.Bytes())
		return err
	}
	if err := files.AtomicWrite(outPath, pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info("Response saved", "path", outPath)
	return nil
}

// resolveOutputPath returns the path to write, or "" when the user declined
// to overwrite.
func resolveOutputPath(path string, opts *dumpOptions) (string, error) {
	if err := files.RejectSymlinkPath(path); err != nil {
		return "", err
	}
	exists, err := files.Exists(path)
	if err != nil {
		return "", err
	}
	if !exists {
		return path, nil
	}
	if opts.keep {
		alt, _, err := files.SafePath(path)
		if err != nil {
			return "", err
		}
		return alt, nil
	}
	ok, err := confirmOverwrite(path, opts.yes)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return path, nil
}
