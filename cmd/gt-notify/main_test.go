package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/oukeidos/gt/internal/config"
)

func executeCommand(t *testing.T, args ...string) (options, bool, string, error) {
	t.Helper()
	prev := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{Timeout: time.Second, Log: config.LogConfig{Level: "info"}}, nil
	}
	t.Cleanup(func() { loadConfig = prev })

	var got options
	ran := false
	cmd := newRootCmd(func(_ *config.Config, opts options) error {
		got = opts
		ran = true
		return nil
	})
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, ran, buf.String(), err
}

func TestFlags_Defaults(t *testing.T) {
	opts, ran, out, err := executeCommand(t, "auto", "ru")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if !ran {
		t.Fatalf("run was not called")
	}
	if opts.selection != "primary" || opts.timeout != 0 || opts.translit || opts.seeAlso.Enabled() {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.sourceLang != "auto" || opts.targetLang != "ru" {
		t.Fatalf("languages = %q %q", opts.sourceLang, opts.targetLang)
	}
}

func TestFlags_All(t *testing.T) {
	opts, _, out, err := executeCommand(t, "-S", "clipboard", "-T", "2.5", "-t", "-a", "3", "en", "de")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if opts.selection != "clipboard" || !opts.translit {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.closeAfter() != 2500*time.Millisecond {
		t.Fatalf("closeAfter = %v", opts.closeAfter())
	}
	if got := opts.seeAlso.Slice([]string{"a", "b", "c", "d"}); len(got) != 3 {
		t.Fatalf("see-also slice = %v", got)
	}
}

func TestFlags_NoLanguagesIsAllowed(t *testing.T) {
	opts, ran, out, err := executeCommand(t)
	if err != nil || !ran {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if opts.sourceLang != "" || opts.targetLang != "" {
		t.Fatalf("expected empty pair, got %+v", opts)
	}
}

func TestFlags_Rejects(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"selection", []string{"-S", "middle", "en", "ru"}, "invalid selection"},
		{"see also", []string{"-a", "some", "en", "ru"}, "expected no, yes, or a number"},
		{"negative timeout", []string{"-T", "-1", "en", "ru"}, "timeout must not be negative"},
		{"auto target", []string{"en", "auto"}, "only valid as a source language"},
		{"one language", []string{"en"}, "expected <source> <target>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ran, out, err := executeCommand(t, tc.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if ran {
				t.Fatalf("run should not be called")
			}
			if !strings.Contains(out, tc.want) {
				t.Fatalf("expected %q in output:\n%s", tc.want, out)
			}
		})
	}
}
