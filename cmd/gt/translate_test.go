package main

import (
	"net/http"
	"slices"
	"strings"
	"testing"
)

const helloBody = `[[["simultaneous","одновременный",,,1]],[["adjective",,[["simultaneous",["concurrent"],,0.5]]]],"ru",,,,,,[["ru"],,[1]]]`

func TestRootTranslate_PrintsVariants(t *testing.T) {
	up, srv := newUpstream(t, map[string]string{"одновременный": helloBody})
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "ru", "en", "одновременный")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	want := "simultaneous\n adjective: simultaneous\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}

	calls := up.calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", len(calls))
	}
	dt := calls[0]["dt"]
	if !slices.Equal(dt, []string{"t", "bd"}) {
		t.Fatalf("dt = %v, want [t bd]", dt)
	}
	if calls[0].Get("tk") == "" {
		t.Fatalf("request was not signed: %v", calls[0])
	}
}

func TestRootTranslate_JoinsTextArgs(t *testing.T) {
	up, srv := newUpstream(t, map[string]string{"good morning": `[[["доброе утро","good morning"]]]`})
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "-r", "en", "ru", "good", "morning")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if out != "доброе утро\n" {
		t.Fatalf("output = %q", out)
	}
	if dt := up.calls()[0]["dt"]; !slices.Equal(dt, []string{"t"}) {
		t.Fatalf("result-only should request translation only, got %v", dt)
	}
}

func TestTranslateSubcommand_JSON(t *testing.T) {
	_, srv := newUpstream(t, map[string]string{"одновременный": helloBody})
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "translate", "--json", "ru", "en", "одновременный")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	for _, want := range []string{`"translated_text": "simultaneous"`, `"source_language": "ru"`, `"weight": 0.5`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestRootTranslate_Correction(t *testing.T) {
	up, srv := newUpstream(t, map[string]string{
		"helo":  `[[["хело","helo"]],,"en",,,,,["<b><i>hello</i></b>","hello"]]`,
		"hello": `[[["привет","hello"]],,"en"]`,
	})
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "-c", "-r", "en", "ru", "helo")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if out != "Typo(s) corrected: 1\nпривет\n" {
		t.Fatalf("output = %q", out)
	}
	calls := up.calls()
	if len(calls) != 2 || calls[1].Get("q") != "hello" {
		t.Fatalf("expected a second request for the corrected text, got %v", calls)
	}
}

func TestRootTranslate_AutoDetect(t *testing.T) {
	_, srv := newUpstream(t, map[string]string{"hallo": `[[["hello","hallo"]],,"de"]`})
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "auto", "en", "hallo")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if out != "Language detected: de\nhello\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRootTranslate_RejectsAutoTarget(t *testing.T) {
	up, srv := newUpstream(t, nil)
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "en", "auto", "hello")
	if err == nil {
		t.Fatalf("expected error for auto target")
	}
	if !strings.Contains(out, "only valid as a source language") {
		t.Fatalf("unexpected output: %s", out)
	}
	if len(up.calls()) != 0 {
		t.Fatalf("no request should be sent")
	}
}

func TestRootTranslate_WarnsOnUnknownLanguage(t *testing.T) {
	_, srv := newUpstream(t, map[string]string{"x": `[[["y","x"]]]`})
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "-r", "xx", "en", "x")
	if err != nil {
		t.Fatalf("command failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `Warning: unsupported source language: "xx"`) {
		t.Fatalf("expected warning, got %q", out)
	}
}

func TestRootTranslate_ResultOnlyAndExtendedConflict(t *testing.T) {
	_, srv := newUpstream(t, nil)
	withConfig(t, testConfig(srv.URL))

	_, err := executeCommand(t, "-r", "-x", "en", "ru", "hello")
	if err == nil {
		t.Fatalf("expected -r and -x to be mutually exclusive")
	}
}

func TestRootTranslate_UpstreamFailure(t *testing.T) {
	up, srv := newUpstream(t, nil)
	up.status = http.StatusServiceUnavailable
	withConfig(t, testConfig(srv.URL))

	out, err := executeCommand(t, "en", "ru", "hello")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(out, "Translation service is unreachable") {
		t.Fatalf("expected safe message, got %q", out)
	}
}

func TestRoot_MissingArgs(t *testing.T) {
	withConfig(t, testConfig("http://127.0.0.1:0"))

	out, err := executeCommand(t, "-t")
	if err == nil {
		t.Fatalf("expected error when only flags are given")
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage, got %q", out)
	}

	if _, err := executeCommand(t, "translate", "en", "ru"); err == nil {
		t.Fatalf("expected error when text is missing")
	}
}
