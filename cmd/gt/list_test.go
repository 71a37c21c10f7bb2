package main

import (
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	out, err := executeCommand(t, "list")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for _, want := range []string{"Supported Languages:", "[auto]  (source only)", "English", "[en]", "[zh-CN]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestAbout(t *testing.T) {
	out, err := executeCommand(t, "about")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "https://github.com/oukeidos/gt") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.HasPrefix(out, "gt ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
