package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPublicMessage_UsesSafeMessage(t *testing.T) {
	sentinel := errors.New("dial tcp: lookup translate.google.com: no such host")
	err := New(KindTransport, "safe transport error", sentinel)
	if got := PublicMessage(err); got != "safe transport error" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "safe transport error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestDefaultMessages(t *testing.T) {
	err := MalformedResponse(errors.New("invalid character 'x'"))
	if got := PublicMessage(err); got != "Unexpected response format from the translation service." {
		t.Fatalf("PublicMessage() = %q", got)
	}
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		transport bool
		malformed bool
	}{
		{name: "transport", err: Transport(errors.New("eof")), transport: true},
		{name: "rate_limit", err: RateLimit(errors.New("429")), transport: true},
		{name: "malformed", err: MalformedResponse(errors.New("bad json")), malformed: true},
		{name: "wrapped_malformed", err: fmt.Errorf("translate: %w", MalformedResponse(nil)), malformed: true},
		{name: "bad_request", err: BadRequest("empty text")},
		{name: "plain", err: errors.New("plain")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransport(tc.err); got != tc.transport {
				t.Fatalf("IsTransport() = %v, want %v", got, tc.transport)
			}
			if got := IsMalformedResponse(tc.err); got != tc.malformed {
				t.Fatalf("IsMalformedResponse() = %v, want %v", got, tc.malformed)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(RateLimit(errors.New("boom")))
	if !ok || kind != KindRateLimit {
		t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, KindRateLimit)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("expected plain errors to have no kind")
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
}
