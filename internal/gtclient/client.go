// Package gtclient fetches and decodes translations from the
// translate_a/single endpoint.
package gtclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oukeidos/gt/internal/apperrors"
	"github.com/oukeidos/gt/internal/httpclient"
	"github.com/oukeidos/gt/internal/semijson"
	"github.com/oukeidos/gt/internal/tk"
	"github.com/oukeidos/gt/internal/translation"
)

const (
	DefaultEndpoint  = "https://translate.google.com/translate_a/single"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:39.0) Gecko/20100101 Firefox/39.0"
)

// Outcome labels passed to Client.Observe.
const (
	OutcomeOK         = "ok"
	OutcomeTransport  = "transport_error"
	OutcomeRateLimit  = "rate_limited"
	OutcomeMalformed  = "malformed"
	OutcomeBadRequest = "bad_request"
)

type Client struct {
	Endpoint  string
	UserAgent string
	// HTTPClient defaults to httpclient.GetDefaultClient().
	HTTPClient *http.Client
	// Now supplies the clock for the request token.
	Now func() time.Time
	// Observe, when set, is called once per upstream request.
	Observe func(outcome string, elapsed time.Duration)
}

func New(endpoint, userAgent string) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		Endpoint:  endpoint,
		UserAgent: userAgent,
		Now:       time.Now,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return httpclient.GetDefaultClient()
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// RequestURL builds the GET URL for one translation request.
func (c *Client) RequestURL(sourceLang, targetLang, text string, opts Options) string {
	var b strings.Builder
	b.WriteString(c.Endpoint)
	if strings.Contains(c.Endpoint, "?") {
		b.WriteString("&client=t")
	} else {
		b.WriteString("?client=t")
	}
	b.WriteString("&sl=" + url.QueryEscape(sourceLang))
	b.WriteString("&tl=" + url.QueryEscape(targetLang))
	b.WriteString("&q=" + url.QueryEscape(text))
	for _, dt := range opts.DataTypes() {
		b.WriteString("&dt=" + dt)
	}
	if opts.InterfaceLang != "" {
		b.WriteString("&hl=" + url.QueryEscape(opts.InterfaceLang))
	}
	b.WriteString("&tk=" + url.QueryEscape(tk.Sign(text, tk.HourSeed(c.now()))))
	return b.String()
}

// Fetch returns the unmodified response body.
func (c *Client) Fetch(ctx context.Context, sourceLang, targetLang, text string, opts Options) (string, error) {
	started := time.Now()
	body, err := c.fetch(ctx, sourceLang, targetLang, text, opts)
	c.observe(started, err)
	return body, err
}

// Raw fetches the response and returns it as repaired JSON text.
func (c *Client) Raw(ctx context.Context, sourceLang, targetLang, text string, opts Options) (json.RawMessage, error) {
	started := time.Now()
	raw, err := c.raw(ctx, sourceLang, targetLang, text, opts)
	c.observe(started, err)
	return raw, err
}

func (c *Client) raw(ctx context.Context, sourceLang, targetLang, text string, opts Options) (json.RawMessage, error) {
	body, err := c.fetch(ctx, sourceLang, targetLang, text, opts)
	if err != nil {
		return nil, err
	}
	repaired := []byte(semijson.Repair(body))
	if !json.Valid(repaired) {
		return nil, apperrors.MalformedResponse(errors.New("repaired response is not valid JSON"))
	}
	return json.RawMessage(repaired), nil
}

// Translate fetches, repairs, parses, and decodes one translation.
func (c *Client) Translate(ctx context.Context, sourceLang, targetLang, text string, opts Options) (*translation.Translation, error) {
	started := time.Now()
	body, err := c.fetch(ctx, sourceLang, targetLang, text, opts)
	if err != nil {
		c.observe(started, err)
		return nil, err
	}
	tree, err := Parse(body)
	c.observe(started, err)
	if err != nil {
		return nil, err
	}
	return translation.Decode(tree), nil
}

func (c *Client) fetch(ctx context.Context, sourceLang, targetLang, text string, opts Options) (string, error) {
	if err := validateLangs(sourceLang, targetLang); err != nil {
		return "", err
	}
	started := time.Now()
	body, err := httpclient.Get(ctx, c.httpClient(), c.RequestURL(sourceLang, targetLang, text, opts), c.UserAgent)
	if err != nil {
		return "", classifyFetchError(err)
	}
	slog.Debug("Fetched translation", "source", sourceLang, "target", targetLang, "bytes", len(body), "elapsed", time.Since(started))
	return string(body), nil
}

// Parse repairs a raw response body and parses it into a generic tree.
func Parse(body string) (any, error) {
	var tree any
	if err := json.Unmarshal([]byte(semijson.Repair(body)), &tree); err != nil {
		return nil, apperrors.MalformedResponse(fmt.Errorf("failed to parse repaired response: %w", err))
	}
	return tree, nil
}

func (c *Client) observe(started time.Time, err error) {
	if c.Observe == nil {
		return
	}
	c.Observe(Outcome(err), time.Since(started))
}

// Outcome maps a request error to one of the Outcome labels.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	kind, _ := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindRateLimit:
		return OutcomeRateLimit
	case apperrors.KindMalformedResponse:
		return OutcomeMalformed
	case apperrors.KindBadRequest:
		return OutcomeBadRequest
	default:
		return OutcomeTransport
	}
}

func validateLangs(sourceLang, targetLang string) error {
	if strings.TrimSpace(sourceLang) == "" {
		return apperrors.BadRequest("Source language is required.")
	}
	if strings.TrimSpace(targetLang) == "" {
		return apperrors.BadRequest("Target language is required.")
	}
	return nil
}

func classifyFetchError(err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusTooManyRequests {
			return apperrors.New(
				apperrors.KindRateLimit,
				"Translation service rate limit exceeded (429): please try again later.",
				err,
			)
		}
		return apperrors.New(
			apperrors.KindTransport,
			fmt.Sprintf("Translation service returned an error (%d).", statusErr.StatusCode),
			err,
		)
	}
	return apperrors.Transport(fmt.Errorf("request failed: %w", err))
}
