// Package server exposes the translation client over HTTP for `gt serve`.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/oukeidos/gt/internal/apperrors"
	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/metrics"
	"github.com/oukeidos/gt/internal/translation"
)

type Translator interface {
	Translate(ctx context.Context, sourceLang, targetLang, text string, opts gtclient.Options) (*translation.Translation, error)
	Raw(ctx context.Context, sourceLang, targetLang, text string, opts gtclient.Options) (json.RawMessage, error)
}

type Options struct {
	AllowedOrigins []string
	// UpstreamTimeout bounds each call to the translation endpoint.
	UpstreamTimeout time.Duration
	// InterfaceLang is used when a request has no hl parameter.
	InterfaceLang string
}

type handlers struct {
	tr   Translator
	opts Options
}

// New returns the router for gt serve.
func New(tr Translator, opts Options) http.Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	h := &handlers{tr: tr, opts: opts}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(RequestID)
	r.Use(Logging)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.health)
	r.Handle("/metrics", metrics.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/translate", h.translate)
		r.Get("/raw", h.raw)
	})
	return r
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// translate handles GET /v1/translate?sl=&tl=&q=&dt=&hl=.
func (h *handlers) translate(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ctx, cancel := h.upstreamContext(r)
	defer cancel()

	result, err := h.tr.Translate(ctx, req.source, req.target, req.text, req.opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// raw handles GET /v1/raw with the same parameters, returning repaired JSON.
func (h *handlers) raw(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ctx, cancel := h.upstreamContext(r)
	defer cancel()

	body, err := h.tr.Raw(ctx, req.source, req.target, req.text, req.opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

type request struct {
	source, target, text string
	opts                 gtclient.Options
}

func (h *handlers) parseRequest(r *http.Request) (request, error) {
	q := r.URL.Query()
	req := request{source: q.Get("sl"), target: q.Get("tl"), text: q.Get("q")}
	if req.source == "" {
		req.source = language.Auto
	}
	if err := language.ValidateSource(req.source); err != nil {
		return request{}, apperrors.New(apperrors.KindBadRequest, err.Error(), err)
	}
	if err := language.ValidateTarget(req.target); err != nil {
		return request{}, apperrors.New(apperrors.KindBadRequest, err.Error(), err)
	}
	if req.text == "" {
		return request{}, apperrors.BadRequest("Query parameter q is required.")
	}
	opts, err := gtclient.ParseDataTypes(q["dt"])
	if err != nil {
		return request{}, apperrors.New(apperrors.KindBadRequest, err.Error(), err)
	}
	opts.InterfaceLang = q.Get("hl")
	if opts.InterfaceLang == "" {
		opts.InterfaceLang = h.opts.InterfaceLang
	}
	req.opts = opts
	return req, nil
}

func (h *handlers) upstreamContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.opts.UpstreamTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.opts.UpstreamTimeout)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, "upstream_timeout"
		}
		return http.StatusInternalServerError, "internal"
	}
	switch kind {
	case apperrors.KindBadRequest, apperrors.KindValidation:
		return http.StatusBadRequest, "bad_request"
	case apperrors.KindRateLimit:
		return http.StatusTooManyRequests, "rate_limited"
	case apperrors.KindMalformedResponse:
		return http.StatusBadGateway, "unexpected_response_format"
	case apperrors.KindTransport:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, "upstream_timeout"
		}
		return http.StatusBadGateway, "upstream_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	id := RequestIDFrom(r.Context())
	if status >= 500 {
		slog.Warn("Request failed", "request_id", id, "code", code, "error", err)
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   publicMessage(err),
		RequestID: id,
	}})
}

func publicMessage(err error) string {
	if _, ok := apperrors.KindOf(err); ok {
		return apperrors.PublicMessage(err)
	}
	return "Internal server error."
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
