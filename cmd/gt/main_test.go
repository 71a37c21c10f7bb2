package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/oukeidos/gt/internal/config"
)

var fixedNow = time.Unix(403000*3600+60, 0)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		Endpoint:       endpoint,
		SpeechEndpoint: "https://speech.test/translate_tts",
		UserAgent:      "gt-test",
		Timeout:        5 * time.Second,
		Player:         "mplayer",
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			AllowedOrigins:  []string{"*"},
			ReadTimeout:     time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Log: config.LogConfig{Level: "info"},
	}
}

// withConfig makes every command load cfg and sign with fixedNow.
func withConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prevLoad := loadConfig
	prevNow := now
	loadConfig = func() (*config.Config, error) {
		c := *cfg
		return &c, nil
	}
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		loadConfig = prevLoad
		now = prevNow
	})
}

// upstream is a fake translate endpoint that answers by query text.
type upstream struct {
	mu      sync.Mutex
	queries []url.Values
	bodies  map[string]string
	status  int
}

func newUpstream(t *testing.T, bodies map[string]string) (*upstream, *httptest.Server) {
	t.Helper()
	u := &upstream{bodies: bodies, status: http.StatusOK}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.queries = append(u.queries, r.URL.Query())
		status := u.status
		u.mu.Unlock()
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte(u.bodies[r.URL.Query().Get("q")]))
	}))
	t.Cleanup(srv.Close)
	return u, srv
}

func (u *upstream) calls() []url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]url.Values(nil), u.queries...)
}
