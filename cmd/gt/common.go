package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oukeidos/gt/internal/cleanup"
	"github.com/oukeidos/gt/internal/config"
	"github.com/oukeidos/gt/internal/files"
	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/httpclient"
	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/logger"
)

var (
	loadConfig = config.Load
	now        = time.Now
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	debug   bool
	logFile string
}

// setup loads the configuration and initializes logging. Flags win over
// configured values.
func setup(g *globalOptions) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if g.debug {
		level = logger.LevelDebug
	}
	logPath := cfg.Log.File
	if g.logFile != "" {
		logPath = g.logFile
	}
	var logFileW io.Writer
	if logPath != "" {
		if err := files.RejectSymlinkPath(logPath); err != nil {
			return nil, err
		}
		w := logger.OpenFile(logPath)
		cleanup.Register("log file", w.Close)
		logFileW = w
	}
	logger.Init(level, logFileW)
	return cfg, nil
}

func newClient(cfg *config.Config) *gtclient.Client {
	client := gtclient.New(cfg.Endpoint, cfg.UserAgent)
	client.HTTPClient = httpclient.NewClient(cfg.Timeout)
	client.Now = now
	return client
}

// checkLanguages rejects auto as a target. Unknown codes only produce a
// warning since the server accepts more than the local table lists.
func checkLanguages(errOut io.Writer, sourceLang, targetLang string) error {
	if strings.TrimSpace(sourceLang) == "" || strings.TrimSpace(targetLang) == "" {
		return fmt.Errorf("source and target languages must not be empty")
	}
	if targetLang == language.Auto {
		return language.ValidateTarget(targetLang)
	}
	if err := language.ValidateSource(sourceLang); err != nil {
		fmt.Fprintf(errOut, "Warning: %v\n", err)
	}
	if err := language.ValidateTarget(targetLang); err != nil {
		fmt.Fprintf(errOut, "Warning: %v\n", err)
	}
	return nil
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("Cancellation requested")
			cancel()
		case <-ctx.Done():
		}
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
