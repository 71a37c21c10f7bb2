package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/oukeidos/gt/internal/config"
	"github.com/oukeidos/gt/internal/logger"
	"github.com/oukeidos/gt/internal/metrics"
	"github.com/oukeidos/gt/internal/server"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	addr string
}

func newServeCmd(global *globalOptions) *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(global)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = opts.addr
			}
			ctx, stop := signalContext()
			defer stop()
			return runServe(ctx, cfg)
		},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	return cmd
}

func newHTTPServer(cfg *config.Config) *http.Server {
	client := newClient(cfg)
	client.Observe = metrics.ObserveUpstream

	handler := server.New(client, server.Options{
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		UpstreamTimeout: cfg.Timeout,
		InterfaceLang:   cfg.InterfaceLang,
	})
	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// runServe serves until ctx is cancelled, then drains in-flight requests
// for at most the configured shutdown timeout.
func runServe(ctx context.Context, cfg *config.Config) error {
	srv := newHTTPServer(cfg)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}
	logger.Info("Listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
