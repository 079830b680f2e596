package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/objwatch/internal/adapters/http"
	"github.com/aretw0/objwatch/pkg/document"
)

// ServeOptions configures the serve command.
type ServeOptions struct {
	Document string
	Flags    WatchFlags
	Port     string
	History  int
	Logger   *slog.Logger
}

const shutdownTimeout = 5 * time.Second

// Serve watches the document and exposes it over HTTP until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions, out io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	doc, err := document.LoadFile(opts.Document)
	if err != nil {
		return err
	}
	watchOpts, unused, err := opts.Flags.Build(nil)
	if err != nil {
		return err
	}
	if len(unused) > 0 {
		logger.Warn("ignoring unknown watch options", "keys", unused)
	}

	server, err := httpAdapter.NewServer(httpAdapter.Config{
		Document: doc,
		Options:  watchOpts,
		Logger:   logger,
		History:  opts.History,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + opts.Port,
		Handler: server.Handler(),
	}

	printSystemMessage(out, "Serving %s on %s", opts.Document, srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down", "reason", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		printSystemMessage(out, "Server stopped gracefully")
		return nil
	}
}
