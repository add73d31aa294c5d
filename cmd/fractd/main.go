// Command fractd serves generated images over HTTP and websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fractkit/fract"
	"github.com/fractkit/fract/internal/server"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		maxSize = flag.Int("max-size", server.DefaultMaxSize, "largest image side served")
		workers = flag.Int("max-workers", server.DefaultMaxWorkers, "largest worker count a request may ask for")
		entries = flag.Int("cache", server.DefaultCacheEntries, "encoded images kept for repeated requests (< 0 disables)")
		verbose = flag.Bool("v", false, "debug logging")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("fract", fract.Version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fract.SetLogger(logger)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(server.Config{MaxSize: *maxSize, MaxWorkers: *workers, CacheEntries: *entries}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr, "max_size", *maxSize)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "err", err)
		}
	}
}
