// apps/go-board/serve.go
//
// `serve`: the HTTP board server.
// Runs three goroutines under one errgroup: the listener, a signal-driven
// graceful shutdown, and the idle-session pruner.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-board/internal/config"
	"github.com/robalobadob/wordle/apps/go-board/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-board/internal/store"
	"github.com/robalobadob/wordle/apps/go-board/internal/words"
)

// getServeCommand returns the serve subcommand.
func getServeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser board and the word list endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(*cfg, os.Stderr)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.HTTP.Addr, "addr", cfg.HTTP.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.Words.URL, "words-url", cfg.Words.URL, "remote JSON word list (default: built-in list)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	list, err := words.LoadList(cfg.Words.AnswersFile)
	if err != nil {
		return err
	}
	var src words.Source = list
	if cfg.Words.URL != "" {
		src = words.NewHTTPSource(cfg.Words.URL, cfg.Words.FetchTimeout)
	}

	sessions := store.NewMemoryStore()
	srv := httpserver.New(httpserver.Options{
		Store:        sessions,
		List:         list,
		Source:       src,
		DailySalt:    cfg.Words.DailySalt,
		FetchTimeout: cfg.Words.FetchTimeout,
		ClientOrigin: cfg.HTTP.ClientOrigin,
	})
	hs := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr).Int("words", list.Len()).Msg("starting go-board")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return pruneLoop(gctx, sessions, cfg.Session.TTL)
	})

	return g.Wait()
}

// pruneLoop drops idle sessions every ttl/4 until ctx is done.
func pruneLoop(ctx context.Context, st store.Store, ttl time.Duration) error {
	t := time.NewTicker(ttl / 4)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			n, err := st.Prune(ctx, now.Add(-ttl))
			if err != nil {
				log.Warn().Err(err).Msg("prune sessions")
				continue
			}
			if n > 0 {
				log.Info().Int("pruned", n).Msg("pruned idle sessions")
			}
		}
	}
}
