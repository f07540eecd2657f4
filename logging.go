// apps/go-board/logging.go
//
// zerolog setup shared by the subcommands.

package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-board/internal/config"
)

// setupLogging sets the global level and writer.
// Console format is human-readable; json is one object per line.
func setupLogging(cfg config.Config, out io.Writer) {
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Log.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// playLogOutput keeps logs off the terminal while the board is drawn.
func playLogOutput(cfg config.Config) (io.Writer, func(), error) {
	if cfg.Log.File == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
