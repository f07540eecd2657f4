// apps/go-board/play.go
//
// `play`: the terminal game.

package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-board/internal/config"
	"github.com/robalobadob/wordle/apps/go-board/internal/tui"
	"github.com/robalobadob/wordle/apps/go-board/internal/words"
)

// getPlayCommand returns the play subcommand.
func getPlayCommand(cfg *config.Config) *cobra.Command {
	var daily bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, closeLog, err := playLogOutput(*cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			setupLogging(*cfg, out)

			fetch, err := solutionFetcher(*cfg, daily)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(tui.New(fetch)).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&daily, "daily", false, "play today's word")
	cmd.Flags().StringVar(&cfg.Words.URL, "words-url", cfg.Words.URL, "remote JSON word list (default: built-in list)")
	return cmd
}

// solutionFetcher wires the configured source and picker into a single-attempt fetch.
func solutionFetcher(cfg config.Config, daily bool) (tui.FetchFunc, error) {
	var src words.Source
	if cfg.Words.URL != "" {
		src = words.NewHTTPSource(cfg.Words.URL, cfg.Words.FetchTimeout)
	} else {
		list, err := words.LoadList(cfg.Words.AnswersFile)
		if err != nil {
			return nil, err
		}
		src = list
	}

	var pk words.Picker = words.RandomPicker{}
	if daily {
		pk = words.DailyPicker{Salt: cfg.Words.DailySalt}
	}
	return func(ctx context.Context) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.Words.FetchTimeout)
		defer cancel()
		return words.FetchSolution(ctx, src, pk)
	}, nil
}
