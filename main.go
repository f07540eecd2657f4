// apps/go-board/main.go
//
// Entry point: loads .env, reads the configuration, configures zerolog and
// dispatches to the cobra subcommands (serve, play).

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-board/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	root := &cobra.Command{
		Use:           "go-board",
		Short:         "Wordle board: browser server and terminal game",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(getServeCommand(&cfg), getPlayCommand(&cfg))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
