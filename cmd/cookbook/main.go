package main

import (
	"os"

	"github.com/rs/zerolog"

	"cookbook/internal/commands"
	"cookbook/internal/logging"
)

func main() {
	// Replaced by the --log-* flags once they are parsed.
	logging.SetGlobalLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

	rootCmd := commands.NewRootCommand("cookbook")
	if err := rootCmd.Execute(); err != nil {
		logging.Err(err).Msg("terminated with errors")
		os.Exit(1)
	}
}
