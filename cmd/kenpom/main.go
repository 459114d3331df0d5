package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cbbstats/kenpom/internal/cli"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	// Quiet by default so the table output stays clean; --verbose lowers
	// the level to debug.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cli.Execute()
}
