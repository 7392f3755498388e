// Command femcore drives the meshing and plane-stress solve pipeline from
// the command line: build a loop, triangulate it, optionally solve a
// built-in load case, and report node/element/stress summaries.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("femcore: command failed")
	}
}
