package main

import (
	"flag"
	"hexwar/experiments"
	"hexwar/rules"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	name := flag.String("experiment", "throughput", "Experiment to run: throughput, cutoff or evaluation")
	rulesetPath := flag.String("ruleset", "", "YAML ruleset file (defaults apply when empty)")
	logLevel := flag.String("log-level", "info", "Log level")
	numGames := flag.Int("games", experiments.NumGames, "Games per match up")
	duration := flag.Duration("duration", experiments.TimeBudget, "Search time per move")
	maxTurns := flag.Int("max-turns", 0, "Turn limit per game (0 keeps the default)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the searchers")
	outDir := flag.String("out", "experiments", "Directory for result files")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ruleset := rules.Default()
	if *rulesetPath != "" {
		if ruleset, err = rules.Load(*rulesetPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load ruleset")
		}
	}

	x, err := experiments.Named(*name, ruleset, *duration)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up experiment")
	}
	x.Games = *numGames
	x.MaxTurns = *maxTurns
	x.Seed = *seed
	x.OutDir = *outDir

	results, err := x.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Str("dir", results.Dir).Interface("wins", results.Wins()).Msgf("finished %s experiment", x.Name)
}
