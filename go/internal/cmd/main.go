package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mcdev12/tourney/go/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Validates a tournament snapshot and writes it back in canonical form.
// The input path comes from config (snapshot.input / TOURNEY_SNAPSHOT) or
// the first argument.
func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg)

	input := cfg.Snapshot.Input
	if len(os.Args) > 1 {
		input = os.Args[1]
	}
	if input == "" {
		log.Fatal().Msg("TOURNEY_SNAPSHOT or a snapshot path argument is required")
	}

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("failed to read snapshot")
	}

	snap, err := decodeSnapshot(data, cfg.MatchOptions()...)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("failed to decode snapshot")
	}

	log.Info().
		Str("path", input).
		Int("teams", len(snap.Teams)).
		Int("matches", len(snap.Matches)).
		Msg("snapshot loaded")

	for _, team := range snap.Teams {
		log.Info().
			Str("team_id", team.TeamID).
			Str("name", team.Name).
			Int("players", len(team.Players)).
			Int("played", team.MatchesPlayed).
			Int("points", team.Points).
			Int("goal_difference", team.GoalDifference()).
			Msg("team")
	}
	for _, m := range snap.Matches {
		log.Info().
			Str("match_id", m.MatchID).
			Str("status", string(m.Status)).
			Msg(m.Result())
	}

	problems := snap.Validate()
	for _, p := range problems {
		log.Error().Err(p).Msg("snapshot problem")
	}

	out, err := snap.encode()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode snapshot")
	}
	if path := cfg.Snapshot.Output; path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to write snapshot")
		}
	} else if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal().Err(err).Msg("failed to write snapshot")
	}

	if len(problems) > 0 {
		log.Warn().Int("problems", len(problems)).Msg("snapshot has problems")
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.Log.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())
}
