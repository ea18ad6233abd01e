package main

import (
	"flag"
	"fmt"
	"os"

	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Msgf("ignoring config file: %v", err)
	}

	black := flag.String("black", cfg.Black, "policy for black: human, random, minimax, alphabeta, timed")
	white := flag.String("white", cfg.White, "policy for white: human, random, minimax, alphabeta, timed")
	param := flag.Int("param", cfg.Param, "search depth in plies, or time budget in milliseconds for the timed policy")
	games := flag.Int("games", 1, "number of games; more than one runs a matchup and writes CSV records")
	alternate := flag.Bool("alternate", true, "swap colors every other game in a matchup")
	level := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", *level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if *games > 1 {
		runMatchup(*black, *white, *param, *games, *alternate)
		return
	}

	outcome := engine.Local(
		agent.New(*black, game.Black, *param),
		agent.New(*white, game.White, *param),
		game.NewBoard(),
	).Run()

	switch outcome.Winner {
	case game.Empty:
		fmt.Printf("Draw after %d plies.\n", outcome.Plies)
	default:
		fmt.Printf("%s wins by %d after %d plies.\n", outcome.Winner, abs(outcome.Score), outcome.Plies)
	}
}

func runMatchup(black, white string, param, games int, alternate bool) {
	m := experiments.Matchup{
		First:     experiments.AgentConfig{Kind: black, Param: param},
		Second:    experiments.AgentConfig{Kind: white, Param: param},
		Games:     games,
		Alternate: alternate,
	}
	records := m.Run()

	writer, err := experiments.NewWriter("experiments")
	if err != nil {
		log.Error().Msgf("failed to set up record writer: %v", err)
		os.Exit(1)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		log.Error().Msgf("failed to write game records: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d game records to %s.\n", len(records), writer.Dir())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
