// Package experiments runs policy matchups: repeated games between two
// configured policies, with per-game records written as CSV for offline
// analysis.
package experiments

import (
	"time"

	"othello/agent"
	"othello/engine"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// AgentConfig identifies one policy configuration in a matchup.
type AgentConfig struct {
	Kind  string
	Param int
}

// GameRecord captures the outcome of one game between two configurations.
type GameRecord struct {
	ID       int
	Black    AgentConfig
	White    AgentConfig
	Winner   string
	Score    int
	Plies    int
	Duration time.Duration
}

// Matchup plays Games games between two policy configurations. With
// Alternate set, the configurations swap colors every other game to cancel
// the first-move advantage.
type Matchup struct {
	First     AgentConfig
	Second    AgentConfig
	Games     int
	Alternate bool
}

// Run plays the matchup and returns one record per game.
func (m Matchup) Run() []GameRecord {
	log.Info().Msgf("starting matchup %+v vs %+v: %d games", m.First, m.Second, m.Games)

	records := make([]GameRecord, 0, m.Games)
	for i := 0; i < m.Games; i++ {
		black, white := m.First, m.Second
		if m.Alternate && i%2 == 1 {
			black, white = white, black
		}

		start := time.Now()
		e := engine.Local(
			agent.New(black.Kind, game.Black, black.Param),
			agent.New(white.Kind, game.White, white.Param),
			game.NewBoard(),
		)
		outcome := e.Run()

		records = append(records, GameRecord{
			ID:       i + 1,
			Black:    black,
			White:    white,
			Winner:   outcome.Winner.String(),
			Score:    outcome.Score,
			Plies:    outcome.Plies,
			Duration: time.Since(start),
		})
		log.Info().Msgf("game %d of %d: winner %s", i+1, m.Games, outcome.Winner)
	}
	return records
}
